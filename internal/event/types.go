// internal/event/types.go
package event

import "go-bowling/pkg/physics"

const (
	BallLaunched EventType = "BallLaunched" // Шар выпущен
	BallFell     EventType = "BallFell"     // Шар упал с дорожки
	PinFell      EventType = "PinFell"      // Кегля упала
	LevelCleared EventType = "LevelCleared" // Кеглей не осталось
	StateChanged EventType = "StateChanged"
)

// LaunchData — данные BallLaunched
type LaunchData struct {
	Position physics.Vec3
	Velocity physics.Vec3
	Radius   float64
}

// FallData — данные BallFell и PinFell
type FallData struct {
	Position physics.Vec3
}

// ClearData — данные LevelCleared
type ClearData struct {
	SessionID   string
	Elapsed     float64
	BallsThrown int
	PinsKnocked int
}

// TransitionData — данные StateChanged
type TransitionData struct {
	From string
	To   string
}
