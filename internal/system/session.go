// internal/system/session.go
package system

import (
	"time"

	"go-bowling/internal/utils"

	"github.com/google/uuid"
)

// PlaySession — состояние одного захода в игру.
// Создаётся при каждом входе в Playing, поэтому таймер бросков всегда начинается с нуля.
type PlaySession struct {
	ID        string
	StartedAt time.Time
	Timer     *utils.RepeatingTimer

	BallsThrown int
	PinsKnocked int
	Elapsed     float64 // игровое время, сумма deltaTime
	Cleared     bool
}

func NewPlaySession(shootInterval float64) *PlaySession {
	return &PlaySession{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Timer:     utils.NewRepeatingTimer(shootInterval),
	}
}

// Advance учитывает игровое время кадра
func (s *PlaySession) Advance(deltaTime float64) {
	if deltaTime > 0 {
		s.Elapsed += deltaTime
	}
}
