package component

// AppState — состояние приложения. Активно ровно одно.
type AppState int

const (
	MainMenu AppState = iota
	Playing
)

func (s AppState) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}
