// internal/interfaces/state.go
package interfaces

import (
	"go-bowling/internal/component"
	"go-bowling/internal/event"
)

// StateRequester — то, через что системы просят сменить состояние.
// Смена применяется машиной состояний после Update текущего состояния.
type StateRequester interface {
	Request(next component.AppState)
}

// Publisher — отправка событий без зависимости от диспетчера
type Publisher interface {
	Publish(t event.EventType, data interface{})
}
