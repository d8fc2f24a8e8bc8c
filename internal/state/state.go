// internal/state/state.go
package state

import (
	"go-bowling/internal/component"
	"go-bowling/internal/event"

	"github.com/charmbracelet/log"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Exit()
}

// StateMachine — структура для управления состояниями.
// Активно ровно одно состояние; смена запрашивается через Request и применяется после Update.
type StateMachine struct {
	states     map[component.AppState]State
	currentID  component.AppState
	current    State
	pending    component.AppState
	hasPending bool

	dispatcher *event.Dispatcher
	logger     *log.Logger
}

// NewStateMachine создаёт машину без начального состояния. dispatcher может быть nil.
func NewStateMachine(dispatcher *event.Dispatcher, logger *log.Logger) *StateMachine {
	return &StateMachine{
		states:     make(map[component.AppState]State),
		dispatcher: dispatcher,
		logger:     logger.With("system", "state"),
	}
}

func (sm *StateMachine) Register(id component.AppState, s State) {
	sm.states[id] = s
}

// Start сразу входит в начальное состояние
func (sm *StateMachine) Start(initial component.AppState) {
	sm.hasPending = false
	sm.setState(initial)
}

// Request запрашивает переход. Несколько запросов за кадр сводятся к последнему,
// запрос текущего состояния игнорируется.
func (sm *StateMachine) Request(next component.AppState) {
	if next == sm.currentID && sm.current != nil {
		sm.hasPending = false
		return
	}
	sm.pending = next
	sm.hasPending = true
}

// Update обновляет текущее состояние и применяет отложенный переход
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.hasPending {
		sm.hasPending = false
		sm.setState(sm.pending)
	}
}

func (sm *StateMachine) Current() component.AppState {
	return sm.currentID
}

// State возвращает зарегистрированное состояние
func (sm *StateMachine) State(id component.AppState) State {
	return sm.states[id]
}

func (sm *StateMachine) setState(id component.AppState) {
	next, ok := sm.states[id]
	if !ok {
		sm.logger.Error("unknown state requested", "state", id)
		return
	}
	prev := sm.currentID
	hadCurrent := sm.current != nil
	if hadCurrent {
		sm.current.Exit()
	}
	sm.currentID = id
	sm.current = next
	sm.current.Enter()

	if hadCurrent {
		sm.logger.Info("state changed", "from", prev, "to", id)
		if sm.dispatcher != nil {
			sm.dispatcher.Publish(event.StateChanged, event.TransitionData{From: prev.String(), To: id.String()})
		}
	}
}
