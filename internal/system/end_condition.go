// internal/system/end_condition.go
package system

import (
	"go-bowling/internal/component"
	"go-bowling/internal/entity"
	"go-bowling/internal/event"
	"go-bowling/internal/interfaces"

	"github.com/charmbracelet/log"
)

// EndConditionSystem возвращает в меню, когда кеглей не осталось
type EndConditionSystem struct {
	ecs       *entity.ECS
	requester interfaces.StateRequester
	publisher interfaces.Publisher
	logger    *log.Logger
}

func NewEndConditionSystem(ecs *entity.ECS, requester interfaces.StateRequester, publisher interfaces.Publisher, logger *log.Logger) *EndConditionSystem {
	return &EndConditionSystem{
		ecs:       ecs,
		requester: requester,
		publisher: publisher,
		logger:    logger.With("system", "end"),
	}
}

// Update возвращает true, если уровень пройден.
// Запрос на смену состояния повторяется каждый кадр, пока кеглей нет;
// LevelCleared публикуется один раз за сессию.
func (s *EndConditionSystem) Update(session *PlaySession) bool {
	if s.ecs.CountPins() > 0 {
		return false
	}
	s.requester.Request(component.MainMenu)
	if !session.Cleared {
		session.Cleared = true
		s.logger.Info("all pins cleared",
			"session", session.ID,
			"balls", session.BallsThrown,
			"elapsed", session.Elapsed)
		s.publisher.Publish(event.LevelCleared, event.ClearData{
			SessionID:   session.ID,
			Elapsed:     session.Elapsed,
			BallsThrown: session.BallsThrown,
			PinsKnocked: session.PinsKnocked,
		})
	}
	return true
}
