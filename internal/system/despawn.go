// internal/system/despawn.go
package system

import (
	"go-bowling/internal/component"
	"go-bowling/internal/entity"
	"go-bowling/internal/event"
	"go-bowling/internal/interfaces"

	"github.com/mlange-42/ark/ecs"
)

// DespawnFallenSystem удаляет шары и кегли, упавшие ниже порога
type DespawnFallenSystem struct {
	ecs       *entity.ECS
	threshold float64
	publisher interfaces.Publisher

	fallen []fallenEntity
}

type fallenEntity struct {
	entity ecs.Entity
	data   event.FallData
	pin    bool
}

func NewDespawnFallenSystem(ecs *entity.ECS, threshold float64, publisher interfaces.Publisher) *DespawnFallenSystem {
	return &DespawnFallenSystem{ecs: ecs, threshold: threshold, publisher: publisher}
}

// Update возвращает сколько шаров и кеглей удалено за кадр
func (s *DespawnFallenSystem) Update(session *PlaySession) (balls, pins int) {
	s.fallen = s.fallen[:0]
	s.collect(s.ecs.Balls, false)
	s.collect(s.ecs.Pins, true)

	for _, f := range s.fallen {
		s.ecs.RemoveEntity(f.entity)
		if f.pin {
			pins++
			session.PinsKnocked++
			s.publisher.Publish(event.PinFell, f.data)
		} else {
			balls++
			s.publisher.Publish(event.BallFell, f.data)
		}
	}
	return balls, pins
}

func (s *DespawnFallenSystem) collect(f *ecs.Filter1[component.Transform], pin bool) {
	q := f.Query()
	for q.Next() {
		tr := q.Get()
		if tr.Position.Y <= s.threshold {
			s.fallen = append(s.fallen, fallenEntity{
				entity: q.Entity(),
				data:   event.FallData{Position: tr.Position},
				pin:    pin,
			})
		}
	}
}
