// internal/system/physics.go
package system

import (
	"go-bowling/internal/component"
	"go-bowling/internal/entity"
	"go-bowling/pkg/physics"
)

// PhysicsSystem шагает физический мир по телам из ECS.
// Transform считается главным: перед шагом он копируется в тело, после шага обратно.
type PhysicsSystem struct {
	ecs    *entity.ECS
	world  *physics.World
	bodies []*physics.Body
	synced []*component.Transform
}

func NewPhysicsSystem(ecs *entity.ECS, world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, world: world}
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	s.bodies = s.bodies[:0]
	s.synced = s.synced[:0]

	q := s.ecs.Bodies.Query()
	for q.Next() {
		tr, rb := q.Get()
		rb.Position = tr.Position
		s.bodies = append(s.bodies, &rb.Body)
		s.synced = append(s.synced, tr)
	}

	s.world.Step(s.bodies, deltaTime)

	for i, b := range s.bodies {
		s.synced[i].Position = b.Position
	}
}
