// internal/system/shoot.go
package system

import (
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/internal/event"
	"go-bowling/internal/interfaces"
	"go-bowling/internal/utils"
	"go-bowling/pkg/physics"

	"github.com/charmbracelet/log"
)

// RollBall выбирает параметры броска. Порядок розыгрыша фиксирован:
// цвет, радиус, смещение, подкрутка, скорость.
func RollBall(rng *utils.PRNGService, t config.ShootingTuning) entity.BallSpec {
	c := config.BallColors[rng.Intn(config.BallColorSpan)]
	radius := rng.Range(t.Radius.Min(), t.Radius.Max())
	x := rng.Range(t.SpawnX.Min(), t.SpawnX.Max())
	curve := rng.Range(t.Curve.Min(), t.Curve.Max())
	speed := rng.Range(t.Speed.Min(), t.Speed.Max())
	return entity.BallSpec{
		Position: physics.V3(x, config.BallSpawnY, config.BallSpawnZ),
		Velocity: physics.V3(curve, 0, speed),
		Radius:   radius,
		Color:    c,
	}
}

// ShootSystem выпускает шар на каждое срабатывание таймера сессии
type ShootSystem struct {
	ecs       *entity.ECS
	rng       *utils.PRNGService
	publisher interfaces.Publisher
	tuning    config.ShootingTuning
	logger    *log.Logger
}

func NewShootSystem(ecs *entity.ECS, rng *utils.PRNGService, publisher interfaces.Publisher, tuning config.ShootingTuning, logger *log.Logger) *ShootSystem {
	return &ShootSystem{
		ecs:       ecs,
		rng:       rng,
		publisher: publisher,
		tuning:    tuning,
		logger:    logger.With("system", "shoot"),
	}
}

// Update возвращает число выпущенных за кадр шаров
func (s *ShootSystem) Update(session *PlaySession, deltaTime float64) int {
	n := session.Timer.Tick(deltaTime)
	for i := 0; i < n; i++ {
		spec := RollBall(s.rng, s.tuning)
		s.ecs.SpawnBall(spec)
		session.BallsThrown++
		s.publisher.Publish(event.BallLaunched, event.LaunchData{
			Position: spec.Position,
			Velocity: spec.Velocity,
			Radius:   spec.Radius,
		})
	}
	if n > 1 {
		s.logger.Debug("several balls in one frame", "count", n, "dt", deltaTime)
	}
	return n
}
