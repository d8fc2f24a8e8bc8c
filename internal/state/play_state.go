// internal/state/play_state.go
package state

import (
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/internal/interfaces"
	"go-bowling/internal/system"
	"go-bowling/internal/utils"
	"go-bowling/pkg/physics"

	"github.com/charmbracelet/log"
)

// PlayState — сама игра: дорожка, кегли, броски
type PlayState struct {
	tuning config.Tuning

	scene   *system.SceneSystem
	shoot   *system.ShootSystem
	physics *system.PhysicsSystem
	despawn *system.DespawnFallenSystem
	end     *system.EndConditionSystem
	cleanup *system.CleanupSystem

	session *system.PlaySession
	last    *system.PlaySession
	logger  *log.Logger
}

func NewPlayState(ecs *entity.ECS, sm interfaces.StateRequester, publisher interfaces.Publisher, rng *utils.PRNGService, tuning config.Tuning, logger *log.Logger) *PlayState {
	world := physics.NewWorld(tuning.Physics.Gravity)
	world.MaxSubsteps = tuning.Physics.MaxSubsteps

	return &PlayState{
		tuning:  tuning,
		scene:   system.NewSceneSystem(ecs, tuning.Lane.PinRows, logger),
		shoot:   system.NewShootSystem(ecs, rng, publisher, tuning.Shooting, logger),
		physics: system.NewPhysicsSystem(ecs, world),
		despawn: system.NewDespawnFallenSystem(ecs, tuning.Physics.FallThreshold, publisher),
		end:     system.NewEndConditionSystem(ecs, sm, publisher, logger),
		cleanup: system.NewCleanupSystem(ecs, logger),
		logger:  logger.With("system", "play"),
	}
}

func (p *PlayState) Enter() {
	p.session = system.NewPlaySession(p.tuning.Shooting.Interval)
	sum := p.scene.Setup()
	p.logger.Info("level started",
		"session", p.session.ID,
		"pins", sum.Pins,
		"statics", sum.Statics)
}

// Update: броски -> физика -> удаление упавших -> проверка конца
func (p *PlayState) Update(deltaTime float64) {
	if p.session == nil {
		return
	}
	p.session.Advance(deltaTime)
	p.shoot.Update(p.session, deltaTime)
	p.physics.Update(deltaTime)
	p.despawn.Update(p.session)
	p.end.Update(p.session)
}

func (p *PlayState) Exit() {
	n := p.cleanup.Teardown()
	if p.session != nil {
		p.logger.Info("level unloaded",
			"session", p.session.ID,
			"entities", n,
			"balls", p.session.BallsThrown,
			"cleared", p.session.Cleared)
	}
	p.last = p.session
	p.session = nil
}

// Session — текущая сессия, nil вне игры
func (p *PlayState) Session() *system.PlaySession {
	return p.session
}

// LastSession — последняя завершённая сессия
func (p *PlayState) LastSession() *system.PlaySession {
	return p.last
}
