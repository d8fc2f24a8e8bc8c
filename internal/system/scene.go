// internal/system/scene.go
package system

import (
	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/pkg/physics"

	"github.com/charmbracelet/log"
)

// SceneSummary — что было создано при входе в игру
type SceneSummary struct {
	Statics int
	Pins    int
	Lights  int
	Cameras int
}

// PinLayout возвращает позиции кеглей треугольником.
// В ряду i колонки идут от -i до i с шагом 2, всего rows*(rows+1)/2 кеглей.
func PinLayout(rows int) []physics.Vec3 {
	if rows < 1 {
		return nil
	}
	out := make([]physics.Vec3, 0, rows*(rows+1)/2)
	for i := 0; i < rows; i++ {
		for c := -i; c <= i; c += 2 {
			out = append(out, physics.V3(
				float64(c)*config.PinColumnScale,
				config.PinSpawnY,
				config.PinFrontZ-float64(i),
			))
		}
	}
	return out
}

// SceneSystem строит дорожку, кегли, свет и камеру
type SceneSystem struct {
	ecs     *entity.ECS
	pinRows int
	logger  *log.Logger
}

func NewSceneSystem(ecs *entity.ECS, pinRows int, logger *log.Logger) *SceneSystem {
	return &SceneSystem{ecs: ecs, pinRows: pinRows, logger: logger.With("system", "scene")}
}

func (s *SceneSystem) Setup() SceneSummary {
	var sum SceneSummary

	// Пол и бортики
	s.ecs.SpawnStatic(physics.Zero,
		physics.V3(config.GroundWidth, config.GroundHeight, config.GroundLength), config.LaneColor)
	s.ecs.SpawnStatic(physics.V3(-config.RailingX, config.RailingY, 0),
		physics.V3(config.RailingWidth, config.LeftRailingHeight, config.GroundLength), config.LaneColor)
	s.ecs.SpawnStatic(physics.V3(config.RailingX, config.RailingY, 0),
		physics.V3(config.RailingWidth, config.RightRailingHeight, config.GroundLength), config.LaneColor)
	sum.Statics = 3

	for _, pos := range PinLayout(s.pinRows) {
		s.ecs.SpawnPin(pos)
		sum.Pins++
	}

	s.ecs.SpawnLight(physics.V3(config.LightPosition[0], config.LightPosition[1], config.LightPosition[2]),
		component.PointLight{Intensity: config.LightIntensity, Range: config.LightRange, Shadows: true})
	sum.Lights = 1

	s.ecs.SpawnCamera(physics.V3(config.CameraPosition[0], config.CameraPosition[1], config.CameraPosition[2]),
		component.Camera{Target: physics.Zero, Up: physics.Up, Fovy: config.CameraFovy})
	sum.Cameras = 1

	s.logger.Debug("lane built", "statics", sum.Statics, "pins", sum.Pins)
	return sum
}
