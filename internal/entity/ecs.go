// internal/entity/ecs.go
package entity

import (
	"image/color"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/pkg/physics"

	"github.com/mlange-42/ark/ecs"
)

// ECS — обёртка над миром ark с заранее созданными мапперами и фильтрами.
// Каждая сущность сцены создаётся вместе с тегом LevelUnload.
type ECS struct {
	World ecs.World

	transforms *ecs.Map[component.Transform]
	bodies     *ecs.Map[component.RigidBody]

	statics *ecs.Map4[component.Transform, component.RigidBody, component.Renderable, component.LevelUnload]
	pins    *ecs.Map5[component.Transform, component.RigidBody, component.Renderable, component.Pin, component.LevelUnload]
	balls   *ecs.Map5[component.Transform, component.RigidBody, component.Renderable, component.Ball, component.LevelUnload]
	lights  *ecs.Map3[component.Transform, component.PointLight, component.LevelUnload]
	cameras *ecs.Map3[component.Transform, component.Camera, component.LevelUnload]

	Bodies    *ecs.Filter2[component.Transform, component.RigidBody]
	Balls     *ecs.Filter1[component.Transform]
	Pins      *ecs.Filter1[component.Transform]
	Drawables *ecs.Filter2[component.Transform, component.Renderable]
	Lights    *ecs.Filter2[component.Transform, component.PointLight]
	Cameras   *ecs.Filter2[component.Transform, component.Camera]
}

// BallSpec — параметры одного броска
type BallSpec struct {
	Position physics.Vec3
	Velocity physics.Vec3
	Radius   float64
	Color    color.RGBA
}

func NewECS() *ECS {
	e := &ECS{World: ecs.NewWorld()}
	w := &e.World

	e.transforms = ecs.NewMap[component.Transform](w)
	e.bodies = ecs.NewMap[component.RigidBody](w)

	e.statics = ecs.NewMap4[component.Transform, component.RigidBody, component.Renderable, component.LevelUnload](w)
	e.pins = ecs.NewMap5[component.Transform, component.RigidBody, component.Renderable, component.Pin, component.LevelUnload](w)
	e.balls = ecs.NewMap5[component.Transform, component.RigidBody, component.Renderable, component.Ball, component.LevelUnload](w)
	e.lights = ecs.NewMap3[component.Transform, component.PointLight, component.LevelUnload](w)
	e.cameras = ecs.NewMap3[component.Transform, component.Camera, component.LevelUnload](w)

	e.Bodies = ecs.NewFilter2[component.Transform, component.RigidBody](w)
	e.Balls = ecs.NewFilter1[component.Transform](w).With(ecs.C[component.Ball]())
	e.Pins = ecs.NewFilter1[component.Transform](w).With(ecs.C[component.Pin]())
	e.Drawables = ecs.NewFilter2[component.Transform, component.Renderable](w)
	e.Lights = ecs.NewFilter2[component.Transform, component.PointLight](w)
	e.Cameras = ecs.NewFilter2[component.Transform, component.Camera](w)
	return e
}

// SpawnStatic создаёт неподвижный бокс (пол, бортики)
func (e *ECS) SpawnStatic(pos, size physics.Vec3, c color.RGBA) ecs.Entity {
	body := component.RigidBody{Body: physics.Body{
		Kind:        physics.Static,
		Shape:       physics.Box(size.X/2, size.Y/2, size.Z/2),
		Position:    pos,
		Friction:    config.LaneFriction,
		Restitution: config.LaneRestitution,
	}}
	return e.statics.NewEntity(
		&component.Transform{Position: pos},
		&body,
		&component.Renderable{Mesh: component.MeshBox, Size: size, Color: c},
		&component.LevelUnload{},
	)
}

// SpawnPin создаёт кеглю: лёгкое динамическое тело с CCD
func (e *ECS) SpawnPin(pos physics.Vec3) ecs.Entity {
	size := physics.V3(config.PinWidth, config.PinHeight, config.PinWidth)
	body := component.RigidBody{Body: physics.Body{
		Kind:        physics.Dynamic,
		Shape:       physics.Box(size.X/2, size.Y/2, size.Z/2),
		Position:    pos,
		Density:     config.PinDensity,
		CCD:         true,
		Friction:    config.PinFriction,
		Restitution: config.PinRestitution,
	}}
	return e.pins.NewEntity(
		&component.Transform{Position: pos},
		&body,
		&component.Renderable{Mesh: component.MeshBox, Size: size, Color: config.PinColor},
		&component.Pin{},
		&component.LevelUnload{},
	)
}

// SpawnBall создаёт тяжёлый шар с заданной начальной скоростью
func (e *ECS) SpawnBall(spec BallSpec) ecs.Entity {
	body := component.RigidBody{Body: physics.Body{
		Kind:        physics.Dynamic,
		Shape:       physics.Sphere(spec.Radius),
		Position:    spec.Position,
		Velocity:    spec.Velocity,
		Density:     config.BallDensity,
		CCD:         true,
		Friction:    config.BallFriction,
		Restitution: config.BallRestitution,
	}}
	return e.balls.NewEntity(
		&component.Transform{Position: spec.Position},
		&body,
		&component.Renderable{Mesh: component.MeshSphere, Radius: spec.Radius, Color: spec.Color},
		&component.Ball{},
		&component.LevelUnload{},
	)
}

func (e *ECS) SpawnLight(pos physics.Vec3, light component.PointLight) ecs.Entity {
	return e.lights.NewEntity(&component.Transform{Position: pos}, &light, &component.LevelUnload{})
}

func (e *ECS) SpawnCamera(pos physics.Vec3, camera component.Camera) ecs.Entity {
	return e.cameras.NewEntity(&component.Transform{Position: pos}, &camera, &component.LevelUnload{})
}

// Alive — существует ли сущность
func (e *ECS) Alive(entity ecs.Entity) bool {
	return e.World.Alive(entity)
}

// RemoveEntity удаляет одну сущность. Нельзя вызывать во время обхода запроса.
func (e *ECS) RemoveEntity(entity ecs.Entity) {
	e.World.RemoveEntity(entity)
}

// Transform возвращает позицию сущности или nil
func (e *ECS) Transform(entity ecs.Entity) *component.Transform {
	if !e.World.Alive(entity) || !e.transforms.Has(entity) {
		return nil
	}
	return e.transforms.Get(entity)
}

// Body возвращает тело сущности или nil
func (e *ECS) Body(entity ecs.Entity) *component.RigidBody {
	if !e.World.Alive(entity) || !e.bodies.Has(entity) {
		return nil
	}
	return e.bodies.Get(entity)
}

func (e *ECS) CountPins() int {
	q := e.Pins.Query()
	n := q.Count()
	q.Close()
	return n
}

func (e *ECS) CountBalls() int {
	q := e.Balls.Query()
	n := q.Count()
	q.Close()
	return n
}
