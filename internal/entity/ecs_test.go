package entity

import (
	"testing"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/pkg/physics"
)

func TestSpawnedEntitiesCarryLevelUnload(t *testing.T) {
	e := NewECS()
	e.SpawnStatic(physics.Zero, physics.V3(12, 1, 128), config.LaneColor)
	e.SpawnPin(physics.V3(0, 2, -25))
	e.SpawnBall(BallSpec{Position: physics.V3(0, 2.5, 58), Velocity: physics.V3(0, 0, -50), Radius: 0.3})
	e.SpawnLight(physics.V3(40, 30, -10), component.PointLight{Intensity: 1})
	e.SpawnCamera(physics.V3(0, 8, -50), component.Camera{Up: physics.Up})

	if n := CountTagged[component.LevelUnload](e); n != 5 {
		t.Fatalf("LevelUnload count = %d, want 5", n)
	}
	if e.CountPins() != 1 || e.CountBalls() != 1 {
		t.Fatalf("pins=%d balls=%d, want 1 and 1", e.CountPins(), e.CountBalls())
	}
}

func TestSpawnBallSetsBody(t *testing.T) {
	e := NewECS()
	ball := e.SpawnBall(BallSpec{Position: physics.V3(1, 2.5, 58), Velocity: physics.V3(3, 0, -60), Radius: 0.4})

	body := e.Body(ball)
	if body == nil {
		t.Fatal("ball has no body")
	}
	if body.Kind != physics.Dynamic || !body.CCD || body.Density != config.BallDensity {
		t.Fatalf("unexpected ball body: %+v", body.Body)
	}
	if body.Shape.Kind != physics.ShapeSphere || body.Shape.Radius != 0.4 {
		t.Fatalf("unexpected ball shape: %+v", body.Shape)
	}
	if body.Velocity != physics.V3(3, 0, -60) {
		t.Fatalf("velocity = %v", body.Velocity)
	}
	if tr := e.Transform(ball); tr == nil || tr.Position != physics.V3(1, 2.5, 58) {
		t.Fatalf("transform = %+v", tr)
	}
}

func TestSpawnPinIsLightAndContinuous(t *testing.T) {
	e := NewECS()
	pin := e.SpawnPin(physics.V3(0, 2, -25))
	body := e.Body(pin)
	if body.Kind != physics.Dynamic || !body.CCD {
		t.Fatalf("pin body = %+v", body.Body)
	}
	if body.Density != config.PinDensity || body.Density >= config.BallDensity {
		t.Fatalf("pin density %v must be the configured light density", body.Density)
	}
}

func TestDespawnTaggedRemovesOnlyTagged(t *testing.T) {
	e := NewECS()
	for i := 0; i < 3; i++ {
		e.SpawnPin(physics.V3(float64(i), 2, -25))
	}
	ball := e.SpawnBall(BallSpec{Radius: 0.3})

	if n := DespawnTagged[component.Pin](e); n != 3 {
		t.Fatalf("DespawnTagged removed %d, want 3", n)
	}
	if e.CountPins() != 0 {
		t.Fatalf("pins left: %d", e.CountPins())
	}
	if !e.Alive(ball) {
		t.Fatal("ball must survive a pin sweep")
	}

	if n := DespawnTagged[component.LevelUnload](e); n != 1 {
		t.Fatalf("LevelUnload sweep removed %d, want 1", n)
	}
	if e.Alive(ball) || e.Transform(ball) != nil {
		t.Fatal("ball should be gone")
	}
	if n := DespawnTagged[component.LevelUnload](e); n != 0 {
		t.Fatalf("second sweep removed %d, want 0", n)
	}
}
