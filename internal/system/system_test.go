package system

import (
	"io"
	"math"
	"testing"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/internal/event"
	"go-bowling/internal/utils"
	"go-bowling/pkg/physics"

	"github.com/charmbracelet/log"
)

type published struct {
	events []event.Event
}

func (p *published) Publish(t event.EventType, data interface{}) {
	p.events = append(p.events, event.Event{Type: t, Data: data})
}

func (p *published) count(t event.EventType) int {
	n := 0
	for _, e := range p.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type requests struct {
	got []component.AppState
}

func (r *requests) Request(next component.AppState) { r.got = append(r.got, next) }

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestPinLayoutTriangle(t *testing.T) {
	pins := PinLayout(4)
	if len(pins) != 10 {
		t.Fatalf("PinLayout(4) = %d pins, want 10", len(pins))
	}
	perRow := map[float64]int{}
	for _, p := range pins {
		if p.Y != config.PinSpawnY {
			t.Errorf("pin y = %v", p.Y)
		}
		perRow[p.Z]++
	}
	for i, want := range []int{1, 2, 3, 4} {
		if got := perRow[config.PinFrontZ-float64(i)]; got != want {
			t.Errorf("row %d has %d pins, want %d", i, got, want)
		}
	}
	// Передняя кегля по центру, крайняя в последнем ряду на -3/1.5
	if pins[0] != physics.V3(0, 2, -25) {
		t.Errorf("head pin at %v", pins[0])
	}
	if math.Abs(pins[6].X+2) > 1e-9 || pins[6].Z != -28 {
		t.Errorf("last row first pin at %v, want (-2, 2, -28)", pins[6])
	}
	if PinLayout(0) != nil {
		t.Error("zero rows must give no pins")
	}
}

func TestSceneSetup(t *testing.T) {
	e := entity.NewECS()
	sum := NewSceneSystem(e, config.DefaultPinRows, quietLogger()).Setup()

	want := SceneSummary{Statics: 3, Pins: 10, Lights: 1, Cameras: 1}
	if sum != want {
		t.Fatalf("summary = %+v, want %+v", sum, want)
	}
	if e.CountPins() != 10 || e.CountBalls() != 0 {
		t.Fatalf("pins=%d balls=%d", e.CountPins(), e.CountBalls())
	}
	if n := entity.CountTagged[component.LevelUnload](e); n != 15 {
		t.Fatalf("LevelUnload entities = %d, want 15", n)
	}
}

func TestRollBallRanges(t *testing.T) {
	rng := utils.NewPRNGService(7)
	tuning := config.DefaultTuning().Shooting
	for i := 0; i < 2000; i++ {
		spec := RollBall(rng, tuning)
		v := spec.Velocity
		if v.Y != 0 {
			t.Fatalf("vy = %v", v.Y)
		}
		if v.Z < -100 || v.Z >= -40 {
			t.Fatalf("vz = %v out of [-100, -40)", v.Z)
		}
		if v.X < -5 || v.X >= 5 {
			t.Fatalf("vx = %v out of [-5, 5)", v.X)
		}
		if spec.Radius < 0.25 || spec.Radius >= 0.5 {
			t.Fatalf("radius = %v", spec.Radius)
		}
		if spec.Position.X < -2 || spec.Position.X >= 2 || spec.Position.Y != 2.5 || spec.Position.Z != 58 {
			t.Fatalf("spawn = %v", spec.Position)
		}
		if spec.Color == config.BallColors[3] {
			t.Fatal("the last palette color is outside the drawn range")
		}
	}
}

func TestRollBallDeterministicForSeed(t *testing.T) {
	tuning := config.DefaultTuning().Shooting
	a := RollBall(utils.NewPRNGService(99), tuning)
	b := RollBall(utils.NewPRNGService(99), tuning)
	if a != b {
		t.Fatalf("same seed gave %+v and %+v", a, b)
	}
}

func TestShootSystemOneBallPerInterval(t *testing.T) {
	e := entity.NewECS()
	pub := &published{}
	shoot := NewShootSystem(e, utils.NewPRNGService(1), pub, config.DefaultTuning().Shooting, quietLogger())
	session := NewPlaySession(0.1)

	for i := 0; i < 10; i++ {
		shoot.Update(session, 0.1)
	}
	if e.CountBalls() != 10 || session.BallsThrown != 10 {
		t.Fatalf("balls=%d thrown=%d, want 10", e.CountBalls(), session.BallsThrown)
	}
	if pub.count(event.BallLaunched) != 10 {
		t.Fatalf("BallLaunched events = %d", pub.count(event.BallLaunched))
	}

	// Длинный кадр выпускает несколько шаров
	if n := shoot.Update(session, 0.35); n != 3 {
		t.Fatalf("long frame spawned %d, want 3", n)
	}
	if n := shoot.Update(session, 0.06); n != 1 {
		t.Fatalf("carry-over should fire once, got %d", n)
	}
}

func TestShootSystemShortFramesAccumulate(t *testing.T) {
	e := entity.NewECS()
	shoot := NewShootSystem(e, utils.NewPRNGService(1), &published{}, config.DefaultTuning().Shooting, quietLogger())
	session := NewPlaySession(0.1)
	for i := 0; i < 4; i++ {
		shoot.Update(session, 0.02)
	}
	if e.CountBalls() != 0 {
		t.Fatalf("spawned %d balls before the first interval", e.CountBalls())
	}
	shoot.Update(session, 0.03)
	if e.CountBalls() != 1 {
		t.Fatalf("balls = %d, want 1", e.CountBalls())
	}
}

func TestNewSessionStartsFresh(t *testing.T) {
	a, b := NewPlaySession(0.1), NewPlaySession(0.1)
	if a.ID == b.ID {
		t.Fatal("session ids must differ")
	}
	if a.Timer == b.Timer || a.Timer.Elapsed() != 0 {
		t.Fatal("each session needs its own fresh timer")
	}
	a.Advance(0.5)
	a.Advance(-1)
	if a.Elapsed != 0.5 {
		t.Fatalf("elapsed = %v", a.Elapsed)
	}
}

func TestDespawnFallen(t *testing.T) {
	e := entity.NewECS()
	pub := &published{}
	session := NewPlaySession(0.1)

	sinking := e.SpawnBall(entity.BallSpec{Position: physics.V3(0, -5, 0), Radius: 0.3})
	floating := e.SpawnBall(entity.BallSpec{Position: physics.V3(0, -4.9, 0), Radius: 0.3})
	pin := e.SpawnPin(physics.V3(0, 2, -25))
	e.Transform(pin).Position.Y = -12

	balls, pins := NewDespawnFallenSystem(e, config.DefaultFallThreshold, pub).Update(session)
	if balls != 1 || pins != 1 {
		t.Fatalf("removed balls=%d pins=%d, want 1 and 1", balls, pins)
	}
	if e.Alive(sinking) || e.Alive(pin) {
		t.Fatal("entities at or below the threshold must be gone")
	}
	if !e.Alive(floating) {
		t.Fatal("ball above the threshold must stay")
	}
	if session.PinsKnocked != 1 {
		t.Fatalf("pins knocked = %d", session.PinsKnocked)
	}
	if pub.count(event.BallFell) != 1 || pub.count(event.PinFell) != 1 {
		t.Fatalf("events = %+v", pub.events)
	}
}

func TestEndConditionRequestsMenuWhenNoPins(t *testing.T) {
	e := entity.NewECS()
	req := &requests{}
	pub := &published{}
	end := NewEndConditionSystem(e, req, pub, quietLogger())
	session := NewPlaySession(0.1)

	pin := e.SpawnPin(physics.V3(0, 2, -25))
	if end.Update(session) {
		t.Fatal("level must not be cleared while a pin stands")
	}
	if len(req.got) != 0 {
		t.Fatalf("unexpected requests: %v", req.got)
	}

	e.RemoveEntity(pin)
	if !end.Update(session) || !end.Update(session) {
		t.Fatal("level must be cleared with zero pins")
	}
	if len(req.got) != 2 || req.got[0] != component.MainMenu {
		t.Fatalf("requests = %v", req.got)
	}
	if pub.count(event.LevelCleared) != 1 {
		t.Fatalf("LevelCleared published %d times, want 1", pub.count(event.LevelCleared))
	}
	if !session.Cleared {
		t.Fatal("session must be marked cleared")
	}
}

func TestCleanupRemovesEverythingFromLevel(t *testing.T) {
	e := entity.NewECS()
	NewSceneSystem(e, 4, quietLogger()).Setup()
	e.SpawnBall(entity.BallSpec{Radius: 0.3})

	if n := NewCleanupSystem(e, quietLogger()).Teardown(); n != 16 {
		t.Fatalf("teardown removed %d, want 16", n)
	}
	if entity.CountTagged[component.LevelUnload](e) != 0 || e.CountPins() != 0 || e.CountBalls() != 0 {
		t.Fatal("level entities survived teardown")
	}
}

func TestPhysicsSystemSyncsTransforms(t *testing.T) {
	e := entity.NewECS()
	NewSceneSystem(e, 4, quietLogger()).Setup()
	ball := e.SpawnBall(entity.BallSpec{Position: physics.V3(0, 2.5, 58), Velocity: physics.V3(0, 0, -50), Radius: 0.4})

	sys := NewPhysicsSystem(e, physics.NewWorld(physics.DefaultGravity))
	// 1.5 с: шар успевает приземлиться, но ещё не доехал до кеглей
	for i := 0; i < 90; i++ {
		sys.Update(1.0 / 60)
	}

	tr := e.Transform(ball)
	if tr.Position.Z >= 38 {
		t.Fatalf("ball did not travel down the lane: z = %v", tr.Position.Z)
	}
	// Шар лежит на полу: верх пола на 0.5
	if math.Abs(tr.Position.Y-0.9) > 0.05 {
		t.Fatalf("ball y = %v, want resting on the lane", tr.Position.Y)
	}
	if tr.Position != e.Body(ball).Position {
		t.Fatal("transform and body disagree after step")
	}
}

func TestPhysicsSystemHonorsTransformEdits(t *testing.T) {
	e := entity.NewECS()
	pin := e.SpawnPin(physics.V3(0, 2, -25))
	sys := NewPhysicsSystem(e, physics.NewWorld(physics.DefaultGravity))

	e.Transform(pin).Position = physics.V3(3, 40, 0)
	sys.Update(1.0 / 60)
	if p := e.Transform(pin).Position; p.X != 3 || p.Y >= 40 || p.Y < 39 {
		t.Fatalf("pin at %v, want teleported to (3, ~40, 0)", p)
	}
}
