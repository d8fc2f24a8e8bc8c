package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/internal/storage"

	"github.com/charmbracelet/log"
)

func newTestGame(t *testing.T, store SessionStore) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 2024
	return NewGame(Options{Tuning: tuning, Logger: log.New(io.Discard), Store: store})
}

func removeAllPins(g *Game) {
	for _, e := range entity.Tagged[component.Pin](g.ECS) {
		g.ECS.RemoveEntity(e)
	}
}

func TestStartMessageEntersPlaying(t *testing.T) {
	g := newTestGame(t, nil)
	if g.Current() != component.MainMenu {
		t.Fatalf("initial state = %v", g.Current())
	}

	g.PressStart()
	g.Update(0)

	if g.Current() != component.Playing {
		t.Fatalf("state = %v, want Playing", g.Current())
	}
	if g.ECS.CountPins() != 10 || g.ECS.CountBalls() != 0 {
		t.Fatalf("pins=%d balls=%d", g.ECS.CountPins(), g.ECS.CountBalls())
	}
	if n := entity.CountTagged[component.LevelUnload](g.ECS); n != 15 {
		t.Fatalf("level entities = %d, want lane, railings, 10 pins, light and camera", n)
	}
}

func TestTenIntervalsSpawnTenBalls(t *testing.T) {
	g := newTestGame(t, nil)
	g.PressStart()
	g.Update(0)

	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}
	if g.Stats().BallsLaunched != 10 {
		t.Fatalf("balls launched = %d, want 10", g.Stats().BallsLaunched)
	}
}

func TestClearingPinsReturnsToMenuAndUnloads(t *testing.T) {
	g := newTestGame(t, nil)
	g.PressStart()
	g.Update(0)
	g.Update(0.1)

	removeAllPins(g)
	g.Update(0.016)

	if g.Current() != component.MainMenu {
		t.Fatalf("state = %v, want MainMenu", g.Current())
	}
	if n := entity.CountTagged[component.LevelUnload](g.ECS); n != 0 {
		t.Fatalf("%d level entities left after exit", n)
	}
	if g.Stats().Clears != 1 {
		t.Fatalf("clears = %d", g.Stats().Clears)
	}
}

func TestReplayAfterClear(t *testing.T) {
	g := newTestGame(t, nil)
	g.PressStart()
	g.Update(0)
	removeAllPins(g)
	g.Update(0.016)

	g.PressStart()
	g.Update(0)
	if g.Current() != component.Playing || g.ECS.CountPins() != 10 {
		t.Fatalf("second round: state=%v pins=%d", g.Current(), g.ECS.CountPins())
	}
}

func TestClearedSessionIsStoredAndShownInMenu(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := newTestGame(t, store)
	g.PressStart()
	g.Update(0)
	for i := 0; i < 5; i++ {
		g.Update(0.1)
	}
	removeAllPins(g)
	g.Update(0.1)

	best, ok, err := store.BestClear()
	if err != nil || !ok {
		t.Fatalf("BestClear() ok=%v err=%v", ok, err)
	}
	if best.Seed != 2024 || best.BallsThrown != 6 || !best.Cleared {
		t.Fatalf("stored record = %+v", best)
	}
	if !strings.HasPrefix(g.Menu.Caption(), "Best clear: 0.6s") {
		t.Fatalf("menu caption = %q", g.Menu.Caption())
	}
}

type failingStore struct{ saves int }

func (f *failingStore) SaveSession(storage.SessionRecord) error {
	f.saves++
	return errors.New("read-only")
}

func (f *failingStore) BestClear() (storage.SessionRecord, bool, error) {
	return storage.SessionRecord{}, false, errors.New("read-only")
}

func TestStoreFailuresDoNotStopTheGame(t *testing.T) {
	store := &failingStore{}
	g := newTestGame(t, store)
	g.PressStart()
	g.Update(0)
	removeAllPins(g)
	g.Update(0.016)

	if store.saves != 1 || g.Current() != component.MainMenu {
		t.Fatalf("saves=%d state=%v", store.saves, g.Current())
	}
}

func TestCloseSavesUnfinishedSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := newTestGame(t, store)
	g.PressStart()
	g.Update(0)
	g.Update(0.25)
	g.Close()

	recent, err := store.RecentSessions(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Cleared || recent[0].BallsThrown != 2 {
		t.Fatalf("recent = %+v", recent)
	}
}

func TestDevModeStartsPlaying(t *testing.T) {
	g := NewGame(Options{Tuning: config.DefaultTuning(), Logger: log.New(io.Discard), StartPlaying: true})
	if g.Current() != component.Playing || g.ECS.CountPins() != 10 {
		t.Fatalf("state=%v pins=%d", g.Current(), g.ECS.CountPins())
	}
}

func TestRunHeadlessStopsAtDuration(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Seed = 2024
	// Двоичные доли секунды складываются без погрешности
	tuning.Shooting.Interval = 0.125
	g := NewGame(Options{Tuning: tuning, Logger: log.New(io.Discard)})

	rep, err := RunHeadless(context.Background(), g, HeadlessOptions{Step: 0.125, Duration: 1})
	if err != nil {
		t.Fatalf("RunHeadless() = %v", err)
	}
	if rep.Frames != 8 || rep.BallsThrown != 8 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.SessionID == "" || rep.Seed != 2024 {
		t.Fatalf("report identity = %+v", rep)
	}
	if out := rep.Render(); !strings.Contains(out, "Bevy Bowling") || !strings.Contains(out, rep.SessionID) {
		t.Fatalf("render = %s", out)
	}
}

func TestRunHeadlessHonorsContext(t *testing.T) {
	g := newTestGame(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunHeadless(ctx, g, HeadlessOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunHeadlessEndsOnClear(t *testing.T) {
	g := newTestGame(t, nil)
	g.PressStart()
	g.Update(0)
	removeAllPins(g)

	rep, err := RunHeadless(context.Background(), g, HeadlessOptions{Step: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if !rep.Cleared || rep.Frames != 1 || rep.PinsLeft != 0 {
		t.Fatalf("report = %+v", rep)
	}
}
