package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-bowling/internal/component"
	"go-bowling/internal/storage"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("NewLogger() = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "bowling") {
		t.Fatalf("log output = %q", out)
	}

	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Fatal("unknown level must be rejected")
	}
}

func TestResolveTuningAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bowling.yaml")
	if err := os.WriteFile(path, []byte("seed: 5\nlane:\n  pin_rows: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := ResolveTuning(Flags{ConfigPath: path, Seed: 77, SeedSet: true, DBPath: "/tmp/x.db", Mute: true})
	if err != nil {
		t.Fatalf("ResolveTuning() = %v", err)
	}
	if tuning.Seed != 77 || tuning.Lane.PinRows != 3 || tuning.Storage.DBPath != "/tmp/x.db" || tuning.Audio.Enabled {
		t.Fatalf("tuning = %+v", tuning)
	}

	// Без SeedSet значение из файла остаётся
	tuning, err = ResolveTuning(Flags{ConfigPath: path, Seed: 77})
	if err != nil {
		t.Fatal(err)
	}
	if tuning.Seed != 5 {
		t.Fatalf("seed = %d, want 5 from file", tuning.Seed)
	}
}

func TestBootstrapDevModeWithStore(t *testing.T) {
	var logs bytes.Buffer
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	g, closeGame, err := Bootstrap(Flags{
		Dev:       true,
		Mute:      true,
		DBPath:    dbPath,
		Seed:      9,
		SeedSet:   true,
		LogLevel:  "error",
		LogOutput: &logs,
	})
	if err != nil {
		t.Fatalf("Bootstrap() = %v", err)
	}
	if g.Current() != component.Playing || g.Rng.Seed() != 9 {
		t.Fatalf("state=%v seed=%d", g.Current(), g.Rng.Seed())
	}
	g.Update(0.1)
	closeGame()

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	recent, err := store.RecentSessions(1)
	if err != nil || len(recent) != 1 || recent[0].Seed != 9 {
		t.Fatalf("recent = %+v, err = %v", recent, err)
	}
}

func TestBootstrapRejectsBadConfig(t *testing.T) {
	if _, _, err := Bootstrap(Flags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("missing config must fail")
	}
}
