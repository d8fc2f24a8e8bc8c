// internal/app/bootstrap.go
package app

import (
	"fmt"
	"io"
	"os"

	"go-bowling/internal/audio"
	"go-bowling/internal/config"
	"go-bowling/internal/storage"

	"github.com/charmbracelet/log"
)

// Flags — общие флаги командной строки обоих бинарников
type Flags struct {
	Dev        bool
	Seed       int64
	SeedSet    bool
	ConfigPath string
	DBPath     string
	Mute       bool
	LogLevel   string
	LogOutput  io.Writer
}

// NewLogger создаёт логгер с префиксом игры
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bowling",
	})
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}
	return logger, nil
}

// ResolveTuning загружает параметры и применяет поверх них флаги
func ResolveTuning(f Flags) (config.Tuning, error) {
	tuning, err := config.LoadTuning(f.ConfigPath)
	if err != nil {
		return tuning, err
	}
	if f.SeedSet {
		tuning.Seed = f.Seed
	}
	if f.DBPath != "" {
		tuning.Storage.DBPath = f.DBPath
	}
	if f.Mute {
		tuning.Audio.Enabled = false
	}
	if f.LogLevel != "" {
		tuning.LogLevel = f.LogLevel
	}
	return tuning, nil
}

// Bootstrap собирает игру по флагам. Ошибки хранилища и звука только логируются.
// Возвращённая функция закрывает игру и хранилище.
func Bootstrap(f Flags) (*Game, func(), error) {
	tuning, err := ResolveTuning(f)
	if err != nil {
		return nil, nil, err
	}
	logger, err := NewLogger(f.LogOutput, tuning.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	opts := Options{Tuning: tuning, Logger: logger, StartPlaying: f.Dev}

	var store *storage.Store
	if tuning.Storage.DBPath != "" {
		store, err = storage.Open(tuning.Storage.DBPath)
		if err != nil {
			logger.Warn("session records disabled", "err", err)
			store = nil
		} else {
			opts.Store = store
		}
	}

	sound := audio.NewSoundManager(tuning.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		opts.Sound = sound
	}

	g := NewGame(opts)
	closer := func() {
		g.Close()
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("closing session store", "err", err)
			}
		}
	}
	return g, closer, nil
}
