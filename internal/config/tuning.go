// internal/config/tuning.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/bowling.yaml
var defaultTuningYAML []byte

// Range — полуинтервал [Min, Max)
type Range [2]float64

func (r Range) Min() float64 { return r[0] }
func (r Range) Max() float64 { return r[1] }

// Tuning — параметры, которые можно менять без пересборки
type Tuning struct {
	Seed     int64          `yaml:"seed"`
	LogLevel string         `yaml:"log_level"`
	Physics  PhysicsTuning  `yaml:"physics"`
	Lane     LaneTuning     `yaml:"lane"`
	Shooting ShootingTuning `yaml:"shooting"`
	Audio    AudioTuning    `yaml:"audio"`
	Storage  StorageTuning  `yaml:"storage"`
}

type PhysicsTuning struct {
	Gravity       float64 `yaml:"gravity"`
	MaxSubsteps   int     `yaml:"max_substeps"`
	FallThreshold float64 `yaml:"fall_threshold"`
}

type LaneTuning struct {
	PinRows int `yaml:"pin_rows"`
}

type ShootingTuning struct {
	Interval float64 `yaml:"interval"`
	Radius   Range   `yaml:"radius"`
	SpawnX   Range   `yaml:"spawn_x"`
	Curve    Range   `yaml:"curve"`
	Speed    Range   `yaml:"speed"`
}

type AudioTuning struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type StorageTuning struct {
	DBPath string `yaml:"db_path"`
}

// DefaultTuning возвращает значения, совпадающие с константами игры
func DefaultTuning() Tuning {
	return Tuning{
		LogLevel: "info",
		Physics: PhysicsTuning{
			Gravity:       -9.81,
			MaxSubsteps:   32,
			FallThreshold: DefaultFallThreshold,
		},
		Lane: LaneTuning{PinRows: DefaultPinRows},
		Shooting: ShootingTuning{
			Interval: DefaultShootInterval,
			Radius:   Range{DefaultBallRadiusMin, DefaultBallRadiusMax},
			SpawnX:   Range{DefaultSpawnXMin, DefaultSpawnXMax},
			Curve:    Range{DefaultCurveMin, DefaultCurveMax},
			Speed:    Range{DefaultSpeedMin, DefaultSpeedMax},
		},
		Audio:   AudioTuning{Enabled: true, Volume: 0.6},
		Storage: StorageTuning{DBPath: "~/.bowling/sessions.db"},
	}
}

// LoadTuning загружает параметры.
// Порядок поиска: customPath -> ~/.bowling/config.yaml -> ./configs/bowling.yaml -> встроенные значения.
// Поля, которых нет в файле, остаются по умолчанию.
func LoadTuning(customPath string) (Tuning, error) {
	cfg := DefaultTuning()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "bowling.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil
	}
	return cfg, cfg.Validate()
}

// Validate проверяет диапазоны и собирает все ошибки сразу
func (t Tuning) Validate() error {
	var errs []error
	if t.Physics.MaxSubsteps < 1 {
		errs = append(errs, fmt.Errorf("physics.max_substeps must be >= 1, got %d", t.Physics.MaxSubsteps))
	}
	if t.Lane.PinRows < 1 {
		errs = append(errs, fmt.Errorf("lane.pin_rows must be >= 1, got %d", t.Lane.PinRows))
	}
	if t.Shooting.Interval <= 0 {
		errs = append(errs, fmt.Errorf("shooting.interval must be positive, got %v", t.Shooting.Interval))
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"shooting.radius", t.Shooting.Radius},
		{"shooting.spawn_x", t.Shooting.SpawnX},
		{"shooting.curve", t.Shooting.Curve},
		{"shooting.speed", t.Shooting.Speed},
	}
	for _, rr := range ranges {
		if rr.r.Min() >= rr.r.Max() {
			errs = append(errs, fmt.Errorf("%s: min %v must be below max %v", rr.name, rr.r.Min(), rr.r.Max()))
		}
	}
	if t.Shooting.Radius.Min() <= 0 {
		errs = append(errs, fmt.Errorf("shooting.radius must be positive, got %v", t.Shooting.Radius.Min()))
	}
	if t.Audio.Volume < 0 || t.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", t.Audio.Volume))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bowling", filename)
}
