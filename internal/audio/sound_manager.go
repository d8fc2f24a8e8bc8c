// internal/audio/sound_manager.go
package audio

import (
	"math/rand/v2"
	"sync"
	"time"

	"go-bowling/internal/config"
	"go-bowling/internal/event"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sound — один из процедурных звуков
type Sound int

const (
	SoundWhoosh Sound = iota
	SoundClack
	SoundBell
)

const maxVoices = 12

// SoundManager озвучивает игровые события.
// Пока Initialize не вызван или звук выключен, все вызовы ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[Sound]floatBuffer
	volume      float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

func NewSoundManager(cfg config.AudioTuning, logger *log.Logger) *SoundManager {
	rng := rand.New(rand.NewPCG(1, 2))
	return &SoundManager{
		mixer: &beep.Mixer{},
		sounds: map[Sound]floatBuffer{
			SoundWhoosh: generateWhoosh(rng),
			SoundClack:  generateClack(rng),
			SoundBell:   generateBell(rng),
		},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger.With("system", "audio"),
	}
}

// Initialize открывает устройство вывода
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe подписывает менеджер на события игры
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(sm, event.BallLaunched, event.PinFell, event.LevelCleared)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.BallLaunched:
		sm.Play(SoundWhoosh)
	case event.PinFell:
		sm.Play(SoundClack)
	case event.LevelCleared:
		sm.Play(SoundBell)
	}
}

// Play запускает звук, если есть свободный голос
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.sounds[s]
	if !ok {
		return
	}
	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(&bufferStreamer{buf: buf, volume: sm.volume})
	}
	speaker.Unlock()
}

// Cleanup глушит все звуки
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
	sm.logger.Debug("audio stopped")
}
