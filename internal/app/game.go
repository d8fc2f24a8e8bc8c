// internal/app/game.go
package app

import (
	"go-bowling/internal/audio"
	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/internal/event"
	"go-bowling/internal/state"
	"go-bowling/internal/storage"
	"go-bowling/internal/ui"
	"go-bowling/internal/utils"

	"github.com/charmbracelet/log"
)

// SessionStore — куда сохраняются итоги сессий
type SessionStore interface {
	SaveSession(rec storage.SessionRecord) error
	BestClear() (storage.SessionRecord, bool, error)
}

// Options — зависимости игры. Store и Sound необязательны.
type Options struct {
	Tuning       config.Tuning
	Logger       *log.Logger
	Store        SessionStore
	Sound        *audio.SoundManager
	StartPlaying bool
}

// Stats — счётчики за всё время работы игры
type Stats struct {
	BallsLaunched int
	BallsFell     int
	PinsFell      int
	Clears        int
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	States          *state.StateMachine
	Menu            *state.MenuState
	Play            *state.PlayState
	Messages        *event.Queue[ui.Message]
	Rng             *utils.PRNGService
	Tuning          config.Tuning

	store  SessionStore
	sound  *audio.SoundManager
	stats  Stats
	logger *log.Logger
}

// NewGame собирает мир, системы и состояния и входит в начальное состояние
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Tuning.Seed)
	sm := state.NewStateMachine(dispatcher, logger)
	queue := event.NewQueue[ui.Message](config.MessageQueueCapacity)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		States:          sm,
		Messages:        queue,
		Rng:             rng,
		Tuning:          opts.Tuning,
		store:           opts.Store,
		sound:           opts.Sound,
		logger:          logger,
	}

	var records state.Records
	if opts.Store != nil {
		records = opts.Store
	}
	g.Menu = state.NewMenuState(sm, queue, records, logger)
	g.Play = state.NewPlayState(ecs, sm, dispatcher, rng, opts.Tuning, logger)
	sm.Register(component.MainMenu, g.Menu)
	sm.Register(component.Playing, g.Play)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(listener, event.BallLaunched, event.BallFell, event.PinFell, event.LevelCleared)
	if g.sound != nil {
		g.sound.Subscribe(dispatcher)
	}

	initial := component.MainMenu
	if opts.StartPlaying {
		initial = component.Playing
	}
	sm.Start(initial)
	logger.Info("game ready", "state", initial, "seed", rng.Seed())
	return g
}

// Send кладёт сообщение интерфейса в очередь кадра
func (g *Game) Send(msg ui.Message) bool {
	if !g.Messages.Send(msg) {
		g.logger.Warn("ui message dropped", "message", msg)
		return false
	}
	return true
}

// PressStart — то же, что нажатие кнопки "Start Game"
func (g *Game) PressStart() bool {
	return g.Send(ui.StartClicked)
}

// Update продвигает игру на один кадр
func (g *Game) Update(deltaTime float64) {
	g.States.Update(deltaTime)
}

func (g *Game) Current() component.AppState {
	return g.States.Current()
}

// MenuView — дерево меню для фронтенда
func (g *Game) MenuView() ui.Node {
	return g.Menu.View()
}

func (g *Game) Stats() Stats {
	return g.stats
}

// Close сохраняет незаконченную сессию и глушит звук
func (g *Game) Close() {
	if s := g.Play.Session(); s != nil && !s.Cleared {
		g.saveSession(storage.SessionRecord{
			ID:          s.ID,
			Seed:        g.Rng.Seed(),
			StartedAt:   s.StartedAt,
			Elapsed:     s.Elapsed,
			BallsThrown: s.BallsThrown,
			PinsKnocked: s.PinsKnocked,
		})
	}
	if g.sound != nil {
		g.sound.Cleanup()
	}
}

func (g *Game) saveSession(rec storage.SessionRecord) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveSession(rec); err != nil {
		g.logger.Warn("session not saved", "session", rec.ID, "err", err)
		return
	}
	g.logger.Debug("session saved", "session", rec.ID, "cleared", rec.Cleared)
}

// GameEventListener ведёт статистику и сохраняет пройденные сессии
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.BallLaunched:
		g.stats.BallsLaunched++
	case event.BallFell:
		g.stats.BallsFell++
	case event.PinFell:
		g.stats.PinsFell++
	case event.LevelCleared:
		g.stats.Clears++
		data, ok := e.Data.(event.ClearData)
		if !ok {
			return
		}
		rec := storage.SessionRecord{
			ID:          data.SessionID,
			Seed:        g.Rng.Seed(),
			Elapsed:     data.Elapsed,
			BallsThrown: data.BallsThrown,
			PinsKnocked: data.PinsKnocked,
			Cleared:     true,
		}
		if s := g.Play.Session(); s != nil {
			rec.StartedAt = s.StartedAt
		}
		g.saveSession(rec)
	}
}
