// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/event"
	"go-bowling/internal/interfaces"
	"go-bowling/internal/storage"
	"go-bowling/internal/ui"

	"github.com/charmbracelet/log"
)

// Records — источник лучшего результата для подписи в меню
type Records interface {
	BestClear() (storage.SessionRecord, bool, error)
}

// MenuState — главное меню: заголовок и кнопка "Start Game"
type MenuState struct {
	sm      interfaces.StateRequester
	queue   *event.Queue[ui.Message]
	records Records
	caption string
	logger  *log.Logger
}

// NewMenuState создаёт меню. records может быть nil.
func NewMenuState(sm interfaces.StateRequester, queue *event.Queue[ui.Message], records Records, logger *log.Logger) *MenuState {
	return &MenuState{sm: sm, queue: queue, records: records, logger: logger.With("system", "menu")}
}

func (m *MenuState) Enter() {
	m.caption = ""
	// Сообщения, пришедшие до входа в меню, к нему не относятся
	m.queue.Drain()
	if m.records == nil {
		return
	}
	best, ok, err := m.records.BestClear()
	if err != nil {
		m.logger.Warn("cannot read best clear", "err", err)
		return
	}
	if ok {
		m.caption = fmt.Sprintf("Best clear: %.1fs, %d balls", best.Elapsed, best.BallsThrown)
	}
}

// View — описание экрана меню
func (m *MenuState) View() ui.Node {
	children := []ui.Node{
		ui.NewText(config.WindowTitle, config.MenuTitleSize),
		ui.Button{
			Label:    "Start Game",
			Size:     config.MenuButtonSize,
			OnPress:  ui.StartClicked,
			PaddingX: config.ButtonPaddingX,
			PaddingY: config.ButtonPaddingY,
		},
	}
	if m.caption != "" {
		children = append(children, ui.NewText(m.caption, config.MenuCaptionSize))
	}
	return ui.Container{
		Fill:    true,
		CenterX: true,
		CenterY: true,
		Child: ui.Column{
			Align:    ui.AlignCenter,
			Spacing:  config.MenuSpacing,
			Children: children,
		},
	}
}

// Update разбирает очередь сообщений ровно один раз за кадр
func (m *MenuState) Update(deltaTime float64) {
	for _, msg := range m.queue.Drain() {
		if msg == ui.StartClicked {
			m.sm.Request(component.Playing)
		}
	}
}

func (m *MenuState) Exit() {}

// Caption — подпись с лучшим результатом, пустая если его нет
func (m *MenuState) Caption() string {
	return m.caption
}
