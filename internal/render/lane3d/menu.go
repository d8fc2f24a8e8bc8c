// internal/render/lane3d/menu.go
package lane3d

import (
	"go-bowling/internal/ui"
	"go-bowling/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Measurer измеряет текст шрифтом raylib по умолчанию
var Measurer = ui.MeasureFunc(func(s string, size int) (float64, float64) {
	return float64(rl.MeasureText(s, int32(size))), float64(size)
})

// MenuRenderer рисует разложенное дерево интерфейса и ловит клики
type MenuRenderer struct {
	colors render.SceneColors
	placed []ui.Placed
}

func NewMenuRenderer(colors render.SceneColors) *MenuRenderer {
	return &MenuRenderer{colors: colors}
}

// Layout раскладывает дерево под текущий размер окна
func (m *MenuRenderer) Layout(root ui.Node) {
	viewport := ui.Rect{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())}
	m.placed = ui.Layout(root, viewport, Measurer)
}

// Click возвращает сообщение кнопки, по которой кликнули в этом кадре
func (m *MenuRenderer) Click() (ui.Message, bool) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return ui.NoMessage, false
	}
	mouse := rl.GetMousePosition()
	return ui.HitTest(m.placed, float64(mouse.X), float64(mouse.Y))
}

func (m *MenuRenderer) Draw() {
	mouse := rl.GetMousePosition()
	for _, p := range m.placed {
		switch n := p.Node.(type) {
		case ui.Text:
			c := n.Color
			if c.A == 0 {
				c = m.colors.TextColor
			}
			rl.DrawText(n.Content, int32(p.Rect.X), int32(p.Rect.Y), int32(n.Size), c)
		case ui.Button:
			m.drawButton(n, p.Rect, mouse)
		}
	}
}

func (m *MenuRenderer) drawButton(b ui.Button, r ui.Rect, mouse rl.Vector2) {
	rect := rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
	bg := m.colors.ButtonBg
	if rl.CheckCollisionPointRec(mouse, rect) {
		bg = m.colors.ButtonHot
	}
	rl.DrawRectangleRec(rect, bg)
	rl.DrawRectangleLinesEx(rect, 2, render.DarkenColor(bg))

	textW := rl.MeasureText(b.Label, int32(b.Size))
	textX := rect.X + (rect.Width-float32(textW))/2
	textY := rect.Y + (rect.Height-float32(b.Size))/2
	rl.DrawText(b.Label, int32(textX), int32(textY), int32(b.Size), m.colors.TextColor)
}
