// internal/render/topdown/menu.go
package topdown

import (
	"fmt"
	"image/color"

	"go-bowling/internal/ui"
	"go-bowling/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MenuRenderer рисует меню растровым шрифтом basicfont.
// Кегль из дерева переводится в целочисленный масштаб шрифта 7x13.
type MenuRenderer struct {
	colors render.SceneColors
	face   font.Face
	placed []ui.Placed
	glyphs map[string]*ebiten.Image
}

func NewMenuRenderer(colors render.SceneColors) *MenuRenderer {
	return &MenuRenderer{colors: colors, face: basicfont.Face7x13, glyphs: make(map[string]*ebiten.Image)}
}

func (m *MenuRenderer) scale(size int) int {
	h := m.face.Metrics().Height.Ceil()
	s := size / h
	if s < 1 {
		s = 1
	}
	return s
}

// MeasureText реализует ui.TextMeasurer
func (m *MenuRenderer) MeasureText(s string, size int) (float64, float64) {
	b := text.BoundString(m.face, s)
	k := m.scale(size)
	return float64(b.Dx() * k), float64(m.face.Metrics().Height.Ceil() * k)
}

func (m *MenuRenderer) Layout(root ui.Node, screenW, screenH int) {
	m.placed = ui.Layout(root, ui.Rect{W: float64(screenW), H: float64(screenH)}, m)
}

// Click — сообщение кнопки под курсором, если левую кнопку только что нажали
func (m *MenuRenderer) Click() (ui.Message, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ui.NoMessage, false
	}
	x, y := ebiten.CursorPosition()
	return ui.HitTest(m.placed, float64(x), float64(y))
}

func (m *MenuRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(m.colors.ClearColor)
	cx, cy := ebiten.CursorPosition()
	for _, p := range m.placed {
		switch n := p.Node.(type) {
		case ui.Text:
			c := n.Color
			if c.A == 0 {
				c = m.colors.TextColor
			}
			m.drawText(screen, n.Content, n.Size, p.Rect.X, p.Rect.Y, c)
		case ui.Button:
			bg := m.colors.ButtonBg
			if p.Rect.Contains(float64(cx), float64(cy)) {
				bg = m.colors.ButtonHot
			}
			vector.DrawFilledRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), bg, true)
			vector.StrokeRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), 2, render.DarkenColor(bg), true)
			w, h := m.MeasureText(n.Label, n.Size)
			m.drawText(screen, n.Label, n.Size, p.Rect.X+(p.Rect.W-w)/2, p.Rect.Y+(p.Rect.H-h)/2, m.colors.TextColor)
		}
	}
}

// drawText рисует строку один раз в буфер натурального размера и масштабирует его.
// Буферы кешируются по тексту и цвету.
func (m *MenuRenderer) drawText(screen *ebiten.Image, s string, size int, x, y float64, c color.RGBA) {
	key := fmt.Sprintf("%s|%v", s, c)
	img, ok := m.glyphs[key]
	if !ok {
		b := text.BoundString(m.face, s)
		if b.Dx() <= 0 {
			return
		}
		img = ebiten.NewImage(b.Dx()+1, m.face.Metrics().Height.Ceil()+1)
		text.Draw(img, s, m.face, -b.Min.X, m.face.Metrics().Ascent.Ceil(), c)
		m.glyphs[key] = img
	}

	k := float64(m.scale(size))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
