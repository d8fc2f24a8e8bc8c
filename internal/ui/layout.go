// internal/ui/layout.go
package ui

import "unicode/utf8"

// Rect — прямоугольник в пикселях экрана
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Placed — узел с вычисленным положением
type Placed struct {
	Node Node
	Rect Rect
}

// TextMeasurer измеряет строку заданного кегля. Реализуется фронтендом.
type TextMeasurer interface {
	MeasureText(s string, size int) (w, h float64)
}

// MeasureFunc — адаптер функции к TextMeasurer
type MeasureFunc func(s string, size int) (w, h float64)

func (f MeasureFunc) MeasureText(s string, size int) (float64, float64) { return f(s, size) }

// MonoMeasurer — моноширинная оценка: ширина символа половина кегля
var MonoMeasurer = MeasureFunc(func(s string, size int) (float64, float64) {
	return float64(utf8.RuneCountInString(s)*size) / 2, float64(size)
})

// Layout раскладывает дерево в viewport.
// Результат упорядочен от родителя к детям, поэтому его можно рисовать по порядку.
func Layout(root Node, viewport Rect, m TextMeasurer) []Placed {
	if root == nil {
		return nil
	}
	if m == nil {
		m = MonoMeasurer
	}
	var out []Placed
	w, h := measure(root, m)
	place(root, Rect{X: viewport.X, Y: viewport.Y, W: w, H: h}, viewport, m, &out)
	return out
}

// HitTest возвращает сообщение верхней кнопки под точкой
func HitTest(placed []Placed, x, y float64) (Message, bool) {
	for i := len(placed) - 1; i >= 0; i-- {
		b, ok := placed[i].Node.(Button)
		if ok && placed[i].Rect.Contains(x, y) {
			return b.OnPress, true
		}
	}
	return NoMessage, false
}

// measure — собственный размер узла без учёта Fill
func measure(n Node, m TextMeasurer) (float64, float64) {
	switch v := n.(type) {
	case Text:
		return m.MeasureText(v.Content, v.Size)
	case Button:
		w, h := m.MeasureText(v.Label, v.Size)
		return w + 2*float64(v.PaddingX), h + 2*float64(v.PaddingY)
	case Column:
		var w, h float64
		for i, c := range v.Children {
			cw, ch := measure(c, m)
			if cw > w {
				w = cw
			}
			h += ch
			if i > 0 {
				h += float64(v.Spacing)
			}
		}
		return w, h
	case Container:
		if v.Child == nil {
			return 0, 0
		}
		return measure(v.Child, m)
	}
	return 0, 0
}

func place(n Node, r Rect, avail Rect, m TextMeasurer, out *[]Placed) {
	switch v := n.(type) {
	case Container:
		if v.Fill {
			r = avail
		}
		*out = append(*out, Placed{Node: v, Rect: r})
		if v.Child == nil {
			return
		}
		cw, ch := measure(v.Child, m)
		child := Rect{X: r.X, Y: r.Y, W: cw, H: ch}
		if v.CenterX {
			child.X = r.X + (r.W-cw)/2
		}
		if v.CenterY {
			child.Y = r.Y + (r.H-ch)/2
		}
		place(v.Child, child, r, m, out)
	case Column:
		*out = append(*out, Placed{Node: v, Rect: r})
		y := r.Y
		for _, c := range v.Children {
			cw, ch := measure(c, m)
			x := r.X
			switch v.Align {
			case AlignCenter:
				x = r.X + (r.W-cw)/2
			case AlignEnd:
				x = r.X + r.W - cw
			}
			cr := Rect{X: x, Y: y, W: cw, H: ch}
			place(c, cr, cr, m, out)
			y += ch + float64(v.Spacing)
		}
	default:
		*out = append(*out, Placed{Node: n, Rect: r})
	}
}
