// pkg/render/projection.go
package render

import (
	"math"

	"go-bowling/pkg/physics"
)

// TopDown проецирует плоскость XZ дорожки на экран.
// Ось Z дорожки идёт вдоль экранной Y: дальний конец (-Z) сверху.
type TopDown struct {
	Scale   float64 // пикселей на метр
	CenterX float64 // экранная точка, куда попадает начало координат
	CenterY float64
}

// FitLane подбирает масштаб так, чтобы дорожка width x length поместилась в экран с отступом
func FitLane(width, length float64, screenW, screenH int, margin float64) TopDown {
	availW := math.Max(float64(screenW)-2*margin, 1)
	availH := math.Max(float64(screenH)-2*margin, 1)
	scale := math.Min(availW/width, availH/length)
	return TopDown{
		Scale:   scale,
		CenterX: float64(screenW) / 2,
		CenterY: float64(screenH) / 2,
	}
}

// Point — экранные координаты точки (x, z)
func (p TopDown) Point(x, z float64) (float64, float64) {
	return p.CenterX + x*p.Scale, p.CenterY + z*p.Scale
}

// Length — длина в пикселях
func (p TopDown) Length(v float64) float64 {
	return v * p.Scale
}

// Rect — экранный прямоугольник для бокса с центром (x, z) и полным размером (w, l)
func (p TopDown) Rect(x, z, w, l float64) (sx, sy, sw, sh float64) {
	cx, cy := p.Point(x, z)
	sw, sh = p.Length(w), p.Length(l)
	return cx - sw/2, cy - sh/2, sw, sh
}

// HeightTint осветляет цвет по высоте: чем выше тело, тем светлее.
// Нужен виду сверху, где высоту иначе не видно.
func HeightTint(y, maxY float64) float64 {
	if maxY <= 0 {
		return 1
	}
	t := math.Max(0, math.Min(y/maxY, 1))
	return 0.7 + 0.3*t
}

// ProjectShadow — точка, куда падает тень p от точечного света на плоскость y = planeY.
// false, если свет не выше точки или точка под плоскостью.
func ProjectShadow(light, p physics.Vec3, planeY float64) (physics.Vec3, bool) {
	if light.Y <= p.Y || p.Y < planeY {
		return physics.Vec3{}, false
	}
	t := (light.Y - planeY) / (light.Y - p.Y)
	return light.Add(p.Sub(light).Scale(t)), true
}
