// pkg/physics/vec.go
package physics

import "math"

// Vec3 — трёхмерный вектор (Y смотрит вверх)
type Vec3 struct {
	X, Y, Z float64
}

// V3 — короткий конструктор
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Clamp ограничивает каждую координату отрезком [lo, hi]
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		X: math.Max(lo.X, math.Min(v.X, hi.X)),
		Y: math.Max(lo.Y, math.Min(v.Y, hi.Y)),
		Z: math.Max(lo.Z, math.Min(v.Z, hi.Z)),
	}
}

// Axis возвращает координату по номеру оси (0 — X, 1 — Y, 2 — Z)
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// AxisVec — единичный вектор вдоль оси i со знаком sign
func AxisVec(i int, sign float64) Vec3 {
	switch i {
	case 0:
		return Vec3{X: sign}
	case 1:
		return Vec3{Y: sign}
	default:
		return Vec3{Z: sign}
	}
}
