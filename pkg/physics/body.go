// pkg/physics/body.go
package physics

import "math"

// BodyKind — статическое или динамическое тело
type BodyKind int

const (
	Static BodyKind = iota
	Dynamic
)

func (k BodyKind) String() string {
	if k == Static {
		return "static"
	}
	return "dynamic"
}

// ShapeKind — форма коллайдера
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
)

// Shape описывает коллайдер. Боксы всегда выровнены по осям.
type Shape struct {
	Kind        ShapeKind
	HalfExtents Vec3    // для ShapeBox
	Radius      float64 // для ShapeSphere
}

// Box создаёт коллайдер-параллелепипед по половинам размеров (как cuboid в rapier)
func Box(hx, hy, hz float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: Vec3{hx, hy, hz}}
}

// Sphere создаёт сферический коллайдер
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Volume — объём формы
func (s Shape) Volume() float64 {
	if s.Kind == ShapeSphere {
		return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
	}
	h := s.HalfExtents
	return 8 * h.X * h.Y * h.Z
}

// Extents — половины размеров ограничивающего бокса
func (s Shape) Extents() Vec3 {
	if s.Kind == ShapeSphere {
		return Vec3{s.Radius, s.Radius, s.Radius}
	}
	return s.HalfExtents
}

// MinExtent — наименьшая полутолщина формы, используется для CCD
func (s Shape) MinExtent() float64 {
	e := s.Extents()
	return math.Min(e.X, math.Min(e.Y, e.Z))
}

// Body — твёрдое тело
type Body struct {
	Kind        BodyKind
	Shape       Shape
	Position    Vec3
	Velocity    Vec3
	Density     float64
	CCD         bool
	Friction    float64
	Restitution float64
}

// Mass = плотность × объём; у статических тел масса не учитывается
func (b *Body) Mass() float64 {
	if b.Kind == Static {
		return 0
	}
	return b.Density * b.Shape.Volume()
}

// InvMass — обратная масса (0 для статических и невесомых тел)
func (b *Body) InvMass() float64 {
	m := b.Mass()
	if m <= 0 {
		return 0
	}
	return 1 / m
}

// Bounds возвращает AABB тела
func (b *Body) Bounds() AABB {
	e := b.Shape.Extents()
	return AABB{Min: b.Position.Sub(e), Max: b.Position.Add(e)}
}

// AABB — ограничивающий бокс, выровненный по осям
type AABB struct {
	Min, Max Vec3
}

// Overlaps проверяет пересечение двух AABB
func (a AABB) Overlaps(o AABB) bool {
	return a.Min.X <= o.Max.X && a.Max.X >= o.Min.X &&
		a.Min.Y <= o.Max.Y && a.Max.Y >= o.Min.Y &&
		a.Min.Z <= o.Max.Z && a.Max.Z >= o.Min.Z
}
