// pkg/physics/collide.go
package physics

import "math"

const epsilon = 1e-9

// Contact — результат узкой фазы. Normal направлена от A к B.
type Contact struct {
	A, B   *Body
	Normal Vec3
	Depth  float64
}

// Collide проверяет пересечение двух тел
func Collide(a, b *Body) (Contact, bool) {
	switch {
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeSphere:
		return sphereSphere(a, b)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeBox:
		c, ok := sphereBox(a, b)
		if !ok {
			return c, false
		}
		// sphereBox возвращает нормаль от бокса к сфере
		return Contact{A: a, B: b, Normal: c.Normal.Neg(), Depth: c.Depth}, true
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeSphere:
		c, ok := sphereBox(b, a)
		if !ok {
			return c, false
		}
		return Contact{A: a, B: b, Normal: c.Normal, Depth: c.Depth}, true
	default:
		return boxBox(a, b)
	}
}

func sphereSphere(a, b *Body) (Contact, bool) {
	d := b.Position.Sub(a.Position)
	r := a.Shape.Radius + b.Shape.Radius
	distSq := d.LenSq()
	if distSq >= r*r {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	n := Up
	if dist > epsilon {
		n = d.Scale(1 / dist)
	}
	return Contact{A: a, B: b, Normal: n, Depth: r - dist}, true
}

// sphereBox возвращает контакт с нормалью от бокса к сфере
func sphereBox(sphere, box *Body) (Contact, bool) {
	bounds := box.Bounds()
	c := sphere.Position
	closest := c.Clamp(bounds.Min, bounds.Max)
	d := c.Sub(closest)
	distSq := d.LenSq()
	r := sphere.Shape.Radius
	if distSq > r*r {
		return Contact{}, false
	}
	if distSq > epsilon {
		dist := math.Sqrt(distSq)
		return Contact{A: box, B: sphere, Normal: d.Scale(1 / dist), Depth: r - dist}, true
	}

	// Центр сферы внутри бокса: выталкиваем через ближайшую грань
	local := c.Sub(box.Position)
	h := box.Shape.HalfExtents
	best, axis, sign := math.Inf(1), 1, 1.0
	for i := 0; i < 3; i++ {
		p := local.Axis(i)
		e := h.Axis(i)
		if dist := e - p; dist < best {
			best, axis, sign = dist, i, 1
		}
		if dist := e + p; dist < best {
			best, axis, sign = dist, i, -1
		}
	}
	return Contact{A: box, B: sphere, Normal: AxisVec(axis, sign), Depth: r + best}, true
}

func boxBox(a, b *Body) (Contact, bool) {
	d := b.Position.Sub(a.Position)
	ha, hb := a.Shape.HalfExtents, b.Shape.HalfExtents
	best, axis := math.Inf(1), 1
	for i := 0; i < 3; i++ {
		overlap := ha.Axis(i) + hb.Axis(i) - math.Abs(d.Axis(i))
		if overlap <= 0 {
			return Contact{}, false
		}
		if overlap < best {
			best, axis = overlap, i
		}
	}
	sign := 1.0
	if d.Axis(axis) < 0 {
		sign = -1
	}
	return Contact{A: a, B: b, Normal: AxisVec(axis, sign), Depth: best}, true
}
