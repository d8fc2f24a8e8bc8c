// pkg/physics/world.go
package physics

import (
	"cmp"
	"math"
	"slices"
)

const (
	DefaultGravity     = -9.81
	DefaultMaxSubsteps = 32
	DefaultIterations  = 4

	positionSlop        = 0.005
	positionCorrection  = 0.8
	restitutionMinSpeed = 1.0 // медленнее отскока нет, иначе покоящиеся тела дрожат
)

// World — параметры симуляции. Тела живут снаружи (в ECS), World только шагает их.
type World struct {
	Gravity     Vec3
	MaxSubsteps int
	Iterations  int

	proxies  []proxy
	contacts []Contact
}

type proxy struct {
	body   *Body
	bounds AABB
}

// NewWorld создаёт мир со стандартной гравитацией вдоль -Y
func NewWorld(gravity float64) *World {
	return &World{
		Gravity:     Vec3{Y: gravity},
		MaxSubsteps: DefaultMaxSubsteps,
		Iterations:  DefaultIterations,
	}
}

// Step продвигает симуляцию на dt секунд
func (w *World) Step(bodies []*Body, dt float64) {
	if dt <= 0 || len(bodies) == 0 {
		return
	}
	n := w.Substeps(bodies, dt)
	h := dt / float64(n)
	for s := 0; s < n; s++ {
		w.integrate(bodies, h)
		w.detect(bodies)
		for it := 0; it < w.Iterations; it++ {
			for i := range w.contacts {
				resolveVelocity(&w.contacts[i])
			}
		}
		for i := range w.contacts {
			correctPosition(&w.contacts[i])
		}
	}
}

// Substeps — сколько подшагов нужно, чтобы ни одно тело с CCD не сместилось
// за подшаг дальше своей наименьшей полутолщины
func (w *World) Substeps(bodies []*Body, dt float64) int {
	n := 1
	for _, b := range bodies {
		if !b.CCD || b.Kind != Dynamic {
			continue
		}
		ext := b.Shape.MinExtent()
		if ext <= 0 {
			continue
		}
		need := int(math.Ceil(b.Velocity.Len() * dt / ext))
		if need > n {
			n = need
		}
	}
	if w.MaxSubsteps > 0 && n > w.MaxSubsteps {
		n = w.MaxSubsteps
	}
	return n
}

func (w *World) integrate(bodies []*Body, h float64) {
	for _, b := range bodies {
		if b.Kind != Dynamic {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Scale(h))
		b.Position = b.Position.Add(b.Velocity.Scale(h))
	}
}

// detect — sweep-and-prune по оси Z (вдоль дорожки) и узкая фаза
func (w *World) detect(bodies []*Body) {
	w.proxies = w.proxies[:0]
	w.contacts = w.contacts[:0]
	for _, b := range bodies {
		w.proxies = append(w.proxies, proxy{body: b, bounds: b.Bounds()})
	}
	slices.SortFunc(w.proxies, func(a, b proxy) int {
		return cmp.Compare(a.bounds.Min.Z, b.bounds.Min.Z)
	})
	for i := range w.proxies {
		pa := &w.proxies[i]
		for j := i + 1; j < len(w.proxies); j++ {
			pb := &w.proxies[j]
			if pb.bounds.Min.Z > pa.bounds.Max.Z {
				break
			}
			if pa.body.Kind == Static && pb.body.Kind == Static {
				continue
			}
			if !pa.bounds.Overlaps(pb.bounds) {
				continue
			}
			if c, ok := Collide(pa.body, pb.body); ok {
				w.contacts = append(w.contacts, c)
			}
		}
	}
}

func resolveVelocity(c *Contact) {
	invA, invB := c.A.InvMass(), c.B.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	rv := c.B.Velocity.Sub(c.A.Velocity)
	vn := rv.Dot(c.Normal)
	if vn >= 0 {
		return // тела уже расходятся
	}

	e := math.Max(c.A.Restitution, c.B.Restitution)
	if -vn < restitutionMinSpeed {
		e = 0
	}
	j := -(1 + e) * vn / invSum
	impulse := c.Normal.Scale(j)
	c.A.Velocity = c.A.Velocity.Sub(impulse.Scale(invA))
	c.B.Velocity = c.B.Velocity.Add(impulse.Scale(invB))

	// Трение по Кулону
	rv = c.B.Velocity.Sub(c.A.Velocity)
	tangent := rv.Sub(c.Normal.Scale(rv.Dot(c.Normal)))
	tl := tangent.Len()
	if tl < epsilon {
		return
	}
	tangent = tangent.Scale(1 / tl)
	mu := math.Sqrt(c.A.Friction * c.B.Friction)
	jt := -rv.Dot(tangent) / invSum
	if limit := mu * j; math.Abs(jt) > limit {
		jt = math.Copysign(limit, jt)
	}
	friction := tangent.Scale(jt)
	c.A.Velocity = c.A.Velocity.Sub(friction.Scale(invA))
	c.B.Velocity = c.B.Velocity.Add(friction.Scale(invB))
}

func correctPosition(c *Contact) {
	invA, invB := c.A.InvMass(), c.B.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	depth := c.Depth - positionSlop
	if depth <= 0 {
		return
	}
	corr := c.Normal.Scale(depth / invSum * positionCorrection)
	c.A.Position = c.A.Position.Sub(corr.Scale(invA))
	c.B.Position = c.B.Position.Add(corr.Scale(invB))
}
