// internal/render/topdown/renderer.go
package topdown

import (
	"image/color"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/pkg/physics"
	"go-bowling/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const laneMargin = 20

// Renderer рисует дорожку сверху: X вправо, Z вниз по экрану
type Renderer struct {
	ecs    *entity.ECS
	colors render.SceneColors
	proj   render.TopDown
}

func NewRenderer(ecs *entity.ECS, colors render.SceneColors, screenW, screenH int) *Renderer {
	return &Renderer{
		ecs:    ecs,
		colors: colors,
		proj:   render.FitLane(config.GroundWidth, config.GroundLength, screenW, screenH, laneMargin),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.colors.ClearColor)

	// Сначала неподвижные боксы, потом всё остальное поверх
	r.drawPass(screen, true)
	r.drawPass(screen, false)
	r.drawMarkers(screen)
}

func (r *Renderer) drawPass(screen *ebiten.Image, statics bool) {
	q := r.ecs.Drawables.Query()
	for q.Next() {
		tr, d := q.Get()
		body := r.ecs.Body(q.Entity())
		isStatic := body == nil || body.Kind != physics.Dynamic
		if isStatic != statics {
			continue
		}
		c := d.Color
		if !isStatic {
			c = render.ShadeColor(c, render.HeightTint(tr.Position.Y, config.PinSpawnY+config.PinHeight))
		}
		switch d.Mesh {
		case component.MeshBox:
			x, y, w, h := r.proj.Rect(tr.Position.X, tr.Position.Z, d.Size.X, d.Size.Z)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, true)
			if !isStatic {
				vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, render.DarkenColor(c), true)
			}
		case component.MeshSphere:
			x, y := r.proj.Point(tr.Position.X, tr.Position.Z)
			radius := r.proj.Length(d.Radius)
			if radius < 2 {
				radius = 2
			}
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), c, true)
		}
	}
}

var (
	lightMarker  = color.RGBA{255, 220, 60, 255}
	cameraMarker = color.RGBA{40, 40, 40, 255}
)

// drawMarkers отмечает свет и камеру кружками
func (r *Renderer) drawMarkers(screen *ebiten.Image) {
	lights := r.ecs.Lights.Query()
	for lights.Next() {
		tr, _ := lights.Get()
		r.marker(screen, tr.Position.X, tr.Position.Z, lightMarker)
	}
	cameras := r.ecs.Cameras.Query()
	for cameras.Next() {
		tr, _ := cameras.Get()
		r.marker(screen, tr.Position.X, tr.Position.Z, cameraMarker)
	}
}

func (r *Renderer) marker(screen *ebiten.Image, x, z float64, c color.RGBA) {
	sx, sy := r.proj.Point(x, z)
	vector.StrokeCircle(screen, float32(sx), float32(sy), 6, 2, c, true)
}
