// internal/render/lane3d/renderer.go
package lane3d

import (
	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/entity"
	"go-bowling/pkg/physics"
	"go-bowling/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const shadowAlpha = 90

// Renderer рисует сцену дорожки в 3D через raylib
type Renderer struct {
	ecs    *entity.ECS
	colors render.SceneColors
	camera rl.Camera3D
}

func NewRenderer(ecs *entity.ECS, colors render.SceneColors) *Renderer {
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = config.CameraFovy
	return &Renderer{ecs: ecs, colors: colors, camera: camera}
}

func vec(v physics.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// syncCamera берёт камеру из мира; без неё остаётся прежняя
func (r *Renderer) syncCamera() bool {
	q := r.ecs.Cameras.Query()
	found := false
	for q.Next() {
		tr, cam := q.Get()
		r.camera.Position = vec(tr.Position)
		r.camera.Target = vec(cam.Target)
		r.camera.Up = vec(cam.Up)
		r.camera.Fovy = float32(cam.Fovy)
		found = true
	}
	return found
}

// light — позиция первого источника света, если он есть и отбрасывает тени
func (r *Renderer) light() (physics.Vec3, bool) {
	q := r.ecs.Lights.Query()
	var pos physics.Vec3
	found := false
	for q.Next() {
		tr, l := q.Get()
		if !found && l.Shadows {
			pos, found = tr.Position, true
		}
	}
	return pos, found
}

// DrawScene рисует всё, что есть в мире. Вызывать между BeginDrawing и EndDrawing.
func (r *Renderer) DrawScene() {
	if !r.syncCamera() {
		return
	}
	lightPos, hasLight := r.light()
	groundTop := config.GroundHeight / 2

	rl.BeginMode3D(r.camera)
	q := r.ecs.Drawables.Query()
	for q.Next() {
		tr, d := q.Get()
		pos := vec(tr.Position)
		switch d.Mesh {
		case component.MeshBox:
			rl.DrawCube(pos, float32(d.Size.X), float32(d.Size.Y), float32(d.Size.Z), d.Color)
			rl.DrawCubeWires(pos, float32(d.Size.X), float32(d.Size.Y), float32(d.Size.Z), render.DarkenColor(d.Color))
		case component.MeshSphere:
			rl.DrawSphere(pos, float32(d.Radius), d.Color)
		}

		// Тени только у подвижных тел над полом
		if !hasLight {
			continue
		}
		if body := r.ecs.Body(q.Entity()); body == nil || body.Kind != physics.Dynamic {
			continue
		}
		bottom := tr.Position
		if d.Mesh == component.MeshSphere {
			bottom.Y -= d.Radius
		} else {
			bottom.Y -= d.Size.Y / 2
		}
		if s, ok := render.ProjectShadow(lightPos, bottom, groundTop); ok {
			size := float32(d.Radius * 2)
			if d.Mesh == component.MeshBox {
				size = float32(d.Size.X)
			}
			s.Y = groundTop + 0.01
			rl.DrawCube(vec(s), size, 0.01, size, rl.NewColor(0, 0, 0, shadowAlpha))
		}
	}
	rl.EndMode3D()
}

// Clear заливает кадр цветом неба
func (r *Renderer) Clear() {
	rl.ClearBackground(r.colors.ClearColor)
}
