// internal/component/visual.go
package component

import (
	"image/color"

	"go-bowling/pkg/physics"
)

// MeshKind — чем рисовать сущность
type MeshKind int

const (
	MeshBox MeshKind = iota
	MeshSphere
)

// Renderable — всё, что нужно рендеру, чтобы нарисовать сущность
type Renderable struct {
	Mesh   MeshKind
	Size   physics.Vec3 // полный размер бокса
	Radius float64      // для сферы
	Color  color.RGBA
}

// PointLight — точечный источник света
type PointLight struct {
	Intensity float64
	Range     float64
	Shadows   bool
}

// Camera — камера, смотрящая из Transform.Position в Target
type Camera struct {
	Target physics.Vec3
	Up     physics.Vec3
	Fovy   float64
}
