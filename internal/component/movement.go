// internal/component/movement.go
package component

import "go-bowling/pkg/physics"

// Transform — компонент позиции
type Transform struct {
	Position physics.Vec3
}

// RigidBody — тело для физики. Позиция внутри Body синхронизируется с Transform
// физической системой перед шагом и после него.
type RigidBody struct {
	physics.Body
}
