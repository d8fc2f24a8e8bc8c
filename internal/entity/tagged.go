// internal/entity/tagged.go
package entity

import "github.com/mlange-42/ark/ecs"

// Tagged возвращает все сущности с компонентом T
func Tagged[T any](e *ECS) []ecs.Entity {
	q := ecs.NewFilter1[T](&e.World).Query()
	entities := make([]ecs.Entity, 0, q.Count())
	for q.Next() {
		entities = append(entities, q.Entity())
	}
	return entities
}

// CountTagged — число сущностей с компонентом T
func CountTagged[T any](e *ECS) int {
	q := ecs.NewFilter1[T](&e.World).Query()
	n := q.Count()
	q.Close()
	return n
}

// DespawnTagged удаляет все сущности с компонентом T и возвращает их число.
// Мир блокируется на время обхода запроса, поэтому сначала собираем, потом удаляем.
func DespawnTagged[T any](e *ECS) int {
	entities := Tagged[T](e)
	for _, entity := range entities {
		e.World.RemoveEntity(entity)
	}
	return len(entities)
}
