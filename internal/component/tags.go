// internal/component/tags.go
package component

// Ball — запущенный шар
type Ball struct{}

// Pin — кегля
type Pin struct{}

// LevelUnload помечает всё, что создано в состоянии Playing.
// При выходе из состояния такие сущности удаляются целиком.
type LevelUnload struct{}
