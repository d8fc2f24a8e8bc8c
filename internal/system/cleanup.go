// internal/system/cleanup.go
package system

import (
	"go-bowling/internal/component"
	"go-bowling/internal/entity"

	"github.com/charmbracelet/log"
)

// CleanupSystem убирает всё, что создано за время игры
type CleanupSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
}

func NewCleanupSystem(ecs *entity.ECS, logger *log.Logger) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, logger: logger.With("system", "cleanup")}
}

func (s *CleanupSystem) Teardown() int {
	n := entity.DespawnTagged[component.LevelUnload](s.ecs)
	s.logger.Debug("level unloaded", "entities", n)
	return n
}
