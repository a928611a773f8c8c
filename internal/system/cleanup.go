package system

import (
	"time"

	"github.com/l1jgo/engine/internal/core/ecs"
	coresys "github.com/l1jgo/engine/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue after every
// system that may queue destructions.
type CleanupSystem struct {
	Destroyed int
}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Ordering() []coresys.Constraint {
	return []coresys.Constraint{coresys.After[AgingSystem]()}
}

func (s *CleanupSystem) Update(w *ecs.World, _ time.Duration) {
	s.Destroyed += w.FlushDestroyQueue()
}
