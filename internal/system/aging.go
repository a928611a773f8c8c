package system

import (
	"time"

	"github.com/l1jgo/engine/internal/component"
	"github.com/l1jgo/engine/internal/core/ecs"
	coresys "github.com/l1jgo/engine/internal/core/system"
)

// AgingSystem counts Lifetime down and queues expired entities for
// destruction. It runs after movement so an entity moves on its last frame.
type AgingSystem struct{}

func (AgingSystem) Ordering() []coresys.Constraint {
	return []coresys.Constraint{coresys.After[MovementSystem]()}
}

func (AgingSystem) Update(w *ecs.World, dt time.Duration) {
	ecs.RunJob1(ecs.NewView1[component.Lifetime](w), agingJob{world: w, dt: dt})
}

type agingJob struct {
	world *ecs.World
	dt    time.Duration
}

func (j agingJob) Execute(id ecs.EntityID, l *component.Lifetime) {
	l.Remaining -= j.dt
	if l.Remaining <= 0 {
		j.world.MarkForDestruction(id)
	}
}
