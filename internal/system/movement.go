package system

import (
	"time"

	"github.com/l1jgo/engine/internal/component"
	"github.com/l1jgo/engine/internal/core/ecs"
)

// MovementSystem integrates Position by Velocity.
type MovementSystem struct{}

func (MovementSystem) Update(w *ecs.World, dt time.Duration) {
	step := dt.Seconds()
	ecs.Each2(w, func(_ ecs.EntityID, p *component.Position, v *component.Velocity) {
		p.X += v.DX * step
		p.Y += v.DY * step
	})
}
