package system

import (
	"time"

	"github.com/l1jgo/engine/internal/component"
	"github.com/l1jgo/engine/internal/core/ecs"
)

// Gravity in units per second squared.
const Gravity = 9.81

// GravitySystem is a fixed-tick system that accelerates grounded entities.
type GravitySystem struct{}

func (GravitySystem) FixedUpdate(w *ecs.World, dt time.Duration) {
	step := dt.Seconds()
	ecs.Each2(w, func(_ ecs.EntityID, v *component.Velocity, _ *component.Grounded) {
		v.DY -= Gravity * step
	})
}
