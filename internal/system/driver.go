package system

import (
	"time"

	"github.com/l1jgo/engine/internal/core/ecs"
)

// Driver advances a World one frame at a time: the update phase, then as
// many fixed ticks as the accumulated time covers, then the draw phase.
type Driver struct {
	world     *ecs.World
	fixedStep time.Duration
	acc       time.Duration
	frames    uint64
	ticks     uint64
}

// NewDriver returns a driver. A non-positive fixedStep disables fixed ticks.
func NewDriver(w *ecs.World, fixedStep time.Duration) *Driver {
	return &Driver{world: w, fixedStep: fixedStep}
}

func (d *Driver) Frame(dt time.Duration) {
	d.world.Update(dt)
	if d.fixedStep > 0 {
		d.acc += dt
		for d.acc >= d.fixedStep {
			d.world.FixedUpdate(d.fixedStep)
			d.acc -= d.fixedStep
			d.ticks++
		}
	}
	d.world.Draw()
	d.frames++
}

func (d *Driver) Frames() uint64 { return d.frames }

// Ticks returns the number of fixed ticks run so far.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Alpha is how far the accumulator sits between two fixed ticks, in [0, 1).
func (d *Driver) Alpha() float64 {
	if d.fixedStep <= 0 {
		return 0
	}
	return float64(d.acc) / float64(d.fixedStep)
}
