package system

import (
	"time"

	"github.com/l1jgo/engine/internal/component"
	"github.com/l1jgo/engine/internal/core/ecs"
)

// Populate creates n entities. Every entity gets a Position, every 2nd a
// Velocity, every 3rd a Lifetime, and every 5th is Grounded. Counting starts
// at 1, so entity i matches a three-way view iff i is divisible by 6.
func Populate(w *ecs.World, n int, life time.Duration) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, n)
	for i := 1; i <= n; i++ {
		id := w.CreateEntity()
		ecs.AddComponent(w, id, component.Position{X: float64(i), Y: 0})
		if i%2 == 0 {
			ecs.AddComponent(w, id, component.Velocity{DX: 1, DY: 0})
		}
		if i%3 == 0 {
			ecs.AddComponent(w, id, component.Lifetime{Remaining: life})
		}
		if i%5 == 0 {
			ecs.AddComponent(w, id, component.Grounded{})
		}
		ids = append(ids, id)
	}
	return ids
}
