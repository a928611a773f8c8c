package system

import (
	"github.com/l1jgo/engine/internal/component"
	"github.com/l1jgo/engine/internal/core/ecs"
)

// CensusSystem stands in for a renderer: each Draw it counts what a sprite
// pass would visit.
type CensusSystem struct {
	Moving int // Position and Velocity
	Mortal int // Position, Velocity and Lifetime
	Frames int
}

func (s *CensusSystem) Draw(w *ecs.World) {
	s.Moving = ecs.NewView2[component.Position, component.Velocity](w).Count()
	s.Mortal = ecs.NewView3[component.Position, component.Velocity, component.Lifetime](w).Count()
	s.Frames++
}
