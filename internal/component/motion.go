package component

import "time"

// Components are plain data; all behavior lives in systems.

// Position is carried by every simulated entity.
type Position struct {
	X, Y float64
}

// Velocity is in units per second.
type Velocity struct {
	DX, DY float64
}

// Lifetime counts down to the entity's destruction.
type Lifetime struct {
	Remaining time.Duration
}

// Grounded marks entities that gravity pulls down.
type Grounded struct{}
