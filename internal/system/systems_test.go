package system

import (
	"math"
	"testing"
	"time"

	"github.com/l1jgo/engine/internal/component"
	"github.com/l1jgo/engine/internal/core/ecs"
	coresys "github.com/l1jgo/engine/internal/core/system"
)

const frame = 16 * time.Millisecond

func newSimWorld(t *testing.T, n int, life time.Duration) (*ecs.World, *CleanupSystem, *CensusSystem) {
	t.Helper()
	w := ecs.NewWorld()
	cleanup := NewCleanupSystem()
	census := &CensusSystem{}
	w.AddSystem(cleanup)
	w.AddSystem(AgingSystem{})
	w.AddSystem(MovementSystem{})
	w.AddFixedSystem(GravitySystem{})
	w.AddRenderSystem(census)
	if err := w.CompileSystems(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	Populate(w, n, life)
	return w, cleanup, census
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPopulateComponentMix(t *testing.T) {
	w := ecs.NewWorld()
	ids := Populate(w, 60, time.Second)
	if len(ids) != 60 {
		t.Fatalf("expected 60 ids, got %d", len(ids))
	}
	counts := map[string]int{
		"position": ecs.GetPool[component.Position](w).Len(),
		"velocity": ecs.GetPool[component.Velocity](w).Len(),
		"lifetime": ecs.GetPool[component.Lifetime](w).Len(),
		"grounded": ecs.GetPool[component.Grounded](w).Len(),
	}
	want := map[string]int{"position": 60, "velocity": 30, "lifetime": 20, "grounded": 12}
	for k, v := range want {
		if counts[k] != v {
			t.Fatalf("%s: got %d, want %d", k, counts[k], v)
		}
	}
	if got := ecs.NewView3[component.Position, component.Velocity, component.Lifetime](w).Count(); got != 10 {
		t.Fatalf("expected 10 three-way matches, got %d", got)
	}
}

func TestUpdateOrderFollowsDeclarations(t *testing.T) {
	w, _, _ := newSimWorld(t, 0, time.Second)
	order := w.UpdateOrder()
	want := []coresys.Key{
		coresys.KeyFor[MovementSystem](),
		coresys.KeyFor[AgingSystem](),
		coresys.KeyFor[CleanupSystem](),
	}
	if len(order) != len(want) {
		t.Fatalf("unexpected order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestSimulationExpiresMortalEntities(t *testing.T) {
	w, cleanup, census := newSimWorld(t, 30, frame+frame/2)
	d := NewDriver(w, 20*time.Millisecond)

	d.Frame(frame)
	if cleanup.Destroyed != 0 {
		t.Fatalf("entities expired early: %d", cleanup.Destroyed)
	}
	if census.Moving != 15 || census.Mortal != 5 {
		t.Fatalf("frame 1 census moving=%d mortal=%d", census.Moving, census.Mortal)
	}

	d.Frame(frame)
	if cleanup.Destroyed != 10 {
		t.Fatalf("expected 10 expired entities, got %d", cleanup.Destroyed)
	}
	if census.Moving != 10 || census.Mortal != 0 {
		t.Fatalf("frame 2 census moving=%d mortal=%d", census.Moving, census.Mortal)
	}
	if ecs.HasComponent[component.Position](w, 3) {
		t.Fatalf("expired entity kept its Position")
	}
	if !ecs.HasComponent[component.Position](w, 4) {
		t.Fatalf("immortal entity lost its Position")
	}
}

func TestSimulationMovesAndFalls(t *testing.T) {
	w, _, census := newSimWorld(t, 30, time.Hour)
	d := NewDriver(w, 20*time.Millisecond)
	for i := 0; i < 5; i++ {
		d.Frame(frame)
	}
	if d.Frames() != 5 || census.Frames != 5 {
		t.Fatalf("expected 5 frames, got driver=%d census=%d", d.Frames(), census.Frames)
	}
	if d.Ticks() != 4 || d.Alpha() != 0 {
		t.Fatalf("expected 4 ticks and no remainder, got %d ticks alpha %v", d.Ticks(), d.Alpha())
	}

	p, err := ecs.GetComponent[component.Position](w, 2)
	if err != nil {
		t.Fatalf("GetComponent: %v", err)
	}
	if !near(p.X, 2+5*frame.Seconds()) {
		t.Fatalf("entity 2 at x=%v", p.X)
	}
	if still, _ := ecs.TryGetComponent[component.Position](w, 1); still.X != 1 {
		t.Fatalf("entity without velocity moved to %v", still.X)
	}

	v, _ := ecs.TryGetComponent[component.Velocity](w, 10)
	if !near(v.DY, -Gravity*0.02*4) {
		t.Fatalf("grounded entity DY=%v", v.DY)
	}
	if u, _ := ecs.TryGetComponent[component.Velocity](w, 4); u.DY != 0 {
		t.Fatalf("ungrounded entity fell: DY=%v", u.DY)
	}
}

func TestDriverWithoutFixedStep(t *testing.T) {
	w, _, _ := newSimWorld(t, 10, time.Hour)
	d := NewDriver(w, 0)
	d.Frame(frame)
	d.Frame(frame)
	if d.Ticks() != 0 || d.Alpha() != 0 {
		t.Fatalf("fixed ticks ran with a zero step: %d", d.Ticks())
	}
}

func TestDriverAlpha(t *testing.T) {
	w, _, _ := newSimWorld(t, 0, time.Hour)
	d := NewDriver(w, 20*time.Millisecond)
	d.Frame(5 * time.Millisecond)
	if d.Ticks() != 0 || !near(d.Alpha(), 0.25) {
		t.Fatalf("expected alpha 0.25, got %v", d.Alpha())
	}
}
