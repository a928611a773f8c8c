package ecs

import (
	"fmt"
	"time"

	"github.com/l1jgo/engine/internal/core/event"
	"github.com/l1jgo/engine/internal/core/system"
	"go.uber.org/zap"
)

// System runs once per frame in the update phase.
type System interface {
	Update(w *World, dt time.Duration)
}

// FixedSystem runs once per fixed simulation tick.
type FixedSystem interface {
	FixedUpdate(w *World, dt time.Duration)
}

// RenderSystem runs once per frame in the draw phase.
type RenderSystem interface {
	Draw(w *World)
}

// EntityDestroyed is published on the world's event bus by DestroyEntity
// for entities that owned components. Components is the number of pools the
// entity was removed from; it is never zero.
type EntityDestroyed struct {
	ID         EntityID
	Components int
}

// Option configures a World.
type Option func(*World)

func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithPoolOptions sets the options every lazily created pool is built with.
func WithPoolOptions(opts SparseSetOptions) Option {
	return func(w *World) { w.poolOpts = opts }
}

// WithEventBus shares an existing bus instead of creating one.
func WithEventBus(b *event.Bus) Option {
	return func(w *World) {
		if b != nil {
			w.bus = b
		}
	}
}

// World is the top-level ECS container. It owns entity allocation, every
// component pool, the three system groups, and a deferred destruction queue.
//
// A World is not safe for concurrent use.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
	bus          *event.Bus
	log          *zap.Logger
	poolOpts     SparseSetOptions

	updates *system.Group[System]
	fixed   *system.Group[FixedSystem]
	renders *system.Group[RenderSystem]
}

func NewWorld(opts ...Option) *World {
	w := &World{
		pool:         NewEntityPool(),
		destroyQueue: make([]EntityID, 0, 64),
		log:          zap.NewNop(),
		updates:      system.NewGroup[System]("update"),
		fixed:        system.NewGroup[FixedSystem]("fixed"),
		renders:      system.NewGroup[RenderSystem]("render"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.bus == nil {
		w.bus = event.NewBus()
	}
	w.registry = NewRegistry(w.poolOpts)
	return w
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }
func (w *World) Events() *event.Bus  { return w.bus }
func (w *World) Logger() *zap.Logger { return w.log }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

// DestroyEntity removes id from every pool ever created. The cost is
// proportional to the number of component types, not to what id owns.
// EntityDestroyed is published only if at least one component was removed.
func (w *World) DestroyEntity(id EntityID) {
	n := w.registry.RemoveAll(id)
	if n == 0 {
		return
	}
	event.Emit(w.bus, EntityDestroyed{ID: id, Components: n})
}

// MarkForDestruction queues an entity for FlushDestroyQueue. Use it from
// inside a view callback, where DestroyEntity would break iteration.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys all queued entities and returns how many there were.
func (w *World) FlushDestroyQueue() int {
	n := len(w.destroyQueue)
	for _, id := range w.destroyQueue {
		w.DestroyEntity(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// Clear empties every pool and drops queued destructions. Entity IDs keep
// counting from where they were.
func (w *World) Clear() {
	w.registry.Clear()
	w.destroyQueue = w.destroyQueue[:0]
}

// AddSystem registers an update system. It takes effect at the next
// CompileSystems.
func (w *World) AddSystem(s System, constraints ...system.Constraint) {
	if s == nil {
		return
	}
	w.updates.Register(s, constraints...)
}

func (w *World) AddFixedSystem(s FixedSystem, constraints ...system.Constraint) {
	if s == nil {
		return
	}
	w.fixed.Register(s, constraints...)
}

func (w *World) AddRenderSystem(s RenderSystem, constraints ...system.Constraint) {
	if s == nil {
		return
	}
	w.renders.Register(s, constraints...)
}

// CompileSystems schedules every group. Nothing is installed unless all
// groups schedule cleanly, so a bad graph never runs a partial frame.
func (w *World) CompileSystems() error {
	updates, err := w.updates.Schedule()
	if err != nil {
		return w.compileFailed(w.updates.Name(), err)
	}
	fixed, err := w.fixed.Schedule()
	if err != nil {
		return w.compileFailed(w.fixed.Name(), err)
	}
	renders, err := w.renders.Schedule()
	if err != nil {
		return w.compileFailed(w.renders.Name(), err)
	}

	w.updates.Install(updates)
	w.fixed.Install(fixed)
	w.renders.Install(renders)

	w.log.Debug("systems compiled",
		zap.Any("update", w.updates.Keys()),
		zap.Any("fixed", w.fixed.Keys()),
		zap.Any("render", w.renders.Keys()),
	)
	return nil
}

func (w *World) compileFailed(group string, err error) error {
	w.log.Error("system compile failed", zap.String("group", group), zap.Error(err))
	return fmt.Errorf("compile %s systems: %w", group, err)
}

// Update delivers last frame's events, then runs the compiled update
// systems in order.
func (w *World) Update(dt time.Duration) {
	w.bus.SwapBuffers()
	w.bus.DispatchAll()
	for _, s := range w.updates.Systems() {
		s.Update(w, dt)
	}
}

// FixedUpdate runs the compiled fixed-tick systems in order.
func (w *World) FixedUpdate(dt time.Duration) {
	for _, s := range w.fixed.Systems() {
		s.FixedUpdate(w, dt)
	}
}

// Draw runs the compiled render systems in order.
func (w *World) Draw() {
	for _, s := range w.renders.Systems() {
		s.Draw(w)
	}
}

// Sealed reports whether every registered system is part of the compiled order.
func (w *World) Sealed() bool {
	return w.updates.Sealed() && w.fixed.Sealed() && w.renders.Sealed()
}

// UpdateOrder returns the compiled update order as system keys.
func (w *World) UpdateOrder() []system.Key { return w.updates.Keys() }

// FixedOrder returns the compiled fixed-tick order as system keys.
func (w *World) FixedOrder() []system.Key { return w.fixed.Keys() }

// RenderOrder returns the compiled render order as system keys.
func (w *World) RenderOrder() []system.Key { return w.renders.Keys() }

// GetPool returns the T pool of w, creating it on first use.
func GetPool[T any](w *World) *SparseSet[T] {
	return PoolOf[T](w.registry)
}

// AddComponent attaches or overwrites id's T component.
func AddComponent[T any](w *World, id EntityID, value T) *T {
	return GetPool[T](w).Set(id, value)
}

// GetComponent returns a pointer to id's T component or an error wrapping
// ErrComponentNotFound. Check HasComponent first when absence is expected.
func GetComponent[T any](w *World, id EntityID) (*T, error) {
	return GetPool[T](w).GetRef(id)
}

func TryGetComponent[T any](w *World, id EntityID) (T, bool) {
	return GetPool[T](w).TryGet(id)
}

func HasComponent[T any](w *World, id EntityID) bool {
	return GetPool[T](w).Contains(id)
}

func RemoveComponent[T any](w *World, id EntityID) bool {
	return GetPool[T](w).Delete(id)
}
