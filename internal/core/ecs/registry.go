package ecs

import "reflect"

// Registry owns one SparseSet per component type. Pools are created on first
// request and never dropped; the slice keeps creation order so sweeps are
// deterministic.
type Registry struct {
	opts   SparseSetOptions
	byType map[reflect.Type]Pool
	pools  []Pool
}

func NewRegistry(opts SparseSetOptions) *Registry {
	return &Registry{
		opts:   opts,
		byType: make(map[reflect.Type]Pool, 16),
		pools:  make([]Pool, 0, 16),
	}
}

// PoolOf returns the T pool of r, creating it on first use.
func PoolOf[T any](r *Registry) *SparseSet[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if p, ok := r.byType[t]; ok {
		return p.(*SparseSet[T])
	}
	p := NewSparseSet[T](r.opts)
	r.byType[t] = p
	r.pools = append(r.pools, p)
	return p
}

// Lookup returns the pool for t if one was ever created.
func (r *Registry) Lookup(t reflect.Type) (Pool, bool) {
	p, ok := r.byType[t]
	return p, ok
}

// Pools returns every pool in creation order.
func (r *Registry) Pools() []Pool { return r.pools }

func (r *Registry) Len() int { return len(r.pools) }

// RemoveAll clears the given entity from every pool and returns how many
// components were removed.
func (r *Registry) RemoveAll(id EntityID) int {
	n := 0
	for _, p := range r.pools {
		if p.Delete(id) {
			n++
		}
	}
	return n
}

// Clear empties every pool but keeps them registered.
func (r *Registry) Clear() {
	for _, p := range r.pools {
		p.Clear()
	}
}
