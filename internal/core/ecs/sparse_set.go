package ecs

import (
	"fmt"
	"reflect"
)

const (
	// DefaultPageSize is the number of sparse slots per lazily allocated page.
	DefaultPageSize = 1024
	// DefaultInitialCapacity is the dense capacity reserved by a new pool.
	DefaultInitialCapacity = 1024

	tombstone = -1
)

// Pool is the type-erased face of a SparseSet. The Registry keeps every
// pool behind this interface so DestroyEntity can sweep all of them.
type Pool interface {
	Contains(id EntityID) bool
	Delete(id EntityID) bool
	Len() int
	Clear()
	Entities() []EntityID
	Type() reflect.Type
}

// SparseSetOptions tunes a new SparseSet. Zero fields take the defaults.
type SparseSetOptions struct {
	PageSize        int
	InitialCapacity int
}

// sparseIndex maps entity IDs to dense slots through fixed-size pages.
// It holds no component data so views can probe any pool through it.
type sparseIndex struct {
	pageSize int
	pages    [][]int32
	entities []EntityID
}

func (s *sparseIndex) index(id EntityID) int {
	page := int(id) / s.pageSize
	if page >= len(s.pages) || s.pages[page] == nil {
		return tombstone
	}
	return int(s.pages[page][int(id)%s.pageSize])
}

func (s *sparseIndex) setIndex(id EntityID, dense int) {
	page := int(id) / s.pageSize
	if page >= len(s.pages) {
		s.pages = append(s.pages, make([][]int32, page+1-len(s.pages))...)
	}
	if s.pages[page] == nil {
		p := make([]int32, s.pageSize)
		for i := range p {
			p[i] = tombstone
		}
		s.pages[page] = p
	}
	s.pages[page][int(id)%s.pageSize] = int32(dense)
}

// SparseSet stores the T components of a World in one contiguous slice.
//
// The dense slice and the owner slice are index-aligned. Delete moves the
// last element into the freed slot, so iteration order is not stable across
// deletions. Pointers returned by Set, GetRef and RefAt stay valid only until
// the next Set of a new entity or Delete on the same set.
type SparseSet[T any] struct {
	sparseIndex
	dense []T
}

func NewSparseSet[T any](opts SparseSetOptions) *SparseSet[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.InitialCapacity < 0 {
		opts.InitialCapacity = 0
	}
	return &SparseSet[T]{
		sparseIndex: sparseIndex{
			pageSize: opts.PageSize,
			entities: make([]EntityID, 0, opts.InitialCapacity),
		},
		dense: make([]T, 0, opts.InitialCapacity),
	}
}

// Set attaches value to id, overwriting an existing component in place.
func (s *SparseSet[T]) Set(id EntityID, value T) *T {
	if i := s.index(id); i != tombstone {
		s.dense[i] = value
		return &s.dense[i]
	}
	i := len(s.dense)
	s.setIndex(id, i)
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, id)
	return &s.dense[i]
}

func (s *SparseSet[T]) TryGet(id EntityID) (T, bool) {
	i := s.index(id)
	if i == tombstone {
		var zero T
		return zero, false
	}
	return s.dense[i], true
}

// GetRef returns a pointer to id's component or ErrComponentNotFound.
func (s *SparseSet[T]) GetRef(id EntityID) (*T, error) {
	i := s.index(id)
	if i == tombstone {
		return nil, fmt.Errorf("%w: %s has no %s", ErrComponentNotFound, id, s.Type())
	}
	return &s.dense[i], nil
}

func (s *SparseSet[T]) Contains(id EntityID) bool {
	return s.index(id) != tombstone
}

// Delete swap-removes id's component. It reports false if id had none.
func (s *SparseSet[T]) Delete(id EntityID) bool {
	i := s.index(id)
	if i == tombstone {
		return false
	}
	last := len(s.dense) - 1
	lastID := s.entities[last]

	// Order matters when id is the last owner: the tombstone must win.
	s.setIndex(lastID, i)
	s.setIndex(id, tombstone)

	if i != last {
		s.dense[i] = s.dense[last]
		s.entities[i] = lastID
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	return true
}

func (s *SparseSet[T]) Clear() {
	clear(s.dense)
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
	s.pages = nil
}

func (s *SparseSet[T]) Len() int      { return len(s.dense) }
func (s *SparseSet[T]) IsEmpty() bool { return len(s.dense) == 0 }

// Dense exposes the component values. Callers must not append to or reslice
// the returned slice; element writes are fine.
func (s *SparseSet[T]) Dense() []T { return s.dense }

// Entities exposes the owner of each dense slot, aligned with Dense.
func (s *SparseSet[T]) Entities() []EntityID { return s.entities }

// DenseIndex returns id's slot in Dense, or -1.
func (s *SparseSet[T]) DenseIndex(id EntityID) int { return s.index(id) }

// RefAt returns a pointer to the i-th dense value without bounds recovery.
func (s *SparseSet[T]) RefAt(i int) *T { return &s.dense[i] }

func (s *SparseSet[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
