package ecs

import (
	"math"
	"strconv"
)

// EntityID is an opaque entity identifier. IDs are allocated monotonically
// from 1 and never reused within a World; 0 is reserved as invalid.
type EntityID uint32

// InvalidEntity is the reserved zero identifier.
const InvalidEntity EntityID = 0

func (id EntityID) IsZero() bool { return id == InvalidEntity }

func (id EntityID) String() string {
	return "Entity(" + strconv.FormatUint(uint64(id), 10) + ")"
}

// EntityPool hands out entity identifiers. There is no free list and no
// generation tag: a destroyed ID is simply never issued again.
type EntityPool struct {
	next uint64
}

func NewEntityPool() *EntityPool {
	return &EntityPool{next: 1}
}

// Create returns the next unused ID. It panics with ErrEntityIDsExhausted
// once every non-zero uint32 has been issued.
func (p *EntityPool) Create() EntityID {
	if p.next > math.MaxUint32 {
		panic(ErrEntityIDsExhausted)
	}
	id := EntityID(p.next)
	p.next++
	return id
}

// Allocated returns how many IDs have been handed out so far.
func (p *EntityPool) Allocated() int {
	return int(p.next - 1)
}

// Issued reports whether id was ever returned by Create. It says nothing
// about whether the entity still owns components.
func (p *EntityPool) Issued(id EntityID) bool {
	return id != InvalidEntity && uint64(id) < p.next
}
