package ecs

import (
	"errors"
	"math"
	"testing"
)

func TestEntityPoolExhaustion(t *testing.T) {
	p := &EntityPool{next: math.MaxUint32}
	if id := p.Create(); id != math.MaxUint32 {
		t.Fatalf("expected the last id, got %v", id)
	}
	if !p.Issued(math.MaxUint32) || uint64(p.Allocated()) != math.MaxUint32 {
		t.Fatalf("last id not recorded: allocated=%d", p.Allocated())
	}

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrEntityIDsExhausted) {
			t.Fatalf("expected ErrEntityIDsExhausted panic, got %v", err)
		}
		if p.Issued(InvalidEntity) {
			t.Fatalf("the invalid id must never be issued")
		}
	}()
	p.Create()
	t.Fatalf("Create returned after exhaustion")
}

func TestEntityPoolIssued(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	if a != 1 || !p.Issued(a) || p.Issued(2) || p.Issued(InvalidEntity) {
		t.Fatalf("unexpected pool state after one Create")
	}
}
