package event

import "testing"

type spawned struct{ ID int }
type despawned struct{ ID int }

func TestBusDeliversAfterSwap(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(ev spawned) { got = append(got, ev.ID) })

	Emit(b, spawned{ID: 1})
	Emit(b, spawned{ID: 2})
	if Pending[spawned](b) != 2 {
		t.Fatalf("expected 2 pending, got %d", Pending[spawned](b))
	}

	b.DispatchAll()
	if len(got) != 0 {
		t.Fatalf("events delivered before swap: %v", got)
	}

	b.SwapBuffers()
	if Pending[spawned](b) != 0 {
		t.Fatalf("back buffer not cleared by swap")
	}
	b.DispatchAll()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestBusEventsLiveOneFrame(t *testing.T) {
	b := NewBus()
	calls := 0
	Subscribe(b, func(spawned) { calls++ })

	Emit(b, spawned{})
	b.SwapBuffers()
	b.DispatchAll()
	b.SwapBuffers()
	b.DispatchAll()
	if calls != 1 {
		t.Fatalf("expected a single delivery, got %d", calls)
	}
}

func TestBusEmitDuringDispatchWaitsForNextFrame(t *testing.T) {
	b := NewBus()
	var order []string
	Subscribe(b, func(ev spawned) {
		order = append(order, "spawned")
		Emit(b, despawned{ID: ev.ID})
	})
	Subscribe(b, func(despawned) { order = append(order, "despawned") })

	Emit(b, spawned{ID: 7})
	b.SwapBuffers()
	b.DispatchAll()
	if len(order) != 1 {
		t.Fatalf("chained event delivered in the same frame: %v", order)
	}
	b.SwapBuffers()
	b.DispatchAll()
	if len(order) != 2 || order[1] != "despawned" {
		t.Fatalf("expected chained delivery next frame, got %v", order)
	}
}

func TestBusDispatchFollowsFirstSeenTypeOrder(t *testing.T) {
	b := NewBus()
	var order []string
	Subscribe(b, func(despawned) { order = append(order, "despawned") })
	Subscribe(b, func(spawned) { order = append(order, "spawned") })

	Emit(b, spawned{})
	Emit(b, despawned{})
	b.SwapBuffers()
	b.DispatchAll()
	if len(order) != 2 || order[0] != "despawned" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestBusMultipleHandlers(t *testing.T) {
	b := NewBus()
	first, second := 0, 0
	Subscribe(b, func(spawned) { first++ })
	Subscribe(b, func(spawned) { second++ })
	Emit(b, spawned{})
	Emit(b, despawned{}) // no handler
	b.SwapBuffers()
	b.DispatchAll()
	if first != 1 || second != 1 {
		t.Fatalf("expected each handler once, got %d and %d", first, second)
	}
}
