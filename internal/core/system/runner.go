package system

// Group collects the systems of one execution phase and holds their
// scheduled order. Ordering constraints never cross group boundaries.
//
// Registration only appends to the pending list; the order used for
// execution changes only when a schedule is installed.
type Group[T any] struct {
	name    string
	entries []Entry[T]
	ordered []T
	sealed  bool
}

func NewGroup[T any](name string) *Group[T] {
	return &Group[T]{
		name:    name,
		entries: make([]Entry[T], 0, 16),
	}
}

func (g *Group[T]) Name() string { return g.name }

// Register queues s with optional extra constraints.
func (g *Group[T]) Register(s T, constraints ...Constraint) {
	g.entries = append(g.entries, NewEntry(s, constraints...))
	g.sealed = false
}

// Schedule sorts the registered systems without installing the result.
func (g *Group[T]) Schedule() ([]T, error) {
	return Sort(g.entries)
}

// Install makes order the execution order and marks the group sealed.
func (g *Group[T]) Install(order []T) {
	g.ordered = order
	g.sealed = true
}

// Compile schedules and installs in one step.
func (g *Group[T]) Compile() error {
	order, err := g.Schedule()
	if err != nil {
		return err
	}
	g.Install(order)
	return nil
}

// Systems returns the installed order.
func (g *Group[T]) Systems() []T { return g.ordered }

// Sealed reports whether the installed order reflects every registration.
func (g *Group[T]) Sealed() bool { return g.sealed }

// Registered returns how many systems are pending or installed.
func (g *Group[T]) Registered() int { return len(g.entries) }

// Keys returns the keys of the installed order.
func (g *Group[T]) Keys() []Key {
	keys := make([]Key, len(g.ordered))
	for i, s := range g.ordered {
		keys[i] = KeyOf(s)
	}
	return keys
}
