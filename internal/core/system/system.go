package system

import "reflect"

// Key identifies a system type. It is the fully qualified Go type name with
// pointer indirections stripped, so *MoveSystem and MoveSystem share a key.
type Key string

// KeyOf returns the key of v's dynamic type.
func KeyOf(v any) Key {
	return keyOfType(reflect.TypeOf(v))
}

// KeyFor returns the key of T.
func KeyFor[T any]() Key {
	return keyOfType(reflect.TypeOf((*T)(nil)).Elem())
}

func keyOfType(t reflect.Type) Key {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return Key(t.String())
	}
	return Key(t.PkgPath() + "." + t.Name())
}

// Relation says on which side of Other a system must run.
type Relation uint8

const (
	RunAfter Relation = iota + 1
	RunBefore
)

func (r Relation) String() string {
	switch r {
	case RunAfter:
		return "after"
	case RunBefore:
		return "before"
	default:
		return "unknown"
	}
}

// Constraint is one ordering declaration. Constraints naming a system that is
// not part of the group being scheduled are ignored.
type Constraint struct {
	Relation Relation
	Other    Key
}

func After[T any]() Constraint  { return Constraint{Relation: RunAfter, Other: KeyFor[T]()} }
func Before[T any]() Constraint { return Constraint{Relation: RunBefore, Other: KeyFor[T]()} }

func AfterKey(k Key) Constraint  { return Constraint{Relation: RunAfter, Other: k} }
func BeforeKey(k Key) Constraint { return Constraint{Relation: RunBefore, Other: k} }

// Orderer is implemented by systems that declare their own ordering.
type Orderer interface {
	Ordering() []Constraint
}

// Entry pairs a system with the constraints used to schedule it.
type Entry[T any] struct {
	System      T
	Key         Key
	Constraints []Constraint
}

// NewEntry keys s by its dynamic type and merges extra with the constraints s
// declares through Orderer.
func NewEntry[T any](s T, extra ...Constraint) Entry[T] {
	cs := append([]Constraint(nil), extra...)
	if o, ok := any(s).(Orderer); ok {
		cs = append(cs, o.Ordering()...)
	}
	return Entry[T]{System: s, Key: KeyOf(s), Constraints: cs}
}
