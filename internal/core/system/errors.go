package system

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateSystemType means one group held two systems of the same type.
	ErrDuplicateSystemType = errors.New("system: duplicate system type in group")
	// ErrCycle matches every *CycleError.
	ErrCycle = errors.New("system: ordering contains a cycle")
)

// StuckSystem is a system whose predecessors never all ran.
type StuckSystem struct {
	Key        Key
	WaitingFor []Key
}

// CycleError lists the systems left over after a topological sort, sorted by
// key, each with the still-stuck predecessors it waits on.
type CycleError struct {
	Stuck []StuckSystem
}

func (e *CycleError) Error() string {
	var b strings.Builder
	b.WriteString(ErrCycle.Error())
	b.WriteString("; remaining systems:")
	for _, s := range e.Stuck {
		waiting := make([]string, len(s.WaitingFor))
		for i, k := range s.WaitingFor {
			waiting[i] = string(k)
		}
		fmt.Fprintf(&b, "\n- %s (waiting for: %s)", s.Key, strings.Join(waiting, ", "))
	}
	return b.String()
}

func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// Keys returns the key of every stuck system.
func (e *CycleError) Keys() []Key {
	keys := make([]Key, len(e.Stuck))
	for i, s := range e.Stuck {
		keys[i] = s.Key
	}
	return keys
}
