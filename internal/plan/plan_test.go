package plan

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/l1jgo/engine/internal/core/system"
)

const framePlan = `
groups:
  - name: update
    systems:
      - name: cleanup
        after: [aging]
      - name: aging
        after: [movement]
      - name: movement
  - name: render
    systems:
      - name: labels
      - name: sprites
        before: [labels]
`

func keys(names ...string) []system.Key {
	out := make([]system.Key, len(names))
	for i, n := range names {
		out[i] = system.Key(n)
	}
	return out
}

func equalKeys(a, b []system.Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScheduleOrdersEachGroup(t *testing.T) {
	p, err := Parse([]byte(framePlan))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	orders := p.Schedule()
	if Failed(orders) {
		t.Fatalf("unexpected failure: %+v", orders)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(orders))
	}
	if want := keys("movement", "aging", "cleanup"); !equalKeys(orders[0].Order, want) {
		t.Fatalf("update order %v, want %v", orders[0].Order, want)
	}
	if want := keys("sprites", "labels"); !equalKeys(orders[1].Order, want) {
		t.Fatalf("render order %v, want %v", orders[1].Order, want)
	}
}

func TestScheduleReportsCyclePerGroup(t *testing.T) {
	p, err := Parse([]byte(`
groups:
  - name: broken
    systems:
      - name: a
        after: [b]
      - name: b
        after: [a]
      - name: c
  - name: fine
    systems:
      - name: x
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	orders := p.Schedule()
	if !Failed(orders) {
		t.Fatalf("expected a failed group")
	}
	var cerr *system.CycleError
	if !errors.As(orders[0].Err, &cerr) {
		t.Fatalf("expected *CycleError, got %v", orders[0].Err)
	}
	if !equalKeys(cerr.Keys(), keys("a", "b")) {
		t.Fatalf("unexpected stuck systems %v", cerr.Keys())
	}
	if orders[1].Err != nil || !equalKeys(orders[1].Order, keys("x")) {
		t.Fatalf("healthy group affected by the broken one: %+v", orders[1])
	}
}

func TestParseValidation(t *testing.T) {
	cases := map[string]string{
		"unnamed group":   "groups:\n  - systems: []\n",
		"duplicate group": "groups:\n  - name: a\n  - name: a\n",
		"unnamed system":  "groups:\n  - name: a\n    systems:\n      - after: [b]\n",
		"malformed":       "groups: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(raw)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestEntriesKeepFileOrder(t *testing.T) {
	g := GroupSpec{Name: "g", Systems: []SystemSpec{
		{Name: "one", Before: []string{"two"}},
		{Name: "two", After: []string{"one", "ghost"}},
	}}
	entries := g.Entries()
	if len(entries) != 2 || entries[0].Key != "one" || entries[1].Key != "two" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if len(entries[1].Constraints) != 2 || entries[1].Constraints[1].Other != "ghost" {
		t.Fatalf("unexpected constraints %+v", entries[1].Constraints)
	}
}

func TestLoadShippedPlan(t *testing.T) {
	_, file, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(file), "..", "..", "data", "plans", "frame.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("shipped plan not found: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if orders := p.Schedule(); Failed(orders) {
		t.Fatalf("shipped plan does not schedule: %+v", orders)
	}
}
