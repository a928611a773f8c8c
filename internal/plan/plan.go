package plan

import (
	"fmt"
	"os"

	"github.com/l1jgo/engine/internal/core/system"
	"gopkg.in/yaml.v3"
)

// SystemSpec declares one system of a plan file and its ordering.
type SystemSpec struct {
	Name   string   `yaml:"name"`
	After  []string `yaml:"after"`
	Before []string `yaml:"before"`
}

// GroupSpec is one independently scheduled group.
type GroupSpec struct {
	Name    string       `yaml:"name"`
	Systems []SystemSpec `yaml:"systems"`
}

// Plan is a system graph described as data, used to check ordering
// declarations without building a World.
type Plan struct {
	Groups []GroupSpec `yaml:"groups"`
}

// GroupOrder is the outcome of scheduling one group. Err is nil on success.
type GroupOrder struct {
	Name  string
	Order []system.Key
	Err   error
}

func Load(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	seen := make(map[string]struct{}, len(p.Groups))
	for i, g := range p.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("plan group %d has no name", i)
		}
		if _, dup := seen[g.Name]; dup {
			return nil, fmt.Errorf("plan group %q declared twice", g.Name)
		}
		seen[g.Name] = struct{}{}
		for j, s := range g.Systems {
			if s.Name == "" {
				return nil, fmt.Errorf("plan group %q: system %d has no name", g.Name, j)
			}
		}
	}
	return &p, nil
}

// Entries converts a group into scheduler input in file order.
func (g GroupSpec) Entries() []system.Entry[system.Key] {
	entries := make([]system.Entry[system.Key], 0, len(g.Systems))
	for _, s := range g.Systems {
		key := system.Key(s.Name)
		cs := make([]system.Constraint, 0, len(s.After)+len(s.Before))
		for _, a := range s.After {
			cs = append(cs, system.AfterKey(system.Key(a)))
		}
		for _, b := range s.Before {
			cs = append(cs, system.BeforeKey(system.Key(b)))
		}
		entries = append(entries, system.Entry[system.Key]{System: key, Key: key, Constraints: cs})
	}
	return entries
}

// Schedule sorts every group. A failing group does not stop the others.
func (p *Plan) Schedule() []GroupOrder {
	out := make([]GroupOrder, 0, len(p.Groups))
	for _, g := range p.Groups {
		order, err := system.Sort(g.Entries())
		out = append(out, GroupOrder{Name: g.Name, Order: order, Err: err})
	}
	return out
}

// Failed reports whether any group failed to schedule.
func Failed(orders []GroupOrder) bool {
	for _, o := range orders {
		if o.Err != nil {
			return true
		}
	}
	return false
}
