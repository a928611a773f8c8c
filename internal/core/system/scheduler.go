package system

import (
	"container/heap"
	"fmt"
	"sort"
)

// Sort returns the systems of entries in an order that satisfies every
// constraint whose target is also in entries.
//
// "A after B" is the edge B->A and "A before B" is A->B. Among systems that
// are ready at the same time, the one that appears first in entries runs
// first, so equal input always yields equal output.
//
// Sort fails with ErrDuplicateSystemType if two entries share a key and with
// a *CycleError if the constraints cannot all hold.
func Sort[T any](entries []Entry[T]) ([]T, error) {
	n := len(entries)
	index := make(map[Key]int, n)
	for i, e := range entries {
		if _, dup := index[e.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSystemType, e.Key)
		}
		index[e.Key] = i
	}

	g := newGraph(n)
	for i, e := range entries {
		for _, c := range e.Constraints {
			j, ok := index[c.Other]
			if !ok {
				continue
			}
			switch c.Relation {
			case RunAfter:
				g.addEdge(j, i)
			case RunBefore:
				g.addEdge(i, j)
			}
		}
	}

	indegree := append([]int(nil), g.indegree...)
	ready := make(readyQueue, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}
	heap.Init(&ready)

	out := make([]T, 0, n)
	for ready.Len() > 0 {
		i := heap.Pop(&ready).(int)
		out = append(out, entries[i].System)
		for _, j := range g.out[i] {
			indegree[j]--
			if indegree[j] == 0 {
				heap.Push(&ready, j)
			}
		}
	}

	if len(out) != n {
		return nil, newCycleError(entries, g, indegree)
	}
	return out, nil
}

func newCycleError[T any](entries []Entry[T], g *graph, indegree []int) *CycleError {
	cerr := &CycleError{}
	for i, e := range entries {
		if indegree[i] == 0 {
			continue
		}
		s := StuckSystem{Key: e.Key}
		for _, p := range g.in[i] {
			if indegree[p] > 0 {
				s.WaitingFor = append(s.WaitingFor, entries[p].Key)
			}
		}
		sort.Slice(s.WaitingFor, func(a, b int) bool { return s.WaitingFor[a] < s.WaitingFor[b] })
		cerr.Stuck = append(cerr.Stuck, s)
	}
	sort.Slice(cerr.Stuck, func(a, b int) bool { return cerr.Stuck[a].Key < cerr.Stuck[b].Key })
	return cerr
}

type graph struct {
	out      [][]int
	in       [][]int
	indegree []int
	seen     map[[2]int]struct{}
}

func newGraph(n int) *graph {
	return &graph{
		out:      make([][]int, n),
		in:       make([][]int, n),
		indegree: make([]int, n),
		seen:     make(map[[2]int]struct{}),
	}
}

// addEdge is idempotent.
func (g *graph) addEdge(from, to int) {
	k := [2]int{from, to}
	if _, ok := g.seen[k]; ok {
		return
	}
	g.seen[k] = struct{}{}
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	g.indegree[to]++
}

// readyQueue is a min-heap of entry indices.
type readyQueue []int

func (q readyQueue) Len() int           { return len(q) }
func (q readyQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q readyQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *readyQueue) Push(x any)        { *q = append(*q, x.(int)) }
func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
