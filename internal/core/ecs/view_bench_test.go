package ecs_test

import (
	"testing"

	"github.com/l1jgo/engine/internal/core/ecs"
)

type benchVec struct{ X, Y, Z float32 }
type benchA struct{ P benchVec }
type benchB struct{ P benchVec }
type benchC struct{ P benchVec }
type benchD struct{ P benchVec }
type benchE struct{ P benchVec }

const benchDT = 0.01

func benchWorld(b *testing.B, n int) *ecs.World {
	b.Helper()
	w := ecs.NewWorld()
	for i := 0; i < n; i++ {
		id := w.CreateEntity()
		ecs.AddComponent(w, id, benchA{})
		ecs.AddComponent(w, id, benchB{})
		ecs.AddComponent(w, id, benchC{})
		ecs.AddComponent(w, id, benchD{})
		ecs.AddComponent(w, id, benchE{})
	}
	return w
}

// go test -run ^$ -bench ^BenchmarkView -benchmem ./internal/core/ecs
func BenchmarkView1(b *testing.B) {
	w := benchWorld(b, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Each1(w, func(_ ecs.EntityID, a *benchA) { a.P.X += 10 * benchDT })
	}
}

func BenchmarkView2(b *testing.B) {
	w := benchWorld(b, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Each2(w, func(_ ecs.EntityID, a *benchA, _ *benchB) { a.P.X += 10 * benchDT })
	}
}

func BenchmarkView3(b *testing.B) {
	w := benchWorld(b, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Each3(w, func(_ ecs.EntityID, a *benchA, _ *benchB, _ *benchC) { a.P.X += 10 * benchDT })
	}
}

type benchJob struct{ dt float32 }

func (j benchJob) Execute(_ ecs.EntityID, a *benchA, _ *benchB, _ *benchC, _ *benchD, _ *benchE) {
	a.P.X += 10 * j.dt
}

func BenchmarkView5Job(b *testing.B) {
	w := benchWorld(b, 100_000)
	view := ecs.NewView5[benchA, benchB, benchC, benchD, benchE](w)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view.ExecuteJob(benchJob{dt: benchDT})
	}
}

func BenchmarkRunJob5(b *testing.B) {
	w := benchWorld(b, 100_000)
	view := ecs.NewView5[benchA, benchB, benchC, benchD, benchE](w)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.RunJob5(view, benchJob{dt: benchDT})
	}
}

func BenchmarkSparseSetChurn(b *testing.B) {
	s := ecs.NewSparseSet[benchA](ecs.SparseSetOptions{})
	for i := 1; i <= 10_000; i++ {
		s.Set(ecs.EntityID(i), benchA{})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := ecs.EntityID(i%10_000 + 1)
		s.Delete(id)
		s.Set(id, benchA{})
	}
}
