package ecs_test

import (
	"testing"

	"github.com/plus3/astro/ecs"
)

func BenchmarkSpawnDelete(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
		storage.Delete(id)
	}
}

func BenchmarkViewIter(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 1000; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
		storage.Spawn(Position{X: float32(i)})
	}
	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, item := range view.Iter() {
			item.Position.X += item.Velocity.DX
		}
	}
}
