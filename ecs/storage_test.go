package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/astro/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
	}{
		{1, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{12345, 7},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,gen=%d", tt.index, tt.generation), func(t *testing.T) {
			id := ecs.NewEntityId(tt.index, tt.generation)
			assert.Equal(t, tt.index, id.Index())
			assert.Equal(t, tt.generation, id.Generation())
		})
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Name("Test Entity"))
	assert.NotEqual(t, ecs.EntityId(0), id)
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, storage.Count())

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	name := ecs.ReadComponent[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, Name("Test Entity"), *name)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Velocity]()))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })

	type unregistered struct{}
	assert.Panics(t, func() { storage.Spawn(unregistered{}) })
}

func TestDeleteIsIdempotent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Delete(id)

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 0, storage.Count())
	assert.Nil(t, ecs.ReadComponent[Position](storage, id))

	assert.NotPanics(t, func() {
		storage.Delete(id)
		storage.Delete(ecs.EntityId(0))
		storage.Delete(ecs.NewEntityId(999, 1))
	})
}

func TestRecycledSlotsGetNewGeneration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	storage.Delete(first)
	second := storage.Spawn(Position{X: 2})

	assert.Equal(t, first.Index(), second.Index())
	assert.NotEqual(t, first.Generation(), second.Generation())
	assert.False(t, storage.Alive(first))
	assert.True(t, storage.Alive(second))

	// a stale id must not delete the entity now living in the slot
	storage.Delete(first)
	assert.True(t, storage.Alive(second))
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, second).X)
}

func TestComponentPointersAreStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 1})
	pos := ecs.ReadComponent[Position](storage, id)

	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	pos.X = 42
	assert.Equal(t, float32(42), ecs.ReadComponent[Position](storage, id).X)
}

func TestAddRemoveComponentKeepsId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1})
	assert.True(t, storage.AddComponent(id, Velocity{DX: 2}))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
	assert.Equal(t, float32(2), ecs.ReadComponent[Velocity](storage, id).DX)

	storage.RemoveComponent(id, reflect.TypeFor[Position]())
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.True(t, storage.Alive(id))
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Velocity]()}, storage.ComponentTypes(id))

	storage.Delete(id)
	assert.False(t, storage.AddComponent(id, Position{}))
}

func TestOnDeleteSeesComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var seen []float32
	storage.OnDelete(func(id ecs.EntityId) {
		seen = append(seen, ecs.ReadComponent[Position](storage, id).X)
	})

	id := storage.Spawn(Position{X: 7})
	storage.Delete(id)
	storage.Delete(id)

	assert.Equal(t, []float32{7}, seen)
}

func TestEntitiesIteration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Score(1))
	b := storage.Spawn(Score(2))
	c := storage.Spawn(Score(3))
	storage.Delete(b)

	var ids []ecs.EntityId
	for id := range storage.Entities() {
		ids = append(ids, id)
	}
	assert.Equal(t, []ecs.EntityId{a, c}, ids)
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.TotalEntityCount)
	assert.Equal(t, 0, stats.SingletonCount)

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{})
	ecs.NewSingleton[Health](storage, Health{Current: 1})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []ecs.ComponentStats{
		{Name: "ecs_test.Position", Count: 2},
		{Name: "ecs_test.Velocity", Count: 1},
	}, stats.Components)
	assert.Equal(t, []string{"ecs_test.Health"}, stats.SingletonTypes)
}
