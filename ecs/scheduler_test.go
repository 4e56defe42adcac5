package ecs_test

import (
	"testing"

	"github.com/plus3/astro/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveSystem struct {
	Movers ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *moveSystem) Execute(frame *ecs.UpdateFrame) {
	for _, m := range s.Movers.Iter() {
		m.Position.X += m.Velocity.DX * float32(frame.DeltaTime)
		m.Position.Y += m.Velocity.DY * float32(frame.DeltaTime)
	}
}

type tickCounter struct {
	Ticks int
}

type reaperSystem struct {
	Counter ecs.Singleton[tickCounter]
	Scores  ecs.Query[struct {
		ecs.EntityId
		*Score
	}]
}

func (s *reaperSystem) Execute(frame *ecs.UpdateFrame) {
	s.Counter.Get().Ticks++
	for id := range s.Scores.Iter() {
		frame.Commands.Delete(id)
	}
}

func TestSchedulerRunsInOrderAndFlushes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[tickCounter](storage)

	mover := storage.Spawn(Position{}, Velocity{DX: 2, DY: 1})
	doomed := storage.Spawn(Score(5))

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&moveSystem{})
	scheduler.Register(&reaperSystem{})

	scheduler.Once(0.5)

	pos := ecs.ReadComponent[Position](storage, mover)
	require.NotNil(t, pos)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(0.5), pos.Y)
	assert.False(t, storage.Alive(doomed))

	var counter *tickCounter
	require.True(t, storage.ReadSingleton(&counter))
	assert.Equal(t, 1, counter.Ticks)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[tickCounter](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&moveSystem{})
	scheduler.Register(&reaperSystem{})

	for i := 0; i < 3; i++ {
		scheduler.Once(0.016)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "moveSystem", stats.Systems[0].Name)
	assert.Equal(t, "reaperSystem", stats.Systems[1].Name)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(3), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
	}
}

func TestSingletonAccess(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var missing ecs.Singleton[tickCounter]
	missing.Init(storage)
	assert.False(t, missing.Exists())

	storage.AddSingleton(tickCounter{Ticks: 3})
	assert.True(t, missing.Exists())
	ptr := missing.Get()

	storage.AddSingleton(&tickCounter{Ticks: 4})
	assert.Equal(t, 4, ptr.Ticks)

	assert.Panics(t, func() { storage.ReadSingleton(ptr) })
}
