package ecs

import (
	"reflect"
	"sort"
)

// StorageStats is a snapshot of what a Storage holds.
type StorageStats struct {
	TotalEntityCount int
	ComponentCount   int
	SingletonCount   int
	Components       []ComponentStats
	SingletonTypes   []string
}

// ComponentStats counts the entities carrying one component type.
type ComponentStats struct {
	Name  string
	Count int
}

// CollectStats gathers entity, component and singleton counts.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalEntityCount: s.live,
		SingletonCount:   len(s.singletons),
	}

	for t, store := range s.stores {
		if store.len() == 0 {
			continue
		}
		stats.Components = append(stats.Components, ComponentStats{
			Name:  t.String(),
			Count: store.len(),
		})
	}
	sort.Slice(stats.Components, func(i, j int) bool {
		return stats.Components[i].Name < stats.Components[j].Name
	})
	stats.ComponentCount = len(stats.Components)

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}

func sortTypes(types []reflect.Type) {
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
}
