package ecs

import (
	"iter"
	"reflect"
)

// Storage holds every entity, component and singleton of one world.
type Storage struct {
	registry    *ComponentRegistry
	generations []uint32
	alive       []bool
	free        []uint32
	live        int
	stores      map[reflect.Type]componentStore
	singletons  map[reflect.Type]reflect.Value
	onDelete    []func(EntityId)
}

// NewStorage creates a new ECS storage with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry: registry,
		// slot 0 is reserved so that a zero slot owner always means "empty"
		generations: []uint32{0},
		alive:       []bool{false},
		stores:      make(map[reflect.Type]componentStore),
		singletons:  make(map[reflect.Type]reflect.Value),
	}
}

// Spawn creates a new entity with the provided components.
// Components may be passed by value or by pointer; pointers are copied.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.generations))
		s.generations = append(s.generations, 1)
		s.alive = append(s.alive, false)
	}
	s.alive[index] = true
	s.live++

	id := NewEntityId(index, s.generations[index])
	for _, comp := range components {
		s.insert(id, comp)
	}
	return id
}

// Alive reports whether the id names an entity that has not been deleted.
func (s *Storage) Alive(id EntityId) bool {
	index := id.Index()
	if index == 0 || int(index) >= len(s.generations) {
		return false
	}
	return s.alive[index] && s.generations[index] == id.Generation()
}

// Delete removes the entity and all its components. Deleting an entity that
// is already gone (or a stale id of a recycled slot) does nothing.
func (s *Storage) Delete(id EntityId) {
	if !s.Alive(id) {
		return
	}

	for _, fn := range s.onDelete {
		fn(id)
	}

	index := id.Index()
	for _, store := range s.stores {
		store.remove(index)
	}

	s.alive[index] = false
	s.generations[index]++
	if s.generations[index] == 0 {
		s.generations[index] = 1
	}
	s.free = append(s.free, index)
	s.live--
}

// OnDelete registers a callback invoked with each entity just before it is
// deleted, while its components are still readable.
func (s *Storage) OnDelete(fn func(EntityId)) {
	s.onDelete = append(s.onDelete, fn)
}

// AddComponent attaches (or overwrites) a component on a live entity.
// Entity ids are stable across component changes.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	if !s.Alive(id) {
		return false
	}
	s.insert(id, component)
	return true
}

// RemoveComponent detaches a component from a live entity. The entity itself
// stays alive even when it has no components left.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	if !s.Alive(id) {
		return
	}
	if store, ok := s.stores[compType]; ok {
		store.remove(id.Index())
	}
}

// GetComponent returns a pointer to the component of the given type, or nil
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.Alive(id) {
		return nil
	}
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.get(id.Index())
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	store, ok := s.stores[compType]
	return ok && store.has(id.Index())
}

// ComponentTypes lists the component types currently attached to the entity.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.Alive(id) {
		return nil
	}
	var types []reflect.Type
	for t, store := range s.stores {
		if store.has(id.Index()) {
			types = append(types, t)
		}
	}
	sortTypes(types)
	return types
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	return s.live
}

// Entities iterates over every live entity in slot order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index := 1; index < len(s.alive); index++ {
			if !s.alive[index] {
				continue
			}
			if !yield(NewEntityId(uint32(index), s.generations[index])) {
				return
			}
		}
	}
}

func (s *Storage) idFor(index uint32) EntityId {
	return NewEntityId(index, s.generations[index])
}

func (s *Storage) insert(id EntityId, comp any) {
	compType := reflect.TypeOf(comp)
	if compType == nil {
		panic("cannot insert a nil component")
	}
	if compType.Kind() == reflect.Pointer {
		compType = compType.Elem()
	}

	store := s.storeFor(compType)
	if !store.insert(id.Index(), comp) {
		panic("component value does not match its storage type " + compType.String())
	}
}

func (s *Storage) storeFor(compType reflect.Type) componentStore {
	if store, ok := s.stores[compType]; ok {
		return store
	}
	factory := s.registry.factory(compType)
	if factory == nil {
		panic("component type " + compType.String() + " not registered")
	}
	store := factory()
	s.stores[compType] = store
	return store
}

// ComponentReader is satisfied by anything that can look components up by entity.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the typed component of an entity, or nil if the entity
// does not carry one.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
