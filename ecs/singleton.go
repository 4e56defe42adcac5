package ecs

import "reflect"

// Singleton provides access to a single component instance that is not
// attached to any entity: configuration, cameras, input snapshots and the like.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton returns an accessor for the T singleton of storage, creating it
// from the optional initializer (or the zero value) when it does not exist yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if _, ok := storage.singleton(reflect.TypeFor[T]()); !ok {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to a storage. The Scheduler calls this for
// Singleton fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.resolve()
}

// Get returns a pointer to the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.resolve()
	}
	return s.ptr
}

// Exists returns true if the singleton has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) resolve() {
	if s.storage == nil {
		return
	}
	if value, ok := s.storage.singleton(reflect.TypeFor[T]()); ok {
		s.ptr = value.Interface().(*T)
	}
}

// AddSingleton stores value as the singleton of its type. Replacing an
// existing singleton writes through the old pointer so accessors stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if existing, ok := s.singletons[v.Type()]; ok {
		existing.Elem().Set(v)
		return
	}

	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = ptr
}

// ReadSingleton fills target, which must be a **T, with the T singleton.
// It returns false when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.Elem().Kind() != reflect.Pointer {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	value, ok := s.singleton(tv.Elem().Type().Elem())
	if !ok {
		return false
	}
	tv.Elem().Set(value)
	return true
}

// RemoveSingleton drops the singleton of the given type.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

func (s *Storage) singleton(t reflect.Type) (reflect.Value, bool) {
	v, ok := s.singletons[t]
	return v, ok
}
