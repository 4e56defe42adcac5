package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

type viewField struct {
	offset   uintptr
	compType reflect.Type
	optional bool
	entityId bool
}

// View represents a query for entities with a specific combination of components.
// The type T must be a struct whose fields are pointers to component types;
// an EntityId field receives the entity's id. Named pointer fields can be
// marked optional with the `ecs:"optional"` tag and are nil when absent.
type View[T any] struct {
	storage  *Storage
	fields   []viewField
	required []reflect.Type
}

// NewView creates a new view for the given struct type
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.fields = append(v.fields, viewField{offset: field.Offset, entityId: true})
			continue
		}
		if field.Type.Kind() != reflect.Pointer {
			panic("View struct fields must be pointer types or EntityId, got " + field.Type.String())
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" {
			if field.Anonymous || tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" on named fields is supported)")
			}
			optional = true
		}

		compType := field.Type.Elem()
		v.fields = append(v.fields, viewField{
			offset:   field.Offset,
			compType: compType,
			optional: optional,
		})
		if !optional {
			v.required = append(v.required, compType)
		}
	}

	if len(v.required) == 0 {
		panic("View struct " + structType.String() + " needs at least one required component")
	}
	return v
}

// Fill populates the struct for the given entity. It returns false if the
// entity is gone or misses a required component.
func (v *View[T]) Fill(id EntityId, out *T) bool {
	if !v.storage.Alive(id) {
		return false
	}

	base := unsafe.Pointer(out)
	index := id.Index()
	for _, f := range v.fields {
		fieldPtr := unsafe.Add(base, f.offset)
		if f.entityId {
			*(*EntityId)(fieldPtr) = id
			continue
		}

		var comp any
		if store, ok := v.storage.stores[f.compType]; ok {
			comp = store.get(index)
		}
		if comp == nil {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = reflect.ValueOf(comp).UnsafePointer()
	}
	return true
}

// Get returns a populated view struct for the given entity, or nil if the
// entity does not match the view.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// driver picks the smallest store among the required components; iterating it
// touches the fewest candidates. It returns nil when a required store is empty.
func (v *View[T]) driver() componentStore {
	var best componentStore
	for _, t := range v.required {
		store, ok := v.storage.stores[t]
		if !ok || store.len() == 0 {
			return nil
		}
		if best == nil || store.len() < best.len() {
			best = store
		}
	}
	return best
}

// Iter returns an iterator over all entities carrying every required component.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		driver := v.driver()
		if driver == nil {
			return
		}

		var result T
		driver.each(func(index uint32) bool {
			id := v.storage.idFor(index)
			if !v.Fill(id, &result) {
				return true
			}
			return yield(id, result)
		})
	}
}

// Values returns an iterator over just the view structs
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}

// Spawn creates a new entity from the non-nil component fields of data.
func (v *View[T]) Spawn(data T) EntityId {
	base := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.fields))
	for _, f := range v.fields {
		if f.entityId {
			continue
		}
		ptr := *(*unsafe.Pointer)(unsafe.Add(base, f.offset))
		if ptr == nil {
			if !f.optional {
				panic("required component " + f.compType.String() + " is nil in View.Spawn")
			}
			continue
		}
		components = append(components, reflect.NewAt(f.compType, ptr).Elem().Interface())
	}

	return v.storage.Spawn(components...)
}
