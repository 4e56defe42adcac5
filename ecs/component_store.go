package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// componentStore is a type-erased storage for one component type, keyed by entity slot index.
type componentStore interface {
	insert(index uint32, item any) bool
	remove(index uint32)
	get(index uint32) any
	has(index uint32) bool
	len() int
	each(yield func(index uint32) bool)
	componentType() reflect.Type
}

const blockSize = 64

// blockStore keeps components in fixed-size blocks so a component never moves
// once written: pointers handed out by get stay valid until the entity loses
// the component. Freed slots are recycled before new blocks are allocated.
type blockStore[T any] struct {
	blocks []*[blockSize]T
	owners []uint32
	free   []int
	slots  *intmap.Map[uint32, int]
	count  int
}

func newBlockStore[T any]() *blockStore[T] {
	return &blockStore[T]{
		slots: intmap.New[uint32, int](blockSize),
	}
}

func (s *blockStore[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *blockStore[T]) insert(index uint32, item any) bool {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return false
	}

	if slot, ok := s.slots.Get(index); ok {
		*s.at(slot) = value
		return true
	}

	var slot int
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		slot = len(s.owners)
		s.owners = append(s.owners, 0)
		if slot/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, new([blockSize]T))
		}
	}

	*s.at(slot) = value
	s.owners[slot] = index
	s.slots.Put(index, slot)
	s.count++
	return true
}

func (s *blockStore[T]) remove(index uint32) {
	slot, ok := s.slots.Get(index)
	if !ok {
		return
	}

	var zero T
	*s.at(slot) = zero
	s.owners[slot] = 0
	s.free = append(s.free, slot)
	s.slots.Del(index)
	s.count--
}

func (s *blockStore[T]) get(index uint32) any {
	slot, ok := s.slots.Get(index)
	if !ok {
		return nil
	}
	return s.at(slot)
}

func (s *blockStore[T]) has(index uint32) bool {
	_, ok := s.slots.Get(index)
	return ok
}

func (s *blockStore[T]) len() int {
	return s.count
}

// each yields the owning entity index of every occupied slot in slot order.
// Removing the current entity while iterating is safe.
func (s *blockStore[T]) each(yield func(index uint32) bool) {
	for slot := 0; slot < len(s.owners); slot++ {
		owner := s.owners[slot]
		if owner == 0 {
			continue
		}
		if !yield(owner) {
			return
		}
	}
}

func (s *blockStore[T]) at(slot int) *T {
	return &s.blocks[slot/blockSize][slot%blockSize]
}
