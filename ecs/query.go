package ecs

import "iter"

// Query is a View that systems declare as a field; the Scheduler binds it to
// its storage on registration.
type Query[T any] struct {
	view *View[T]
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init (re)binds the Query to a storage.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
}

func (q *Query[T]) mustView() *View[T] {
	if q.view == nil {
		panic("Query used before Init; register the system with a Scheduler")
	}
	return q.view
}

// Iter returns an iterator over entity IDs and component data.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	return q.mustView().Iter()
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	return q.mustView().Values()
}

// Get returns the view of one entity, or nil when it does not match.
func (q *Query[T]) Get(id EntityId) *T {
	return q.mustView().Get(id)
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	return q.mustView().Count()
}

// Single returns the only matching entity. ok is false when there are zero
// or several matches.
func (q *Query[T]) Single() (id EntityId, item T, ok bool) {
	n := 0
	for eid, value := range q.Iter() {
		n++
		if n > 1 {
			var zero T
			return 0, zero, false
		}
		id, item = eid, value
	}
	return id, item, n == 1
}
