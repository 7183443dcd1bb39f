package view

import "sync"

// Slot holds a value that must survive a view's re-renders. The value is built
// on the first Get and every later Get returns the same value until Reset.
type Slot[T any] struct {
	lk      sync.Mutex
	create  func() T
	value   T
	created bool
}

func NewSlot[T any](create func() T) *Slot[T] {
	return &Slot[T]{create: create}
}

func (s *Slot[T]) Get() T {
	s.lk.Lock()
	defer s.lk.Unlock()

	if !s.created {
		s.value = s.create()
		s.created = true
	}

	return s.value
}

// Reset drops the held value; the next Get builds a fresh one.
func (s *Slot[T]) Reset() {
	s.lk.Lock()
	defer s.lk.Unlock()

	var zero T
	s.value = zero
	s.created = false
}
