package slot

import "strings"

// Storage is a fixed array of handle slots with a high-water mark.
//
// The zero value is a storage of capacity zero; use New or NewWithEmpty.
type Storage[T comparable] struct {
	slots []T
	empty T

	// highWater is one past the highest index ever reserved. Free never lowers it.
	highWater int

	// used is the live number of occupied slots.
	used int
}

// New creates a storage with capacity slots, all empty. The zero value of T is
// the empty marker, so pointer, interface and channel handles use nil.
func New[T comparable](capacity int) *Storage[T] {
	var zero T
	return NewWithEmpty(capacity, zero)
}

// NewWithEmpty creates a storage whose empty marker is empty. Use it when the
// zero value of T is a valid handle, e.g. tagged indices where 0 is in use.
func NewWithEmpty[T comparable](capacity int, empty T) *Storage[T] {
	if capacity < 0 {
		violate("New", capacity, ErrBadCapacity)
	}
	s := &Storage[T]{
		slots: make([]T, capacity),
		empty: empty,
	}
	var zero T
	if empty != zero {
		for i := range s.slots {
			s.slots[i] = empty
		}
	}
	return s
}

// Cap returns the fixed number of slots.
func (s *Storage[T]) Cap() int { return len(s.slots) }

// Len returns the number of occupied slots.
func (s *Storage[T]) Len() int { return s.used }

// MaxIndex returns the high-water mark: every slot at or beyond it is empty.
func (s *Storage[T]) MaxIndex() int { return s.highWater }

// Empty returns the storage's empty marker.
func (s *Storage[T]) Empty() T { return s.empty }

// Get returns the handle at i and whether the slot is occupied.
func (s *Storage[T]) Get(i int) (T, bool) {
	s.checkIndex("Get", i)
	h := s.slots[i]
	return h, h != s.empty
}

// IsFree reports whether slot i is empty.
func (s *Storage[T]) IsFree(i int) bool {
	s.checkIndex("IsFree", i)
	return s.slots[i] == s.empty
}

// FindFree returns the lowest empty index. ok is false when every slot is taken.
func (s *Storage[T]) FindFree() (int, bool) {
	for i, h := range s.slots {
		if h == s.empty {
			return i, true
		}
	}
	return 0, false
}

// Reserve stores h in slot i. It panics if i is out of range, the slot is
// already taken, or h is the empty marker.
func (s *Storage[T]) Reserve(i int, h T) {
	s.checkIndex("Reserve", i)
	if s.slots[i] != s.empty {
		violate("Reserve", i, ErrOccupied)
	}
	if h == s.empty {
		violate("Reserve", i, ErrEmptyHandle)
	}
	s.store(i, h)
}

// Free empties slot i. It panics if i is out of range or the slot is already
// empty. The high-water mark is left unchanged.
func (s *Storage[T]) Free(i int) {
	s.checkIndex("Free", i)
	if s.slots[i] == s.empty {
		violate("Free", i, ErrVacant)
	}
	s.slots[i] = s.empty
	s.used--
}

// Insert reserves h in the lowest empty slot and returns its index.
// ok is false, and nothing is stored, when the storage is full. Inserting the
// empty marker panics even when the storage is full.
func (s *Storage[T]) Insert(h T) (int, bool) {
	if h == s.empty {
		violate("Insert", -1, ErrEmptyHandle)
	}
	i, ok := s.FindFree()
	if !ok {
		return 0, false
	}
	s.Reserve(i, h)
	return i, true
}

// String renders the occupancy map, '#' for taken and '.' for empty slots.
func (s *Storage[T]) String() string {
	var b strings.Builder
	b.Grow(len(s.slots) + 2)
	b.WriteByte('[')
	for _, h := range s.slots {
		if h == s.empty {
			b.WriteByte('.')
		} else {
			b.WriteByte('#')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// store writes a validated handle and raises the high-water mark.
func (s *Storage[T]) store(i int, h T) {
	s.slots[i] = h
	s.used++
	if i+1 > s.highWater {
		s.highWater = i + 1
	}
}

func (s *Storage[T]) checkIndex(op string, i int) {
	if i < 0 || i >= len(s.slots) {
		violate(op, i, ErrOutOfRange)
	}
}
