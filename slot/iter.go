package slot

import "iter"

// All yields (index, handle) for every occupied slot below the high-water
// mark, in ascending index order. Empty slots are skipped.
//
// The sequence is lazy and can be ranged over any number of times. The bound
// is re-read on every step, so slots reserved during iteration at a higher
// index are visited too.
func (s *Storage[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.highWater; i++ {
			h := s.slots[i]
			if h == s.empty {
				continue
			}
			if !yield(i, h) {
				return
			}
		}
	}
}

// Values yields the occupied handles below the high-water mark in index order.
func (s *Storage[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, h := range s.All() {
			if !yield(h) {
				return
			}
		}
	}
}
