package slot

import "github.com/joshuapare/slotkit/internal/buf"

// FindFreeRun returns the lowest index i such that slots [i, i+k) are all
// empty. Windows that would extend past the capacity are never considered, so
// k > Cap() always reports ok == false. It panics if k <= 0.
func (s *Storage[T]) FindFreeRun(k int) (int, bool) {
	if k <= 0 {
		violate("FindFreeRun", k, ErrBadRunLength)
	}
	last := len(s.slots) - k
	for i := 0; i <= last; {
		j := 0
		for j < k && s.slots[i+j] == s.empty {
			j++
		}
		if j == k {
			return i, true
		}
		// slots[i+j] is taken, so no window starting in [i, i+j] can fit.
		i += j + 1
	}
	return 0, false
}

// ReserveRun stores the same handle h in each slot of [start, start+k).
//
// The whole run is validated before any slot is written: an out-of-range run,
// a taken slot or an empty handle panics and leaves the storage unchanged.
func (s *Storage[T]) ReserveRun(start, k int, h T) {
	const op = "ReserveRun"
	s.checkRun(op, start, k)
	if h == s.empty {
		violate(op, start, ErrEmptyHandle)
	}
	for i := start; i < start+k; i++ {
		if s.slots[i] != s.empty {
			violate(op, i, ErrOccupied)
		}
	}
	for i := start; i < start+k; i++ {
		s.store(i, h)
	}
}

// ReserveEach stores hs[j] in slot start+j for every j. Validation is the same
// as ReserveRun and happens before any slot is written.
func (s *Storage[T]) ReserveEach(start int, hs ...T) {
	const op = "ReserveEach"
	s.checkRun(op, start, len(hs))
	for j, h := range hs {
		if s.slots[start+j] != s.empty {
			violate(op, start+j, ErrOccupied)
		}
		if h == s.empty {
			violate(op, start+j, ErrEmptyHandle)
		}
	}
	for j, h := range hs {
		s.store(start+j, h)
	}
}

// FreeRun empties the slots of [start, start+k) in ascending order.
//
// An out-of-range run panics before anything is freed. If a slot inside the
// run is already empty it panics at that slot; slots freed before it stay free.
func (s *Storage[T]) FreeRun(start, k int) {
	const op = "FreeRun"
	s.checkRun(op, start, k)
	for i := start; i < start+k; i++ {
		if s.slots[i] == s.empty {
			violate(op, i, ErrVacant)
		}
		s.slots[i] = s.empty
		s.used--
	}
}

// InsertRun reserves h in the lowest free run of k slots and returns its start.
// ok is false, and nothing is stored, when no such run exists.
func (s *Storage[T]) InsertRun(k int, h T) (int, bool) {
	if h == s.empty {
		violate("InsertRun", -1, ErrEmptyHandle)
	}
	start, ok := s.FindFreeRun(k)
	if !ok {
		return 0, false
	}
	s.ReserveRun(start, k, h)
	return start, true
}

func (s *Storage[T]) checkRun(op string, start, k int) {
	if k <= 0 {
		violate(op, k, ErrBadRunLength)
	}
	if !buf.InRange(len(s.slots), start, k) {
		violate(op, start, ErrOutOfRange)
	}
}
