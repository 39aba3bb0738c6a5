// Package buf holds overflow-safe index arithmetic shared by the slot storage
// and the replay tooling.
package buf

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow indicates start+n does not fit in an int.
	ErrOverflow = errors.New("buf: range overflow")

	// ErrOutOfBounds indicates a range that starts below zero or ends past the limit.
	ErrOutOfBounds = errors.New("buf: range out of bounds")
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckRange validates that the half-open range [start, start+n) lies within
// [0, limit). Returns the end index if valid, or an error describing the
// specific failure (overflow or out of bounds).
//
// This is the recommended way to validate a run before touching any slot:
//
//	end, err := buf.CheckRange(len(slots), start, n)
//	if err != nil {
//	    return fmt.Errorf("run: %w", err)
//	}
//	// Safe to index slots[start:end]
func CheckRange(limit, start, n int) (int, error) {
	if start < 0 {
		return 0, fmt.Errorf("%w: negative start %d", ErrOutOfBounds, start)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrOutOfBounds, n)
	}

	end, ok := AddOverflowSafe(start, n)
	if !ok {
		return 0, fmt.Errorf("%w: start=%d + n=%d", ErrOverflow, start, n)
	}

	if end > limit {
		return 0, fmt.Errorf("%w: end=%d > limit=%d", ErrOutOfBounds, end, limit)
	}

	return end, nil
}

// InRange reports whether [start, start+n) lies within [0, limit).
func InRange(limit, start, n int) bool {
	_, err := CheckRange(limit, start, n)
	return err == nil
}
