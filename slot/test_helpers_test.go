package slot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// texture stands in for an externally owned resource referenced by pointer.
type texture struct {
	name string
}

func newTextures(names ...string) []*texture {
	out := make([]*texture, len(names))
	for i, n := range names {
		out[i] = &texture{name: n}
	}
	return out
}

// requireViolation runs fn and fails the test unless it panics with a
// *ContractError wrapping want.
func requireViolation(t testing.TB, want error, fn func()) *ContractError {
	t.Helper()

	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()

	require.NotNil(t, got, "expected panic wrapping %v", want)
	ce, ok := got.(*ContractError)
	require.True(t, ok, "panic value %T (%v) is not *ContractError", got, got)
	require.ErrorIs(t, ce, want)
	return ce
}

// assertInvariants checks the structural invariants that must hold after any
// sequence of valid calls.
func assertInvariants[T comparable](t testing.TB, s *Storage[T]) {
	t.Helper()

	hw := s.MaxIndex()
	require.GreaterOrEqual(t, hw, 0, "high water below zero")
	require.LessOrEqual(t, hw, s.Cap(), "high water above capacity")

	used := 0
	for i := range s.Cap() {
		if !s.IsFree(i) {
			used++
			require.Less(t, i, hw, "slot %d occupied at or beyond high water %d", i, hw)
		}
	}
	require.Equal(t, used, s.Len(), "Len does not match occupied slot count")
	require.LessOrEqual(t, s.Len(), hw)
}
