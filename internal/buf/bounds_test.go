package buf

import (
	"errors"
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		start   int
		n       int
		wantEnd int
		wantErr error
	}{
		{"whole", 4, 0, 4, 4, nil},
		{"tail", 4, 3, 1, 4, nil},
		{"empty at end", 4, 4, 0, 4, nil},
		{"past end", 4, 3, 2, 0, ErrOutOfBounds},
		{"negative start", 4, -1, 1, 0, ErrOutOfBounds},
		{"negative length", 4, 0, -1, 0, ErrOutOfBounds},
		{"overflow", math.MaxInt, 1, math.MaxInt, 0, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CheckRange(tt.limit, tt.start, tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CheckRange(%d,%d,%d) err=%v want %v", tt.limit, tt.start, tt.n, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckRange(%d,%d,%d) unexpected err: %v", tt.limit, tt.start, tt.n, err)
			}
			if end != tt.wantEnd {
				t.Fatalf("CheckRange(%d,%d,%d)=%d want %d", tt.limit, tt.start, tt.n, end, tt.wantEnd)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	if !InRange(8, 2, 6) {
		t.Fatalf("InRange(8,2,6) should be true")
	}
	if InRange(8, 2, 7) {
		t.Fatalf("InRange(8,2,7) should be false")
	}
}
