package slot

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index or run outside [0, capacity).
	ErrOutOfRange = errors.New("slot: index out of range")

	// ErrOccupied indicates an attempt to reserve a slot that already holds a handle.
	ErrOccupied = errors.New("slot: slot already taken")

	// ErrVacant indicates an attempt to free a slot that is already empty.
	ErrVacant = errors.New("slot: slot already empty")

	// ErrEmptyHandle indicates an attempt to reserve the empty marker.
	ErrEmptyHandle = errors.New("slot: empty handle")

	// ErrBadRunLength indicates a run length of zero or less.
	ErrBadRunLength = errors.New("slot: run length must be positive")

	// ErrBadCapacity indicates a negative capacity at construction.
	ErrBadCapacity = errors.New("slot: capacity must not be negative")
)

// ContractError is the panic value raised when a caller breaks the storage's
// contract. It is not returned from any function.
type ContractError struct {
	Op    string // operation that detected the violation, e.g. "Reserve"
	Index int    // offending slot index, or the offending length/capacity
	Err   error  // one of the sentinel errors above
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s(%d): %v", e.Op, e.Index, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func violate(op string, index int, err error) {
	panic(&ContractError{Op: op, Index: index, Err: err})
}
