package slotscript

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed script line.
	ErrSyntax = errors.New("slotscript: syntax error")

	// ErrExpectation indicates an expect-* line did not hold.
	ErrExpectation = errors.New("slotscript: expectation failed")
)

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

// StepError reports a command that failed during replay. Err is either a
// *slot.ContractError or wraps ErrExpectation.
type StepError struct {
	Line int
	Op   Op
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
