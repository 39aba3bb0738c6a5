package slotscript

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/joshuapare/slotkit/slot"
)

// Options configures a replay.
type Options struct {
	// Logger receives one debug record per command. Nil discards.
	Logger *slog.Logger

	// KeepGoing continues past failed expect-* lines instead of stopping.
	// Contract violations always stop the replay.
	KeepGoing bool
}

// Output is the reported result of a query command.
type Output struct {
	Line int
	Op   Op
	Text string
}

// Result is the state left by a replay.
type Result struct {
	Storage  *slot.Storage[string]
	Outputs  []Output
	Steps    int          // commands executed, including the failing one
	Failures []*StepError // expectation failures collected with KeepGoing
}

// Run replays sc against a fresh storage. It returns the partial result along
// with the first error that stopped the replay.
func Run(sc *Script, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	res := &Result{Storage: slot.New[string](sc.Capacity)}
	for _, cmd := range sc.Commands {
		res.Steps++
		err := step(res, cmd)
		if err == nil {
			logger.Debug("replay step",
				"line", cmd.Line,
				"op", cmd.Op.String(),
				"max_index", res.Storage.MaxIndex(),
				"used", res.Storage.Len(),
			)
			continue
		}
		logger.Debug("replay step failed", "line", cmd.Line, "op", cmd.Op.String(), "err", err.Error())
		if opts.KeepGoing && !isContract(err) {
			res.Failures = append(res.Failures, err)
			continue
		}
		return res, err
	}
	return res, nil
}

func isContract(err *StepError) bool {
	_, ok := err.Err.(*slot.ContractError)
	return ok
}

// step executes one command. A contract panic from the storage is turned into
// a *StepError here; any other panic propagates.
func step(res *Result, cmd Command) (err *StepError) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*slot.ContractError)
			if !ok {
				panic(r)
			}
			err = &StepError{Line: cmd.Line, Op: cmd.Op, Err: ce}
		}
	}()

	s := res.Storage
	report := func(text string) {
		res.Outputs = append(res.Outputs, Output{Line: cmd.Line, Op: cmd.Op, Text: text})
	}
	expect := func(got, want int) *StepError {
		if got == want {
			return nil
		}
		return &StepError{
			Line: cmd.Line,
			Op:   cmd.Op,
			Err:  fmt.Errorf("%w: got %s, want %s", ErrExpectation, formatIndex(got), formatIndex(want)),
		}
	}

	switch cmd.Op {
	case OpCapacity:
		// applied when the storage was created
	case OpReserve:
		s.Reserve(cmd.Index, cmd.Handles[0])
	case OpReserveRun:
		s.ReserveRun(cmd.Index, cmd.Length, cmd.Handles[0])
	case OpReserveEach:
		s.ReserveEach(cmd.Index, cmd.Handles...)
	case OpFree:
		s.Free(cmd.Index)
	case OpFreeRun:
		s.FreeRun(cmd.Index, cmd.Length)
	case OpInsert:
		idx, ok := s.Insert(cmd.Handles[0])
		report(fmt.Sprintf("insert %s: %s", cmd.Handles[0], formatFound(idx, ok, "full")))
	case OpInsertRun:
		idx, ok := s.InsertRun(cmd.Length, cmd.Handles[0])
		report(fmt.Sprintf("insert-run %d %s: %s", cmd.Length, cmd.Handles[0], formatFound(idx, ok, "full")))
	case OpFind:
		idx, ok := s.FindFree()
		report("find: " + formatFound(idx, ok, NoneToken))
	case OpFindRun:
		idx, ok := s.FindFreeRun(cmd.Length)
		report(fmt.Sprintf("find-run %d: %s", cmd.Length, formatFound(idx, ok, NoneToken)))
	case OpExpectFree:
		return expect(foundOrNone(s.FindFree()), cmd.Want)
	case OpExpectRun:
		return expect(foundOrNone(s.FindFreeRun(cmd.Length)), cmd.Want)
	case OpExpectMax:
		return expect(s.MaxIndex(), cmd.Want)
	default:
		return &StepError{Line: cmd.Line, Op: cmd.Op, Err: fmt.Errorf("%w: unknown op", ErrSyntax)}
	}
	return nil
}

func foundOrNone(idx int, ok bool) int {
	if !ok {
		return -1
	}
	return idx
}

func formatFound(idx int, ok bool, missing string) string {
	if !ok {
		return missing
	}
	return strconv.Itoa(idx)
}

func formatIndex(i int) string {
	if i < 0 {
		return NoneToken
	}
	return strconv.Itoa(i)
}
