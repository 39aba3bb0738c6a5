package slotscript

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/slot"
)

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	sc, err := ParseString(src)
	require.NoError(t, err)
	return sc
}

func outputTexts(res *Result) []string {
	out := make([]string, len(res.Outputs))
	for i, o := range res.Outputs {
		out[i] = o.Text
	}
	return out
}

func TestRun_Scenario(t *testing.T) {
	sc := mustParse(t, `capacity 4
reserve 0 A
reserve 2 B
expect-max 3
expect-free 1
expect-run 2 none
find
find-run 2
`)

	res, err := Run(sc, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"find: 1", "find-run 2: none"}, outputTexts(res))
	assert.Equal(t, "[#.#.]", res.Storage.String())
	assert.Equal(t, 8, res.Steps)
}

func TestRun_InsertAndRuns(t *testing.T) {
	sc := mustParse(t, `capacity 8
insert sun
insert-run 6 point
insert lamp
insert-run 2 cube
free-run 1 6
expect-max 8
insert-run 3 cube
`)

	res, err := Run(sc, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"insert sun: 0",
		"insert-run 6 point: 1",
		"insert lamp: 7",
		"insert-run 2 cube: full",
		"insert-run 3 cube: 1",
	}, outputTexts(res))
	assert.Equal(t, "[####...#]", res.Storage.String())
}

func TestRun_ContractViolationStops(t *testing.T) {
	sc := mustParse(t, `capacity 4
reserve 1 a
free 1
free 1
reserve 0 b
`)

	res, err := Run(sc, Options{KeepGoing: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, slot.ErrVacant)

	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 4, se.Line)
	assert.Equal(t, OpFree, se.Op)

	var ce *slot.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Index)

	assert.Equal(t, 4, res.Steps, "replay stops at the violation even with KeepGoing")
	assert.Equal(t, "[....]", res.Storage.String())
}

func TestRun_OutOfRange(t *testing.T) {
	sc := mustParse(t, "capacity 2\nreserve 2 a\n")
	_, err := Run(sc, Options{})
	assert.ErrorIs(t, err, slot.ErrOutOfRange)

	sc = mustParse(t, "capacity 4\nfind-run 0\n")
	_, err = Run(sc, Options{})
	assert.ErrorIs(t, err, slot.ErrBadRunLength)
}

func TestRun_Expectations(t *testing.T) {
	sc := mustParse(t, `capacity 2
reserve 0 a
expect-free 0
expect-max 5
expect-free 1
`)

	_, err := Run(sc, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpectation))
	assert.Contains(t, err.Error(), "line 3: expect-free")
	assert.Contains(t, err.Error(), "got 1, want 0")

	res, err := Run(sc, Options{KeepGoing: true})
	require.NoError(t, err)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, 3, res.Failures[0].Line)
	assert.Equal(t, 4, res.Failures[1].Line)
	assert.Equal(t, 5, res.Steps)
}

func TestRun_LogsSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sc := mustParse(t, "capacity 2\nreserve 1 a\nfree 0\n")
	_, err := Run(sc, Options{Logger: logger})
	require.Error(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "msg=\"replay step\"")
	assert.Contains(t, logs, "op=reserve")
	assert.Contains(t, logs, "max_index=2")
	assert.Contains(t, logs, "msg=\"replay step failed\"")
}
