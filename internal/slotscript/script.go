// Package slotscript parses and replays slot allocation scripts.
//
// A script is a line-oriented list of storage calls used to reproduce an
// allocation sequence outside the program that produced it:
//
//	capacity 8
//	reserve 0 sun
//	reserve-run 2 6 point-light
//	free 0
//	expect-free 0
//	expect-max 8
//
// Handles are plain tokens; the empty string is the empty marker, so every
// token is a valid handle.
package slotscript

import "fmt"

// Op identifies a script command.
type Op uint8

const (
	OpCapacity Op = iota + 1
	OpReserve
	OpReserveRun
	OpReserveEach
	OpFree
	OpFreeRun
	OpInsert
	OpInsertRun
	OpFind
	OpFindRun
	OpExpectFree
	OpExpectRun
	OpExpectMax
)

var opNames = map[Op]string{
	OpCapacity:    "capacity",
	OpReserve:     "reserve",
	OpReserveRun:  "reserve-run",
	OpReserveEach: "reserve-each",
	OpFree:        "free",
	OpFreeRun:     "free-run",
	OpInsert:      "insert",
	OpInsertRun:   "insert-run",
	OpFind:        "find",
	OpFindRun:     "find-run",
	OpExpectFree:  "expect-free",
	OpExpectRun:   "expect-run",
	OpExpectMax:   "expect-max",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Command is one parsed script line. Fields not used by Op are zero.
type Command struct {
	Line    int      // 1-based source line
	Op      Op       // command kind
	Index   int      // slot index or run start
	Length  int      // run length, or the capacity for OpCapacity
	Want    int      // expected value for expect-*; -1 means "none"
	Handles []string // handles for reserve/insert commands
}

// Script is a parsed script ready to replay.
type Script struct {
	Capacity int
	Commands []Command
}
