package slotscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// argument kinds used by the grammar table
const (
	argIndex  = 'i' // non-negative integer
	argHandle = 'h' // single handle token
	argWant   = 'w' // non-negative integer or "none"
	argRest   = '+' // one or more handle tokens, must be last
)

type grammar struct {
	op   Op
	args string
}

var grammars = map[string]grammar{
	"capacity":     {OpCapacity, "i"},
	"reserve":      {OpReserve, "ih"},
	"reserve-run":  {OpReserveRun, "iih"},
	"reserve-each": {OpReserveEach, "i+"},
	"free":         {OpFree, "i"},
	"free-run":     {OpFreeRun, "ii"},
	"insert":       {OpInsert, "h"},
	"insert-run":   {OpInsertRun, "ih"},
	"find":         {OpFind, ""},
	"find-run":     {OpFindRun, "i"},
	"expect-free":  {OpExpectFree, "w"},
	"expect-run":   {OpExpectRun, "iw"},
	"expect-max":   {OpExpectMax, "i"},
}

// Parse reads a script. Input may be UTF-8 or, when it starts with a byte
// order mark, UTF-16; scripts saved by Windows editors are accepted as-is.
func Parse(r io.Reader) (*Script, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	utf8Reader := transform.NewReader(r, decoder)

	scanner := bufio.NewScanner(utf8Reader)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	sc := &Script{Capacity: DefaultCapacity}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, CommentPrefix); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, err := parseCommand(lineNo, fields)
		if err != nil {
			return nil, err
		}

		if cmd.Op == OpCapacity {
			if len(sc.Commands) > 0 {
				return nil, &ParseError{Line: lineNo, Msg: "capacity must be the first command"}
			}
			if cmd.Length > MaxCapacity {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("capacity %d exceeds %d", cmd.Length, MaxCapacity)}
			}
			sc.Capacity = cmd.Length
		}
		sc.Commands = append(sc.Commands, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning script: %w", err)
	}

	return sc, nil
}

// ParseString is Parse over an in-memory script.
func ParseString(s string) (*Script, error) {
	return Parse(strings.NewReader(s))
}

func parseCommand(lineNo int, fields []string) (Command, error) {
	name := fields[0]
	g, ok := grammars[name]
	if !ok {
		return Command{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown command %q", name)}
	}

	args := fields[1:]
	variadic := strings.HasSuffix(g.args, string(argRest))
	switch {
	case variadic && len(args) < len(g.args):
		return Command{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("%s takes at least %d arguments, got %d", name, len(g.args), len(args))}
	case !variadic && len(args) != len(g.args):
		return Command{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("%s takes %d arguments, got %d", name, len(g.args), len(args))}
	}

	cmd := Command{Line: lineNo, Op: g.op}
	var ints []int
	for pos, kind := range g.args {
		arg := args[pos]
		switch kind {
		case argIndex:
			n, err := parseIndex(arg)
			if err != nil {
				return Command{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("%s: argument %d: %v", name, pos+1, err)}
			}
			ints = append(ints, n)
		case argWant:
			if arg == NoneToken {
				cmd.Want = -1
				continue
			}
			n, err := parseIndex(arg)
			if err != nil {
				return Command{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("%s: argument %d: %v", name, pos+1, err)}
			}
			cmd.Want = n
		case argHandle:
			cmd.Handles = []string{arg}
		case argRest:
			cmd.Handles = append([]string(nil), args[pos:]...)
		}
	}

	switch g.op {
	case OpCapacity, OpInsertRun, OpFindRun, OpExpectRun:
		cmd.Length = ints[0]
	case OpReserve, OpReserveEach, OpFree:
		cmd.Index = ints[0]
	case OpReserveRun, OpFreeRun:
		cmd.Index, cmd.Length = ints[0], ints[1]
	case OpExpectMax:
		cmd.Want = ints[0]
	}

	return cmd, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}
