package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotkit/cmd/slotctl/logger"
	"github.com/joshuapare/slotkit/internal/slotscript"
)

var replayKeepGoing bool

func init() {
	rootCmd.AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a slot allocation script and print the final slot map",
		Long: `The replay command runs every command of a script against a fresh slot
storage, prints the result of each query (find, find-run, insert, insert-run)
and then the final slot map.

A contract violation (double free, reserving a taken slot, an index past the
capacity) stops the replay and exits with status 1. Failed expect-* lines stop
the replay too, unless --keep-going is set.

Example:
  slotctl replay lights.slot
  slotctl replay lights.slot --keep-going --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args)
		},
	}

	cmd.Flags().
		BoolVar(&replayKeepGoing, "keep-going", false, "Report failed expectations and continue")
	return cmd
}

// replayReport is the JSON form of a replay.
type replayReport struct {
	Script   string      `json:"script"`
	Capacity int         `json:"capacity"`
	Steps    int         `json:"steps"`
	MaxIndex int         `json:"max_index"`
	Used     int         `json:"used"`
	Map      string      `json:"map"`
	Slots    []slotEntry `json:"slots"`
	Outputs  []string    `json:"outputs,omitempty"`
	Failures []string    `json:"failures,omitempty"`
	Error    string      `json:"error,omitempty"`
}

type slotEntry struct {
	Index  int    `json:"index"`
	Handle string `json:"handle"`
}

func runReplay(args []string) error {
	path := args[0]

	printVerbose("Reading script: %s\n", path)

	sc, err := loadScript(path)
	if err != nil {
		return err
	}

	printVerbose("Replaying %d commands, capacity %d\n", len(sc.Commands), sc.Capacity)

	res, runErr := slotscript.Run(sc, slotscript.Options{
		Logger:    logger.L,
		KeepGoing: replayKeepGoing,
	})

	report := newReplayReport(path, sc, res, runErr)
	logger.Info("replay finished",
		"script", path,
		"steps", report.Steps,
		"max_index", report.MaxIndex,
		"used", report.Used,
		"failures", len(report.Failures),
	)

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printReplayText(report)
	}

	if runErr != nil {
		return fmt.Errorf("replay failed: %w", runErr)
	}
	if n := len(res.Failures); n > 0 {
		return fmt.Errorf("replay failed: %d expectation(s) did not hold", n)
	}
	return nil
}

func newReplayReport(path string, sc *slotscript.Script, res *slotscript.Result, runErr error) replayReport {
	s := res.Storage
	report := replayReport{
		Script:   path,
		Capacity: sc.Capacity,
		Steps:    res.Steps,
		MaxIndex: s.MaxIndex(),
		Used:     s.Len(),
		Map:      s.String(),
		Slots:    make([]slotEntry, 0, s.Len()),
	}
	for idx, h := range s.All() {
		report.Slots = append(report.Slots, slotEntry{Index: idx, Handle: h})
	}
	for _, o := range res.Outputs {
		report.Outputs = append(report.Outputs, fmt.Sprintf("line %d: %s", o.Line, o.Text))
	}
	for _, f := range res.Failures {
		report.Failures = append(report.Failures, f.Error())
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}
	return report
}

func printReplayText(r replayReport) {
	for _, o := range r.Outputs {
		printInfo("%s\n", o)
	}
	for _, f := range r.Failures {
		printInfo("FAIL %s\n", f)
	}

	printInfo("\nSlot Storage:\n")
	printInfo("  Capacity:  %d\n", r.Capacity)
	printInfo("  Max index: %d\n", r.MaxIndex)
	printInfo("  Occupied:  %d\n", r.Used)
	printInfo("  Map:       %s\n", r.Map)

	if len(r.Slots) > 0 {
		printInfo("\nOccupied Slots:\n")
		for _, e := range r.Slots {
			printInfo("  %4d: %s\n", e.Index, e.Handle)
		}
	}
}
