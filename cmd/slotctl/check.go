package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Parse a script without replaying it",
		Long: `The check command parses a script and reports syntax errors with their
line numbers. Nothing is replayed.

Example:
  slotctl check lights.slot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

func runCheck(args []string) error {
	path := args[0]

	sc, err := loadScript(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"script":   path,
			"capacity": sc.Capacity,
			"commands": len(sc.Commands),
		})
	}

	printInfo("%s: %d commands, capacity %d\n", path, len(sc.Commands), sc.Capacity)
	return nil
}
