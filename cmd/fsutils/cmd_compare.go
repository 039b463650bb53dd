package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var compareQuiet bool

var compareCmd = &cobra.Command{
	Use:   "compare FILE_A FILE_B",
	Short: "Compare two files ignoring whitespace and blank lines",
	Long: `Report whether two text files hold the same lines once surrounding
whitespace is trimmed and blank lines are dropped.

Exits 0 when the files match and 1 when they differ, like cmp(1).`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVarP(&compareQuiet, "quiet", "q", false, "Only set the exit status")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	same, err := fsutil.SameContentIgnoringWhitespace(args[0], args[1])
	if err != nil {
		return err
	}

	if same {
		if !compareQuiet {
			ctx.UI.Successf("%s and %s have the same content", args[0], args[1])
		}
		return nil
	}

	if !compareQuiet {
		ctx.UI.Warningf("%s and %s differ", args[0], args[1])
	}
	return exitError{code: 1}
}
