package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/config"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var (
	patchUnified bool
	patchContext int
	patchOutput  string
)

var patchCmd = &cobra.Command{
	Use:   "patch ORIGINAL REVISED",
	Short: "Show the line deltas between two files",
	Long: `Compute the deltas that turn ORIGINAL into REVISED and print one per line:

  [ChangeDelta, position: 1, lines: ["b"] to ["x"]]
  [DeleteDelta, position: 1, lines: ["b"]]
  [InsertDelta, position: 1, lines: ["x"]]

Positions are zero-based lines of ORIGINAL. With --unified a unified diff is
printed instead, with DIFF_CONTEXT lines of context unless --context is
given. --output writes the deltas to a file instead of stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: runPatch,
}

func init() {
	patchCmd.Flags().BoolVarP(&patchUnified, "unified", "u", false, "Print a unified diff")
	patchCmd.Flags().IntVarP(&patchContext, "context", "C", 3, "Context lines for unified output")
	patchCmd.Flags().StringVarP(&patchOutput, "output", "o", "", "Write deltas to this file")
	rootCmd.AddCommand(patchCmd)
}

func runPatch(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	original, revised := args[0], args[1]

	if patchUnified {
		lines := patchContext
		if !cmd.Flags().Changed("context") {
			lines = ctx.Config.GetInt(config.KeyDiffContext, 3)
		}
		if lines < 0 {
			return fmt.Errorf("context line count cannot be negative, got: %d", lines)
		}

		diff, err := fsutil.UnifiedPatch(original, revised, lines)
		if err != nil {
			return err
		}
		if patchOutput != "" {
			if err := fsutil.WriteToFile(diff, patchOutput); err != nil {
				return err
			}
			ctx.UI.Successf("Wrote unified diff to %s", patchOutput)
			return nil
		}
		for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
			if line != "" {
				ctx.UI.DiffLine(cmd.OutOrStdout(), line)
			}
		}
		return nil
	}

	deltas, err := fsutil.GetPatch(original, revised)
	if err != nil {
		return err
	}

	if patchOutput != "" {
		if err := fsutil.WriteLinesToFile(deltas, patchOutput); err != nil {
			return err
		}
		ctx.UI.Successf("Wrote %d deltas to %s", len(deltas), patchOutput)
		return nil
	}

	if len(deltas) == 0 {
		ctx.UI.Info("Files are identical")
		return nil
	}
	for _, delta := range deltas {
		fmt.Fprintln(cmd.OutOrStdout(), delta)
	}
	return nil
}

