package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/config"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var (
	linesTrim   bool
	linesNumber bool
	writeLines  bool
)

var linesCmd = &cobra.Command{
	Use:   "lines FILE",
	Short: "Print the lines of a text file",
	Long: `Print the lines of FILE, one per line, with line endings normalised.

With --trim, every line is stripped of surrounding whitespace and blank lines
are dropped. TRIM_WHITESPACE in the settings file sets the default.`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

var writeCmd = &cobra.Command{
	Use:   "write FILE [TEXT...]",
	Short: "Write text to a file, replacing its contents",
	Long: `Write TEXT to FILE, replacing anything already there.

By default the arguments are joined with spaces and written verbatim. With
--lines each argument is written on its own line and every line, including
the last, ends with a newline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWrite,
}

func init() {
	linesCmd.Flags().BoolVarP(&linesTrim, "trim", "t", false, "Trim whitespace and drop blank lines")
	linesCmd.Flags().BoolVarP(&linesNumber, "number", "n", false, "Prefix each line with its line number")
	writeCmd.Flags().BoolVarP(&writeLines, "lines", "l", false, "Write each argument as its own line")
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(writeCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	trim := linesTrim
	if !cmd.Flags().Changed("trim") {
		trim = ctx.Config.GetBool(config.KeyTrimWhitespace, false)
	}

	lines, err := fsutil.ReadLinesWithOptions(args[0], trim)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, line := range lines {
		if linesNumber {
			fmt.Fprintf(out, "%6d\t%s\n", i+1, line)
			continue
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func runWrite(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	file, text := args[0], args[1:]

	if writeLines {
		err = fsutil.WriteLinesToFile(text, file)
	} else {
		err = fsutil.WriteToFile(strings.Join(text, " "), file)
	}
	if err != nil {
		return err
	}
	ctx.UI.Successf("Wrote %s", file)
	return nil
}
