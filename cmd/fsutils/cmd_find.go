package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/cli"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var (
	findCriteria cli.FindCriteria
	findRelative bool
)

var findCmd = &cobra.Command{
	Use:   "find DIR",
	Short: "List files below a directory that match criteria",
	Long: `Walk DIR recursively and print every file that matches, sorted by
absolute path. Directories are never printed.

--glob patterns use doublestar syntax (e.g. "**/*.go") and are matched
against the path relative to DIR. --regex is matched against the full path.
Criteria of the same kind are alternatives; different kinds must all match.
Without criteria, GLOB_PATTERN from the settings file is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringArrayVarP(&findCriteria.Globs, "glob", "g", nil, "Glob pattern relative to DIR (repeatable)")
	findCmd.Flags().StringArrayVarP(&findCriteria.Regexes, "regex", "e", nil, "Regular expression on the full path (repeatable)")
	findCmd.Flags().StringSliceVarP(&findCriteria.Extensions, "ext", "x", nil, "File extensions, comma separated")
	findCmd.Flags().StringArrayVar(&findCriteria.Exclude, "exclude", nil, "Glob pattern to leave out (repeatable)")
	findCmd.Flags().BoolVar(&findRelative, "relative", false, "Print paths relative to DIR")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	baseDir := args[0]

	matcher, err := ctx.BuildMatcher(baseDir, findCriteria)
	if err != nil {
		return err
	}

	files, err := fsutil.GatherFilesThatMatchCriteria(baseDir, matcher)
	if err != nil {
		return err
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range files {
		if findRelative {
			if rel, err := filepath.Rel(absBase, file); err == nil {
				file = rel
			}
		}
		fmt.Fprintln(out, file)
	}
	return nil
}
