package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/common"
	"github.com/zoro11031/fsutils/internal/fsutil"
	"github.com/zoro11031/fsutils/internal/match"
)

var copyCmd = &cobra.Command{
	Use:   "copy SRC DST",
	Short: "Copy a directory tree",
	Long: `Recursively copy SRC into DST, creating DST and any missing parents.

File modes, modification times and symlinks are preserved. The copy is not
atomic: if it fails, files copied so far remain in DST.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	src, dst := args[0], args[1]

	if err := common.ValidateDistinctPaths(src, dst); err != nil {
		return err
	}

	ctx.UI.Step(fmt.Sprintf("Copying %s to %s", src, dst))
	if err := fsutil.CopyDirectory(src, dst); err != nil {
		ctx.UI.Warning("The destination may contain a partial copy")
		return err
	}

	files, err := fsutil.GatherFilesThatMatchCriteria(dst, match.Always())
	if err != nil {
		return err
	}
	ctx.UI.Successf("Copied %s to %s (%d files)", src, dst, len(files))
	return nil
}
