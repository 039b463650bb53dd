package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var separatorPattern string

var separatorCmd = &cobra.Command{
	Use:   "separator PATH REPLACEMENT",
	Short: "Replace path separators in a string",
	Long: `Replace every path separator in PATH with REPLACEMENT and print the result.

--pattern takes a regular expression to replace instead of the host
separator; REPLACEMENT may then refer to groups as $1. The filesystem is not
accessed.`,
	Args: cobra.ExactArgs(2),
	RunE: runSeparator,
}

func init() {
	separatorCmd.Flags().StringVar(&separatorPattern, "pattern", "", "Regular expression to replace (default: host path separator)")
	rootCmd.AddCommand(separatorCmd)
}

func runSeparator(cmd *cobra.Command, args []string) error {
	path, replacement := args[0], args[1]

	if separatorPattern == "" {
		fmt.Fprintln(cmd.OutOrStdout(), fsutil.ReplacePlatformSeparator(path, replacement))
		return nil
	}

	result, err := fsutil.ReplaceFileSeparator(path, separatorPattern, replacement)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
