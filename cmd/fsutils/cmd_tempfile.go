package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/common"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var tempPrefix string

var tempfileCmd = &cobra.Command{
	Use:   "tempfile",
	Short: "Create an empty temporary file and print its path",
	Long: `Create a new, empty, uniquely named file in the system temporary
directory and print its path. The prefix defaults to TEMP_PREFIX from the
settings file, or "tempFile".`,
	Args: cobra.NoArgs,
	RunE: runTempfile,
}

func init() {
	tempfileCmd.Flags().StringVarP(&tempPrefix, "prefix", "p", "", "File name prefix")
	rootCmd.AddCommand(tempfileCmd)
}

func runTempfile(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	prefix := ctx.TempPrefix(tempPrefix)
	if err := common.ValidateTempPrefix(prefix); err != nil {
		return err
	}

	path, err := fsutil.CreateTemporaryFile(prefix)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
