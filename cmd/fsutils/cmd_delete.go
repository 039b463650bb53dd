package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/fsutil"
)

var deleteRecursive bool

var deleteCmd = &cobra.Command{
	Use:   "delete DIR",
	Short: "Delete a directory",
	Long: `Delete a directory.

Without --recursive only an empty directory is removed. With --recursive the
directory and everything below it is removed after confirmation; use --yes
to skip the prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteRecursive, "recursive", "r", false, "Delete the directory and all of its contents")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	dir := args[0]

	if deleteRecursive {
		confirm, err := ctx.UI.Confirm(fmt.Sprintf("Delete %s and everything in it?", dir))
		if err != nil {
			return err
		}
		if !confirm {
			ctx.UI.Info("Delete cancelled")
			return nil
		}
	}

	if err := fsutil.DeleteDirectory(dir, deleteRecursive); err != nil {
		return err
	}
	ctx.UI.Successf("Deleted %s", dir)
	return nil
}
