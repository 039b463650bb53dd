package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/cli"
	"github.com/zoro11031/fsutils/internal/ui"
	"github.com/zoro11031/fsutils/pkg/version"
)

var globalOpts cli.Options

var rootCmd = &cobra.Command{
	Use:   "fsutils",
	Short: "Filesystem convenience helpers",
	Long: `A collection of filesystem helpers for scripts and build tooling:

- Delete and copy directory trees
- Create uniquely named temporary files
- Read, normalise and write line-oriented text files
- Compare files ignoring surrounding whitespace and blank lines
- Find files by glob, regex or extension
- Produce line deltas or unified diffs between two files`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "Settings file (default ~/.fsutils.conf)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.NonInteractive, "non-interactive", false, "Never prompt; fail instead of asking")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.AssumeYes, "yes", "y", false, "Answer yes to every confirmation")
	rootCmd.AddCommand(versionCmd)
}

func newContext() (*cli.Context, error) {
	ctx, err := cli.NewContext(globalOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

// exitError carries a process exit code without printing an error message
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if exit, ok := err.(exitError); ok {
			os.Exit(exit.code)
		}
		ui.New().Errorf("%v", err)
		os.Exit(1)
	}
}
