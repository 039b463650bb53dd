package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fsutils/internal/common"
	"github.com/zoro11031/fsutils/internal/config"
	"github.com/zoro11031/fsutils/internal/match"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fsutils settings",
	Long: `Read and change the settings file that supplies command defaults.

Known keys:
  TEMP_PREFIX      prefix for tempfile (default tempFile)
  TRIM_WHITESPACE  default for lines --trim (default false)
  GLOB_PATTERN     pattern used by find without criteria (default **)
  DIFF_CONTEXT     context lines for patch --unified (default 3)
  ASSUME_YES       answer yes to confirmations (default false)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		key := args[0]

		value, ok := config.Defaults[key]
		if ctx.Config.Exists(key) || !ok {
			if value, err = ctx.Config.Get(key); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]

		if !config.Known(key) {
			ctx.UI.Warningf("%s is not a known setting", key)
		}
		if err := validateSetting(key, value); err != nil {
			return err
		}

		if err := ctx.Config.Set(key, value); err != nil {
			return err
		}
		ctx.UI.Successf("%s=%s saved to %s", key, value, ctx.Config.FilePath())
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		if err := ctx.Config.Delete(args[0]); err != nil {
			return err
		}
		ctx.UI.Successf("Removed %s", args[0])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every effective setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}

		ctx.UI.Header("fsutils settings")

		values := ctx.Config.GetAll()
		for key, value := range config.Defaults {
			if _, set := values[key]; !set {
				values[key] = value
			}
		}

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, values[key])
		}
		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
		return nil
	},
}

func validateSetting(key, value string) error {
	switch key {
	case config.KeyTempPrefix:
		return common.ValidateTempPrefix(value)
	case config.KeyTrimWhitespace, config.KeyAssumeYes:
		return common.ValidateBool(value)
	case config.KeyDiffContext:
		return common.ValidateContextLines(value)
	case config.KeyGlobPattern:
		if err := common.ValidateNotEmpty(value); err != nil {
			return err
		}
		_, err := match.Glob(value)
		return err
	}
	return nil
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}
