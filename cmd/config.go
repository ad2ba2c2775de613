package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/config"
	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// configFile returns the path of the toml file viper reads and writes.
func configFile() string {
	return filepath.Join(where.Config(), constant.Laradl+".toml")
}

// writeConfig persists the in-memory configuration, creating the file on first use.
func writeConfig() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfig()
	}
	return err
}

// lookupField returns the field named k or fails with a suggestion.
func lookupField(k string) (config.Field, error) {
	field, ok := config.Lookup(k)
	if !ok {
		return field, fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(k),
			style.Fg(color.Yellow)(config.Closest(k)),
		)
	}
	return field, nil
}

// keyArg reads the config key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) (config.Field, error) {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}
	if k == "" {
		return config.Field{}, errors.New("key is required as an argument or --key flag")
	}
	return lookupField(k)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func done(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")

	configGetCmd.Flags().StringP("key", "k", "", "Key to print")

	configSetCmd.Flags().StringP("key", "k", "", "Key to update")
	configSetCmd.Flags().StringSliceP("value", "v", nil, "Value to assign")

	configResetCmd.Flags().StringP("key", "k", "", "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")

	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	for _, c := range []*cobra.Command{configInfoCmd, configGetCmd, configSetCmd, configResetCmd} {
		lo.Must0(c.RegisterFlagCompletionFunc("key", completionConfigKeys))
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the settings",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field {
				field, err := lookupField(k)
				handleErr(err)
				return field
			})
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		pretty := lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		})
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pretty, "\n\n"))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := keyArg(cmd, args)
		handleErr(err)

		fmt.Fprintln(cmd.OutOrStdout(), viper.Get(field.Key))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Change a setting and save it to the config file",
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := keyArg(cmd, args)
		handleErr(err)

		if field.Secret() {
			handleErr(fmt.Errorf("%s must not be stored in plain text, use the login command", field.Key))
		}

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		value, err := field.Parse(raw)
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(writeConfig())

		done("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(writeConfig())
			done("reset all config values")
			return
		}

		field, err := keyArg(cmd, args)
		handleErr(err)

		viper.Set(field.Key, field.Value)
		handleErr(writeConfig())
		done("reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()
		if lo.Must(cmd.Flags().GetBool("force")) && lo.Must(filesystem.API().Exists(path)) {
			handleErr(filesystem.API().Remove(path))
		}

		handleErr(viper.SafeWriteConfig())
		done("wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		done("deleted config")
	},
}
