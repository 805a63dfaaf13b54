package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const pathPatternsHelp = `Supports Go-style package patterns:
  - ./...          recursively scan current directory
  - ./mocks/...    recursively scan a mocks directory
  - ./a ./b        scan multiple directories`

const rootLongDescription = `Moxie generates call-time mocks for package-level functions. Descriptor
functions in moxie-tagged files declare a target's return kind and ordered,
kind-tagged parameters; moxie expands each descriptor into a dispatch entry
point, a pass-through, an interception state, and default expectation hooks.

` + pathPatternsHelp

// glueFlag selects the symbol-substitution glue emitted with the mocks.
var glueFlag string

// tagsFlag adds build tags to the package load, on top of the moxie tag.
var tagsFlag []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moxie",
		Short: "Mock code generator for package-level functions",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func init() {
	configureRootFlags(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&glueFlag, glueFlagName,
		viper.GetString(glueFlagName),
		"symbol-substitution glue to emit (wrap|interpose)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(glueFlagName), glueFlagName)

	cmd.PersistentFlags().StringSliceVar(
		&tagsFlag, tagsFlagName,
		viper.GetStringSlice(tagsFlagName),
		"extra build tags for package loading",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(tagsFlagName), tagsFlagName)

	cmd.PersistentFlags().BoolVarP(
		&verboseFlag, verboseFlagName, "v",
		viper.GetBool(verboseFlagName),
		"log at debug level",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)

	cmd.PersistentFlags().String(
		logFileFlagName,
		viper.GetString(logFilenameKey),
		"log file path",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command. Called once from main.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
