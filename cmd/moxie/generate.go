package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moxielabs/moxie/internal/moxie"
)

const generateLongDescription = `Generate mock dispatch code for every matched package containing moxie
descriptor functions (default: current package).

` + pathPatternsHelp

var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate mock dispatch code",
		Long:  generateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger(viper.GetBool(verboseFlagName))

			glue, err := glueMode()
			if err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot get working directory: %v", err)
			}

			return moxie.New(wd, args, glue, viper.GetStringSlice(tagsFlagName)).Execute(cmd.Context())
		},
	}
}

func glueMode() (moxie.GlueMode, error) {
	switch glue := moxie.GlueMode(viper.GetString(glueFlagName)); glue {
	case moxie.GlueWrap, moxie.GlueInterpose:
		return glue, nil
	default:
		return "", fmt.Errorf("unknown glue mode %q (expected wrap or interpose)", glue)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
