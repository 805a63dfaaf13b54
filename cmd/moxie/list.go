package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moxielabs/moxie/internal/moxie"
)

const listLongDescription = `List the mock descriptors of the matched packages without generating code.

` + pathPatternsHelp

var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [patterns...]",
		Short: "List mock descriptors",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger(viper.GetBool(verboseFlagName))

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot get working directory: %v", err)
			}

			summaries, err := moxie.New(wd, args, moxie.GlueWrap, viper.GetStringSlice(tagsFlagName)).List(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Mock", "Target", "Params", "Return", "Destination"})
			table.SetBorder(false)
			table.SetCenterSeparator("")

			for _, s := range summaries {
				table.Append([]string{s.Name, s.Target, strconv.Itoa(s.Arity), s.Return, s.Destination})
			}

			table.SetFooter([]string{fmt.Sprintf("Total %d", len(summaries)), "", "", "", ""})
			table.Render()

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
