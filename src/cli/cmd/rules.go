package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/astromate/src/output"
	"github.com/sofmeright/astromate/src/registry"
)

var (
	rulesProfile string
	rulesFormat  string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule identifiers a profile configures",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesProfile, "profile", registry.ProfileAll, "profile to list")
	rulesCmd.Flags().StringVarP(&rulesFormat, "format", "o", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	names, err := registry.RuleNames(rulesProfile)
	if err != nil {
		return err
	}

	if rulesFormat == "text" {
		output.RuleList(cmd.OutOrStdout(), rulesProfile, names, output.UseColor())
		return nil
	}
	return output.Write(cmd.OutOrStdout(), rulesFormat, names)
}
