package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sofmeright/astromate/src/compose"
	"github.com/sofmeright/astromate/src/flatconfig"
	"github.com/sofmeright/astromate/src/output"
)

var printEnabledOnly bool

var printConfigCmd = &cobra.Command{
	Use:   "print-config <file>",
	Short: "Print the configuration that applies to a file",
	Long: `Compose the configuration, then fold every fragment whose file globs
match the given path into the effective settings for that file.

The path is matched as given, relative to the project root.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrintConfig,
}

func init() {
	addStyleFlags(printConfigCmd)
	printConfigCmd.Flags().BoolVar(&printEnabledOnly, "enabled-only", false, "omit rules that are turned off")

	rootCmd.AddCommand(printConfigCmd)
}

func runPrintConfig(cmd *cobra.Command, args []string) error {
	opts, err := composeOptions(cmd)
	if err != nil {
		return err
	}

	fragments, err := compose.New().Compose(opts)
	if err != nil {
		return err
	}

	eff := flatconfig.Resolve(fragments, filepath.ToSlash(args[0]))
	if printEnabledOnly {
		eff.Rules = eff.Enabled()
	}

	return output.Write(cmd.OutOrStdout(), outputFormat(), eff)
}
