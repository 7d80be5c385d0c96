package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/astromate/src/compose"
	"github.com/sofmeright/astromate/src/config"
	"github.com/sofmeright/astromate/src/output"
)

var (
	composeProfile string
	composeIndent  string
	composeQuotes  string
	composeSemi    bool
	composeFormat  string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Print the composed lint configuration",
	Long: `Compose the flat lint configuration and print it.

Options come from the config file; flags override individual fields.
Fragments are printed in the order the rule engine applies them: profile
rule sets, formatter, disables, overrides.`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	addStyleFlags(composeCmd)
	rootCmd.AddCommand(composeCmd)
}

// addStyleFlags registers the option overrides shared by compose and
// print-config.
func addStyleFlags(c *cobra.Command) {
	c.Flags().StringVar(&composeProfile, "profile", "", "profile: all, base, recommended, jsx-a11y-recommended, jsx-a11y-strict (default: from config, then recommended)")
	c.Flags().StringVar(&composeIndent, "indent", "", `indent width or "tab" (default: from config, then 2)`)
	c.Flags().StringVar(&composeQuotes, "quotes", "", "quote style: single or double")
	c.Flags().BoolVar(&composeSemi, "semi", false, "require semicolons")
	c.Flags().StringVarP(&composeFormat, "format", "o", "", "output format: json or yaml (default: from config, then json)")
}

// composeOptions merges config file options with flags. Flag > config > default.
func composeOptions(cmd *cobra.Command) (compose.Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return compose.Options{}, err
	}

	if composeProfile != "" {
		opts.Profile = compose.Profile(composeProfile)
	}
	if composeIndent != "" {
		indent, err := config.ParseIndent(composeIndent)
		if err != nil {
			return compose.Options{}, fmt.Errorf("--indent: %w", err)
		}
		opts.Style.Indent = indent
	}
	if composeQuotes != "" {
		opts.Style.Quotes = composeQuotes
	}
	if cmd.Flags().Changed("semi") {
		opts.Style.Semi = compose.Bool(composeSemi)
	}
	return opts, nil
}

func outputFormat() string {
	if composeFormat != "" {
		return composeFormat
	}
	return cfg.Output.Format
}

func runCompose(cmd *cobra.Command, args []string) error {
	opts, err := composeOptions(cmd)
	if err != nil {
		return err
	}

	fragments, err := compose.New().Compose(opts)
	if err != nil {
		return err
	}

	return output.Write(cmd.OutOrStdout(), outputFormat(), fragments)
}
