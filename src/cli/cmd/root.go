package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sofmeright/astromate/src/config"
	"github.com/sofmeright/astromate/src/logging"
	"github.com/sofmeright/astromate/src/output"
	"github.com/sofmeright/astromate/src/registry"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "astromate",
	Short: "Compose Astro lint configurations",
	Long: `astromate builds a flat lint configuration for Astro projects from a few
style options: the chosen profile's rule sets, a formatter invocation, the
stylistic rules that would fight the formatter switched off, and your own
overrides last.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if verbose && level == "" {
			level = "debug"
		}
		logging.Configure(logging.Config{
			Level:   level,
			Output:  cmd.ErrOrStderr(),
			Console: output.UseColor(),
		})

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log := logging.WithComponent("config")
		warnings, err := config.Validate(cfg, registry.All())
		for _, w := range warnings {
			log.Warn().Str("file", cfg.Path).Msg(w)
		}
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if cfg.Path != "" {
			log.Debug().Str("file", cfg.Path).Msg("config loaded")
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .astromate.yml, .astromate.yaml or .astromate.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
