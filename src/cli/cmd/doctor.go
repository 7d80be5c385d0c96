package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/astromate/src/output"
	"github.com/sofmeright/astromate/src/pkgcheck"
)

var doctorDir string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the packages the configuration references are installed",
	Long: `Resolve every peer package from node_modules, walking up from --dir to
the enclosing git worktree root, and check installed versions against the
supported ranges. Missing optional peers are reported but do not fail.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", "", "project directory (default: working directory)")

	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	results, err := pkgcheck.Doctor(cmd.Context(), pkgcheck.New(doctorDir), pkgcheck.Peers)
	if err != nil {
		return err
	}

	output.DoctorReport(cmd.OutOrStdout(), results, output.UseColor())

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("doctor: %d required peers unsatisfied", failed)
	}
	return nil
}
