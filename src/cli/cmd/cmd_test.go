package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/astromate/src/flatconfig"
)

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	chdir(t, dir)
	t.Setenv("NO_COLOR", "1")
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"compose", "print-config", "rules", "doctor", "version"} {
		assert.True(t, names[expected], "missing subcommand %s", expected)
	}
}

func TestComposeCommandFlags(t *testing.T) {
	stdout, _, err := execute(t, "compose", "--profile", "base", "--indent", "4", "--semi")
	require.NoError(t, err)

	var fragments []flatconfig.Fragment
	require.NoError(t, json.Unmarshal([]byte(stdout), &fragments))
	require.Len(t, fragments, 4+3)

	formatter := fragments[len(fragments)-3]
	require.Equal(t, "astro/formatter", formatter.Name)
	settings := formatter.Rules["format/prettier"].([]any)[1].(map[string]any)
	assert.Equal(t, float64(4), settings["tabWidth"])
	assert.Equal(t, true, settings["semi"])
	assert.Equal(t, "astro/rules", fragments[len(fragments)-1].Name)
}

func TestComposeCommandReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yml")
	require.NoError(t, os.WriteFile(path, []byte("config: all\noverrides:\n  custom/rule: error\noutput:\n  format: json\n"), 0o644))

	stdout, _, err := execute(t, "compose", "--config", path)
	require.NoError(t, err)

	var fragments []flatconfig.Fragment
	require.NoError(t, json.Unmarshal([]byte(stdout), &fragments))
	last := fragments[len(fragments)-1]
	assert.Equal(t, flatconfig.Rules{"custom/rule": "error"}, last.Rules)
	assert.Equal(t, "astro/all", fragments[len(fragments)-4].Name)
}

func TestComposeCommandWarnsForA11yWithoutPlugin(t *testing.T) {
	stdout, stderr, err := execute(t, "compose", "--profile", "jsx-a11y-strict")
	require.NoError(t, err)

	assert.Contains(t, stderr, "eslint-plugin-jsx-a11y")
	assert.NotEmpty(t, stdout)
}

func TestComposeCommandUnknownProfile(t *testing.T) {
	_, _, err := execute(t, "compose", "--profile", "nope")
	assert.ErrorContains(t, err, "unknown profile")
}

func TestComposeCommandBadIndent(t *testing.T) {
	_, _, err := execute(t, "compose", "--indent", "wide")
	assert.ErrorContains(t, err, "--indent")
}

func TestPrintConfigCommand(t *testing.T) {
	stdout, _, err := execute(t, "print-config", "src/pages/index.astro", "--enabled-only")
	require.NoError(t, err)

	var eff flatconfig.Effective
	require.NoError(t, json.Unmarshal([]byte(stdout), &eff))
	assert.Equal(t, "src/pages/index.astro", eff.Path)
	assert.Contains(t, eff.Fragments, "astro/formatter")
	assert.Contains(t, eff.Rules, "format/prettier")
	assert.NotContains(t, eff.Rules, "@stylistic/semi")
}

func TestPrintConfigCommandScript(t *testing.T) {
	stdout, _, err := execute(t, "print-config", "src/Card.astro/0_0.ts", "-o", "yaml")
	require.NoError(t, err)

	assert.Contains(t, stdout, "astro/base/typescript")
	assert.NotContains(t, stdout, "format/prettier")
}

func TestRulesCommand(t *testing.T) {
	stdout, _, err := execute(t, "rules", "--profile", "recommended", "-o", "json")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Contains(t, names, "astro/valid-compile")
	assert.IsNonDecreasing(t, names)
}

func TestRulesCommandText(t *testing.T) {
	stdout, _, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rules (all)")
	assert.Contains(t, stdout, "astro/sort-attributes")
}

func TestDoctorCommandFailsWithoutPeers(t *testing.T) {
	stdout, _, err := execute(t, "doctor")
	require.Error(t, err)
	assert.Contains(t, stdout, "── Peers")
	assert.Contains(t, err.Error(), "required peers unsatisfied")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "astromate dev")
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (equivalent to t.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
