package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/astromate/src/flatconfig"
	"github.com/sofmeright/astromate/src/pkgcheck"
)

var sample = []flatconfig.Fragment{
	{Name: "astro/rules", Files: []string{"**/*.astro"}, Rules: flatconfig.Rules{"custom/rule": "error"}},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "astro/rules", decoded[0]["name"])
	assert.Equal(t, map[string]any{"custom/rule": "error"}, decoded[0]["rules"])
	assert.NotContains(t, decoded[0], "plugins")
	assert.Contains(t, buf.String(), "**/*.astro", "globs must not be HTML-escaped")
}

func TestWriteJSONKeepsEmptyRules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, []flatconfig.Fragment{
		{Name: "astro/rules", Files: []string{"**/*.astro"}, Rules: flatconfig.Rules{}},
		{Name: "astro/base/plugins"},
	}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, map[string]any{}, decoded[0]["rules"])
	assert.Contains(t, decoded[1], "rules")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sample))

	var decoded []flatconfig.Fragment
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", sample))
}

func TestDoctorReport(t *testing.T) {
	results := []pkgcheck.Result{
		{Peer: pkgcheck.Peer{Name: "eslint", Reason: "rule engine"}, Installed: "9.0.0", Status: pkgcheck.StatusOK},
		{Peer: pkgcheck.Peer{Name: "prettier"}, Status: pkgcheck.StatusMissing, Detail: "not installed"},
		{Peer: pkgcheck.Peer{Name: "eslint-plugin-jsx-a11y", Optional: true}, Status: pkgcheck.StatusMissing, Detail: "not installed"},
	}

	var buf bytes.Buffer
	DoctorReport(&buf, results, false)
	out := buf.String()

	assert.Contains(t, out, "── Peers ")
	assert.Contains(t, out, "✓ eslint")
	assert.Contains(t, out, "✗ prettier")
	assert.Contains(t, out, "⊘ eslint-plugin-jsx-a11y")
	assert.Contains(t, out, "(optional)")
	assert.Contains(t, out, "3 peers checked, 1 required peers unsatisfied")
	assert.NotContains(t, out, "\033[")
}

func TestRuleList(t *testing.T) {
	var buf bytes.Buffer
	RuleList(&buf, "recommended", []string{"astro/a", "astro/b"}, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, lines[0], "Rules (recommended)")
	assert.Contains(t, buf.String(), "│ astro/a")
	assert.Contains(t, buf.String(), "│ 2 rules")
}
