package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScenariosCommand(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 48)
	assert.Equal(t, " 0  Quarterly / Low / Passive", lines[0])
	assert.Equal(t, "47  Annual / Extreme / Highly Active", lines[47])
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tokval dev")
}

func TestRun_TextReport(t *testing.T) {
	out, err := execute(t, "--forecast", "220000")
	require.NoError(t, err)
	assert.Contains(t, out, "$158,205.53")
}

func TestRun_JSONReportFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("valuation:\n  forecast: 220000\nengine:\n  parallel: true\n"), 0o600))

	out, err := execute(t, "--config", path, "--format", "json")
	require.NoError(t, err)

	var got struct {
		Results []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Results, 48)
}

func TestRun_MissingForecastFails(t *testing.T) {
	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forecast")
	assert.Empty(t, out)
}

func TestRun_InvalidConfigFails(t *testing.T) {
	_, err := execute(t, "--forecast", "220000", "--workers", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
