package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/noether/physics"
)

func TestDomainsText(t *testing.T) {
	out, err := executeRoot(t, "domains")
	require.NoError(t, err)

	assert.Contains(t, out, "kinematics")
	assert.Contains(t, out, "gravitation")
	assert.Contains(t, out, "charged_particle")
}

func TestDomainsJSON(t *testing.T) {
	out, err := executeRoot(t, "--format", "json", "domains")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, rows, len(physics.Domains()))

	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, first["name"])
	assert.NotEmpty(t, first["symbols"])
	assert.Greater(t, first["min_knowns"], 0.0)
}

func TestDomainsRejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "domains", "extra")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, GetExitCode(err))
}

func TestRulesText(t *testing.T) {
	out, err := executeRoot(t, "rules", "kinematics")
	require.NoError(t, err)

	assert.Contains(t, out, " 1. v = u + a*t")
	assert.Contains(t, out, "[guarded]")
}

func TestRulesJSON(t *testing.T) {
	out, err := executeRoot(t, "--format", "json", "rules", "circuits")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	require.NotEmpty(t, rows)

	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, first["output"])
	assert.NotEmpty(t, first["equation"])
}

func TestRulesUnknownDomain(t *testing.T) {
	_, err := executeRoot(t, "rules", "alchemy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown domain")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
