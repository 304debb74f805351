package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceText(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := executeRoot(t, "trace", "solve-01", "--db", dbPath)
	require.NoError(t, err)

	assert.Contains(t, out, "solve solve-01 (kinematics)")
	assert.Contains(t, out, "pass 1: v = u + a*t => v = 50")
	assert.Contains(t, out, "pass 1: s = (u + v)/2*t => s = 250")
}

func TestTraceFailedSolve(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := executeRoot(t, "trace", "solve-03", "--db", dbPath)
	require.NoError(t, err)

	assert.Contains(t, out, "solve solve-03 (light)")
	assert.Contains(t, out, "error (physics_impossible): total internal reflection")
}

func TestTraceJSON(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := executeRoot(t, "--format", "json", "trace", "solve-01", "--db", dbPath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "solve-01", data["solve_id"])
	assert.Equal(t, "kinematics", data["domain"])

	firings, ok := data["firings"].([]any)
	require.True(t, ok)
	assert.Len(t, firings, 2)
}

func TestTraceUnknownID(t *testing.T) {
	dbPath := seedHistory(t)

	_, err := executeRoot(t, "trace", "solve-99", "--db", dbPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no recorded solve with id "solve-99"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTraceMissingDatabaseFlag(t *testing.T) {
	_, err := executeRoot(t, "trace", "solve-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
