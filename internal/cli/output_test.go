package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	plain := NewExitError(ExitUsage, "bad flag")
	assert.Equal(t, "bad flag", plain.Error())

	wrapped := WrapExitError(ExitCommandError, "solve failed", errors.New("boom"))
	assert.Equal(t, "solve failed: boom", wrapped.Error())
	assert.Equal(t, "boom", wrapped.Unwrap().Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitUsage, GetExitCode(NewExitError(ExitUsage, "x")))
	assert.Equal(t, ExitCheckFailure, GetExitCode(NewExitError(ExitCheckFailure, "x")))

	// The outermost ExitError wins when codes are nested.
	inner := NewExitError(ExitCheckFailure, "inner")
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "outer", inner)))

	// Non-ExitErrors default to a command error.
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("plain")))
}

func TestOutputFormatter_Success(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}
	require.True(t, f.JSON())
	require.NoError(t, f.Success(map[string]int{"n": 1}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Error)
}

func TestOutputFormatter_Failure(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}
	require.NoError(t, f.Failure("it broke"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "it broke", resp.Error)
}

func TestOutputFormatter_TextMode(t *testing.T) {
	f := &OutputFormatter{Format: "text", Writer: &bytes.Buffer{}}
	assert.False(t, f.JSON())
}
