package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamsPathFromFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"--params", "run.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "run.hcl", cfg.ParamsPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseParamsPathFromPositionalArg(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"run.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "run.hcl", cfg.ParamsPath)
}

func TestParseShorthandFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-p", "run.hcl", "--log-level", "DEBUG"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "run.hcl", cfg.ParamsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseNoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseDescribeNeedsNoPath(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"--describe"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.True(t, cfg.Describe)
	assert.Empty(t, cfg.ParamsPath)
}

func TestParseRejectsInvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"--log-format", "xml", "run.hcl"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
