package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "dev\n", out.String())
}

func TestOnceFailsWithoutConfiguration(t *testing.T) {
	t.Setenv("SONARR_API_URL", "")
	t.Setenv("SONARR_API_KEY", "")
	t.Setenv("QB_API_URL", "")

	rootCmd.SetArgs([]string{"once", "--config", "does-not-exist.yaml"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
