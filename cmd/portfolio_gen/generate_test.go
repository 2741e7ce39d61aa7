package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate_SingleChart(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCmd.Flags().Set("chart", "radar"))
	require.NoError(t, generateCmd.Flags().Set("out", dir))

	require.NoError(t, runGenerate(generateCmd, nil))

	_, err := os.Stat(filepath.Join(dir, "radar.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "manifest.json"))
	assert.NoError(t, err)
}

func TestRunGenerate_UnknownChart(t *testing.T) {
	require.NoError(t, generateCmd.Flags().Set("chart", "piechart"))
	require.NoError(t, generateCmd.Flags().Set("out", t.TempDir()))

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "piechart")
}

func TestRunGenerate_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	// output_dir pointing at an existing file must fail validation.
	notADir := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"output_dir": "`+notADir+`"}`), 0o644))

	require.NoError(t, generateCmd.Flags().Set("config", configPath))
	t.Cleanup(func() { generateConfigPath = "" })

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
