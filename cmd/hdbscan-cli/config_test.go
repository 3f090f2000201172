package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRunConfigReturnsDefaultsForEmptyPath(t *testing.T) {
	cfg, err := loadRunConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultRunConfig(), cfg)
}

func TestLoadRunConfigOverridesDefaultsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_points: 8\ninput: points.csv\n"), 0o644))

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.MinPoints)
	require.Equal(t, "points.csv", cfg.Input)
	require.True(t, cfg.SelfEdges)
}

func TestLoadRunConfigRejectsMissingFile(t *testing.T) {
	_, err := loadRunConfig("/nonexistent/run.yaml")
	require.Error(t, err)
}
