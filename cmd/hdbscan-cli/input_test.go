package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPointsCSVParsesRectangularInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n1,1\n2,2\n"), 0o644))

	data, rows, cols, err := readPointsCSV(path)
	require.NoError(t, err)
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, []float64{0, 0, 1, 1, 2, 2}, data)
}

func TestReadPointsCSVRejectsRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n1\n"), 0o644))

	_, _, _, err := readPointsCSV(path)
	require.Error(t, err)
}

func TestReadPointsCSVRejectsNonNumericField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,x\n"), 0o644))

	_, _, _, err := readPointsCSV(path)
	require.Error(t, err)
}
