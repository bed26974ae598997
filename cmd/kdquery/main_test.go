package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wikipediaYAML = `dimensions: 2
points:
  - coords: [7, 2]
    payload: Eric
  - coords: [5, 4]
    payload: Is
  - coords: [2, 3]
    payload: A
  - coords: [4, 7]
    payload: Really
  - coords: [9, 6]
    payload: Stubborn
  - coords: [8, 1]
    payload: Ferret
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.yaml")
	require.NoError(t, os.WriteFile(path, []byte(wikipediaYAML), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestKNNCommand(t *testing.T) {
	out, _, err := run(t, "--data", writeDataset(t), "knn", "--k", "2", "9,2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Ferret\t"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Eric\t"), lines[1])
}

func TestKNNCommand_JSON(t *testing.T) {
	out, _, err := run(t, "--data", writeDataset(t), "--json", "knn", "--k", "1", "2,3")
	require.NoError(t, err)

	var got []resultJSON
	require.NoError(t, gojson.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Payload)
	assert.Equal(t, []float64{2, 3}, got[0].Point)
	assert.Equal(t, 0.0, got[0].Distance)
}

func TestRadiusCommand_Sorted(t *testing.T) {
	out, _, err := run(t, "--data", writeDataset(t), "--metric", "euclidean", "radius", "--r", "3", "--sort", "6,3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3) // Eric and Is at sqrt(2), Ferret at sqrt(8)
	assert.True(t, strings.HasPrefix(lines[2], "Ferret\t"), lines[2])
}

func TestVerifyCommand(t *testing.T) {
	out, _, err := run(t, "--random", "2000", "--seed", "3", "verify", "--queries", "50", "--k", "4", "--r", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "points=2000 queries=50 knn_mismatches=0 radial_mismatches=0")
}

func TestVerboseLogsBuild(t *testing.T) {
	_, stderr, err := run(t, "--random", "10", "-v", "knn", "1,1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "kdtree: built")
	assert.Contains(t, stderr, "kdquery: dataset loaded")
}

func TestCommandErrors(t *testing.T) {
	path := writeDataset(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no data", []string{"knn", "1,1"}, "one of --data or --random is required"},
		{"both sources", []string{"--data", path, "--random", "5", "knn", "1,1"}, "mutually exclusive"},
		{"bad metric", []string{"--data", path, "--metric", "cosine", "knn", "1,1"}, "unknown metric"},
		{"bad point", []string{"--data", path, "knn", "1,x"}, "invalid coordinate"},
		{"wrong dims", []string{"--data", path, "knn", "1,1,1"}, "dimension mismatch"},
		{"bad k", []string{"--data", path, "knn", "--k", "0", "1,1"}, "invalid argument"},
		{"missing file", []string{"--data", filepath.Join(t.TempDir(), "nope.yaml"), "knn", "1,1"}, "read dataset"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadDataset_InfersDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points:\n  - coords: [1, 2, 3]\n    payload: p\n"), 0o600))

	ds, err := loadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Dimensions)
	assert.Equal(t, "p", ds.Points[0].Payload)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 1.5, -2 ,3")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 3}, p)
}
