package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModelJSON = `{
  "nodes": [
    {"id": 1, "x": 0, "y": 0, "z": 0},
    {"id": 2, "x": 2.5, "y": 0, "z": 0},
    {"id": 3, "x": 5.0, "y": 0, "z": 0}
  ],
  "elements": [
    {"id": 10, "i": 1, "j": 2},
    {"id": 11, "i": 2, "j": 3}
  ],
  "forces": [
    {"element": 10, "Vy_i": 100, "Vy_j": 100, "Mz_i": 0, "Mz_j": 250},
    {"element": 11, "Vy_i": -50, "Vy_j": -50, "Mz_i": 250, "Mz_j": 125}
  ]
}`

func writeTestJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	m, err := LoadJSON(writeTestJSON(t, testModelJSON))
	require.NoError(t, err)

	assert.Len(t, m.Nodes, 3)
	assert.Len(t, m.Elements, 2)
	assert.Len(t, m.Forces, 2)

	assert.Equal(t, Point3{X: 2.5}, m.Nodes[2])
	assert.Equal(t, Connectivity{I: 2, J: 3}, m.Elements[11])

	ep, err := m.Forces.Lookup(10, MomentMz)
	require.NoError(t, err)
	assert.Equal(t, Endpoints{I: 0, J: 250}, ep)
}

func TestLoadJSONInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed JSON", content: `{"nodes": [`},
		{name: "dangling element", content: `{"nodes": [{"id": 1}], "elements": [{"id": 5, "i": 1, "j": 2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(writeTestJSON(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileDispatch(t *testing.T) {
	path := writeTestJSON(t, testModelJSON)
	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Elements, 2)

	_, err = LoadFile("model.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model format")
}
