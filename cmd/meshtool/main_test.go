package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshcore/internal/config"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, cfg *config.Config, command string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(&out, cfg, command, args)
	return out.String(), err
}

func TestRunInfo(t *testing.T) {
	path := writeFixture(t, triangleFixture)

	out, err := runCommand(t, config.Default(), "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Mesh:       tri")
	assert.Contains(t, out, "Primitives: 2")
	assert.Contains(t, out, "Color0")
	assert.Contains(t, out, "override: TriList, 8 vertices")
}

func TestRunPick(t *testing.T) {
	path := writeFixture(t, triangleFixture)
	cfg := config.Default()
	cfg.Output.Precision = 2

	out, err := runCommand(t, cfg, "pick", path, "0.25", "0.25", "1", "0", "0", "-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Group:      0 (material 1)")
	assert.Contains(t, out, "Distance:   1.00")
	assert.Contains(t, out, "Point:      (0.25, 0.25, 0.00)")

	out, err = runCommand(t, cfg, "pick", path, "5", "5", "1", "0", "0", "-1")
	require.NoError(t, err)
	assert.Equal(t, "No hit\n", out)

	cfg.Pick.MaxDistance = 0.5
	out, err = runCommand(t, cfg, "pick", path, "0.25", "0.25", "1", "0", "0", "-1")
	require.NoError(t, err)
	assert.Equal(t, "No hit\n", out)

	_, err = runCommand(t, cfg, "pick", path, "0", "0", "1")
	assert.Error(t, err)
	_, err = runCommand(t, cfg, "pick", path, "0", "0", "1", "0", "0", "0")
	assert.Error(t, err)
}

func TestRunTransformAndBBox(t *testing.T) {
	path := writeFixture(t, triangleFixture)
	cfg := config.Default()
	cfg.Output.Precision = 1

	out, err := runCommand(t, cfg, "bbox", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Max:        (1.0, 1.0, 0.0)")
	assert.Contains(t, out, "Radius:     0.7")

	out, err = runCommand(t, cfg, "transform", path, "1", "0", "0", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Min:        (2.0, 0.0, 0.0)")
	assert.Contains(t, out, "Max:        (4.0, 2.0, 0.0)")
}

func TestRunLines(t *testing.T) {
	path := writeFixture(t, triangleFixture)
	cfg := config.Default()
	cfg.Lines.ShowVertices = true
	cfg.Output.Precision = 1

	out, err := runCommand(t, cfg, "lines", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Group #1 LineStrip: 2 lines -> 8 vertices, 12 indices, stride 32")
	assert.Contains(t, out, "pos (0.0, 0.0, 0.0)  next (1.0, 0.0, 0.0)  scale -0.5")
}

func TestRunAggregate(t *testing.T) {
	path := writeFixture(t, triangleFixture)

	out, err := runCommand(t, config.Default(), "aggregate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "#0   material 0   (was #1, LineStrip)")
	assert.Contains(t, out, "#1   material 1   (was #0, TriList)")
}

func TestRunErrors(t *testing.T) {
	out, err := runCommand(t, config.Default(), "explode")
	assert.EqualError(t, err, "unknown command: explode")
	assert.Contains(t, out, "Commands:")

	_, err = runCommand(t, config.Default(), "info")
	assert.Error(t, err)

	_, err = runCommand(t, config.Default(), "info", "/nonexistent/mesh.yaml")
	assert.Error(t, err)

	out, err = runCommand(t, config.Default(), "help")
	require.NoError(t, err)
	assert.Contains(t, out, "meshtool - mesh geometry inspection utility")
}
