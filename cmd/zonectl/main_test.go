package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocap-zone-configurator/internal/zone"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("ZONECTL_RENDER_SIZE", "32")
	t.Setenv("ZONECTL_RENDER_SUPERSAMPLE", "1")
	t.Setenv("ZONECTL_RENDER_FPS", "10")
	outputDir, workers, format, verbose = "", 0, "", false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zone.tga")
	require.NoError(t, execute(t, "render", "--width", "9", "--mode", "handsOn", "--light", "dark", "--pinned", "-o", out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRenderRejectsUnknownMode(t *testing.T) {
	err := execute(t, "render", "--mode", "flying", "-o", filepath.Join(t.TempDir(), "z.webp"))
	assert.ErrorContains(t, err, "unknown mocap mode")
	renderFlags.mode = ""
}

func TestSequenceCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "sequence", "--from", "setup", "--to", "bodyOnly", "--format", "tga", "-o", dir, "--workers", "2"))

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	var m struct {
		Frames []struct {
			Image string `json:"image"`
		} `json:"frames"`
	}
	require.NoError(t, json.Unmarshal(raw, &m))
	require.NotEmpty(t, m.Frames)
	for _, f := range m.Frames {
		_, err := os.Stat(filepath.Join(dir, f.Image))
		assert.NoError(t, err, f.Image)
	}
}

func TestConstraintsCommand(t *testing.T) {
	require.NoError(t, execute(t, "constraints", "--step", "0.5"))
	assert.Equal(t, zone.LengthMax, zone.MaxLength(zone.DistanceMax))
}

func TestInvalidConfigIsRejected(t *testing.T) {
	t.Setenv("ZONECTL_RENDER_FORMAT", "gif")
	err := execute(t, "constraints")
	assert.ErrorContains(t, err, "render.format")
}
