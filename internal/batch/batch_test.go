package batch

import (
	"context"
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/raster"
	"mocap-zone-configurator/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func transitionFrames(t *testing.T) []host.Frame {
	t.Helper()
	st := store.New(store.Default)
	h := host.New(st)
	t.Cleanup(h.Close)
	st.SetMocapMode(store.BodyOnly)
	return h.Record(time.Second/10, time.Unix(0, 0), 60)
}

func testConfig(dir string, f Format) Config {
	return Config{
		OutputDir:        dir,
		Format:           f,
		Render:           raster.Options{Width: 32, Height: 24},
		Workers:          3,
		ProgressInterval: time.Millisecond,
		Logger:           zap.NewNop(),
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"webp": WebP, ".TGA": TGA, "WebP": WebP} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestRunWritesEveryFrame(t *testing.T) {
	for _, f := range []Format{WebP, TGA} {
		t.Run(string(f), func(t *testing.T) {
			dir := t.TempDir()
			frames := transitionFrames(t)
			cfg := testConfig(dir, f)

			results, err := Run(context.Background(), cfg, frames)
			require.NoError(t, err)
			require.Len(t, results, len(frames))
			for i, r := range results {
				assert.True(t, r.Success, r.Error)
				assert.Equal(t, i, r.Index)
				info, err := os.Stat(filepath.Join(dir, r.Image))
				require.NoError(t, err)
				assert.NotZero(t, info.Size())
			}
		})
	}
}

func TestRunReportsWriteFailures(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// OutputDir below a regular file cannot be created.
	results, err := Run(context.Background(), testConfig(filepath.Join(blocker, "out"), WebP), transitionFrames(t)[:2])
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, testConfig(t.TempDir(), WebP), transitionFrames(t))
	require.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.False(t, r.Success)
	}
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	frames := transitionFrames(t)
	cfg := testConfig(dir, TGA)
	results, err := Run(context.Background(), cfg, frames)
	require.NoError(t, err)

	m := NewManifest(cfg, 10, frames, results)
	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got struct {
		RunID  string `json:"run_id"`
		Format string `json:"format"`
		Final  struct {
			Mode string `json:"mocap_mode"`
		} `json:"final"`
		Frames []struct {
			Image     string `json:"image"`
			Animating bool   `json:"animating"`
		} `json:"frames"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got.RunID, 36)
	assert.Equal(t, "tga", got.Format)
	assert.Equal(t, "bodyOnly", got.Final.Mode)
	require.Len(t, got.Frames, len(frames))
	assert.Equal(t, "frame_0000.tga", got.Frames[0].Image)
	assert.True(t, got.Frames[0].Animating)
	assert.False(t, got.Frames[len(got.Frames)-1].Animating)
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	err := Encode(nil, image.NewNRGBA(image.Rect(0, 0, 1, 1)), Format("bmp"))
	assert.Error(t, err)
}
