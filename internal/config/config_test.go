package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/zone"
)

func TestMain(m *testing.M) {
	DotEnvFile = ""
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const sample = `
render:
  size: 256
  format: tga
  floor_texture: concrete
workers: 2
log:
  level: warn
initial:
  width: 9
  distance: 2
  mocap_mode: handsOn
  light_condition: dark
`

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "zonectl.yaml", sample)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Render.Size)
	assert.Equal(t, "tga", cfg.Render.Format)
	assert.Equal(t, "concrete", cfg.Render.FloorTexture)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	require.NotNil(t, cfg.Initial.Width)
	assert.Equal(t, 9.0, *cfg.Initial.Width)
	assert.Nil(t, cfg.Initial.Height)
	require.NotNil(t, cfg.Initial.Mode)
	assert.Equal(t, store.HandsOn, *cfg.Initial.Mode)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.yaml", "initial:\n  mocap_mode: flying\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "config: parse")

	cfg, err := LoadOptional(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Workers)
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "zonectl.yaml", sample)
	t.Setenv("ZONECTL_RENDER_SIZE", "1024")
	t.Setenv("ZONECTL_LOG_LEVEL", "debug")
	t.Setenv("ZONECTL_METRICS_ADDR", ":9100")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Render.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "tga", cfg.Render.Format, "unset variables keep file values")
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("ZONECTL_WORKERS", "many")
	_, err := Load("")
	assert.ErrorContains(t, err, "config: parse env")
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	DotEnvFile = writeFile(t, dir, ".env", "ZONECTL_RENDER_FPS=12\n")
	t.Cleanup(func() {
		DotEnvFile = ""
		os.Unsetenv("ZONECTL_RENDER_FPS")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Render.FPS)
}

func TestResolve(t *testing.T) {
	var cfg Config
	cfg.Render.Format = "tga"
	cfg.Resolve(Flags{Workers: 3, Verbose: true})

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, DefaultSize, cfg.Render.Size)
	assert.Equal(t, DefaultSupersample, cfg.Render.Supersample)
	assert.Equal(t, DefaultFPS, cfg.Render.FPS)
	assert.Equal(t, "tga", cfg.Render.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())

	var auto Config
	auto.Resolve(Flags{Format: "webp", OutputDir: "out"})
	assert.Equal(t, runtime.NumCPU(), auto.Workers)
	assert.Equal(t, "out", auto.OutputDir)
	assert.Equal(t, DefaultLogLevel, auto.Log.Level)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Config{
		Render:  RenderConfig{Size: 8, Supersample: 9, FPS: 30, Format: "gif"},
		Workers: 1,
		Log:     LogConfig{Level: "loud"},
	}
	err := cfg.Validate()
	require.Error(t, err)

	var fields []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *ValidationError
		require.True(t, errors.As(e, &ve))
		fields = append(fields, ve.Field)
	}
	assert.Equal(t, []string{"render.size", "render.supersample", "render.format", "log.level"}, fields)
}

func TestInitialApply(t *testing.T) {
	p := writeFile(t, t.TempDir(), "zonectl.yaml", sample)
	cfg, err := Load(p)
	require.NoError(t, err)

	st := store.New(store.Default)
	cfg.Initial.Apply(st)
	got := st.Snapshot()

	assert.Equal(t, zone.WidthMax, got.Zone.Width, "initial values are clamped")
	assert.Equal(t, 2.0, got.Zone.Distance)
	assert.Equal(t, store.Dark, got.Light)
	assert.Equal(t, store.Setup, got.Mode, "dark applied last forces setup")
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "zonectl.yaml", "workers: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan Config, 4)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := Watch(ctx, p, zap.NewNop(), func(c Config, err error) {
			if err == nil {
				got <- c
			}
		})
		assert.NoError(t, err)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "zonectl.yaml", "workers: 7\n")
	writeFile(t, dir, "other.yaml", "workers: 99\n")

	select {
	case c := <-got:
		assert.Equal(t, 7, c.Workers)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "z.yaml"), nil, func(Config, error) {})
	assert.ErrorContains(t, err, "config: watch")
}
