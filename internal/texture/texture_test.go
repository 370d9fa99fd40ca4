package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, solid(c)))
}

func writeTGA(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tga.Encode(f, solid(c)))
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "floor.png")
	writePNG(t, p, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	img, err := LoadTexture(p)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(1, 1))

	_, err = LoadTexture(filepath.Join(dir, "floor.bmp"))
	assert.ErrorContains(t, err, "unknown extension")

	_, err = LoadTexture(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTextureDecodesByExtension(t *testing.T) {
	dir := t.TempDir()
	want := color.NRGBA{R: 200, G: 120, B: 40, A: 255}
	write := map[string]func(*os.File) error{
		"floor.png":  func(f *os.File) error { return png.Encode(f, solid(want)) },
		"floor.jpg":  func(f *os.File) error { return jpeg.Encode(f, solid(want), &jpeg.Options{Quality: 100}) },
		"floor.JPEG": func(f *os.File) error { return jpeg.Encode(f, solid(want), nil) },
		"floor.tga":  func(f *os.File) error { return tga.Encode(f, solid(want)) },
	}
	for name, enc := range write {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			f, err := os.Create(p)
			require.NoError(t, err)
			require.NoError(t, enc(f))
			require.NoError(t, f.Close())

			img, err := LoadTexture(p)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
			got := img.NRGBAAt(2, 2)
			assert.InDelta(t, want.R, got.R, 8)
			assert.InDelta(t, want.G, got.G, 8)
			assert.InDelta(t, want.B, got.B, 8)
			assert.Equal(t, uint8(255), got.A)
		})
	}
}

func TestLoadTextureRejectsMismatchedContent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "floor.jpg")
	writePNG(t, p, color.NRGBA{A: 255})
	_, err := LoadTexture(p)
	assert.ErrorContains(t, err, "texture: decode")
}

func TestIndexPrefersTGA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writePNG(t, filepath.Join(dir, "Concrete.png"), color.NRGBA{A: 255})
	writeTGA(t, filepath.Join(dir, "sub", "concrete.tga"), color.NRGBA{R: 200, A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	idx, err := BuildIndex(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())

	p, ok := idx.ResolvePath("CONCRETE.jpg")
	require.True(t, ok)
	assert.Equal(t, ".tga", filepath.Ext(p))

	_, ok = idx.ResolvePath("wood")
	assert.False(t, ok)
}

func TestBuildIndexMissingDir(t *testing.T) {
	_, err := BuildIndex(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)

	idx, err := BuildIndex("")
	require.NoError(t, err)
	assert.Zero(t, idx.Len())
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writeTGA(t, filepath.Join(dir, "grid.tga"), color.NRGBA{G: 180, A: 255})
	direct := filepath.Join(dir, "direct.png")
	writePNG(t, direct, color.NRGBA{B: 90, A: 255})

	idx, err := BuildIndex(dir)
	require.NoError(t, err)
	c := NewCache(idx, zap.NewNop())

	var wg sync.WaitGroup
	results := make([]*image.NRGBA, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Resolve("grid")
		}(i)
	}
	wg.Wait()
	require.NotNil(t, results[0])
	assert.Equal(t, uint8(180), results[0].NRGBAAt(0, 0).G)
	for _, r := range results[1:] {
		assert.Same(t, results[0], r)
	}

	assert.NotNil(t, NewCache(nil, nil).Resolve(direct), "paths resolve without an index")
	assert.Nil(t, c.Resolve(""))
	assert.Nil(t, c.Resolve(filepath.Join(dir, "absent.png")))
}
