package raster

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/metrics"
	"mocap-zone-configurator/internal/scene"
	"mocap-zone-configurator/internal/store"
)

func fullTriangle(z float64) (Vertex, Vertex, Vertex) {
	return Vertex{X: -10, Y: -10, Z: z}, Vertex{X: 50, Y: -10, Z: z}, Vertex{X: -10, Y: 50, Z: z}
}

func pixel(fb *FrameBuffer, x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2], A: fb.Color[i+3]}
}

func TestRasterizeTriangleDepthOrder(t *testing.T) {
	lc := NewLightConfig(scene.LightingFor(store.Bright))
	near := Paint{R: 255, Shade: 1, Opacity: 1}
	far := Paint{B: 255, Shade: 1, Opacity: 1}

	for _, nearFirst := range []bool{true, false} {
		fb := NewFrameBuffer(16, 16)
		a0, b0, c0 := fullTriangle(0.5)
		a1, b1, c1 := fullTriangle(0.2)
		if nearFirst {
			RasterizeTriangle(fb, a0, b0, c0, near, &lc)
			RasterizeTriangle(fb, a1, b1, c1, far, &lc)
		} else {
			RasterizeTriangle(fb, a1, b1, c1, far, &lc)
			RasterizeTriangle(fb, a0, b0, c0, near, &lc)
		}
		p := pixel(fb, 4, 4)
		assert.Greater(t, p.R, p.B, "near triangle must win (nearFirst=%v)", nearFirst)
		assert.Equal(t, 0.5, fb.ZBuf[4*16+4])
	}
}

func TestTransparentTriangleKeepsDepth(t *testing.T) {
	lc := NewLightConfig(scene.LightingFor(store.Bright))
	fb := NewFrameBuffer(8, 8)
	a, b, c := fullTriangle(0.3)
	RasterizeTriangle(fb, a, b, c, Paint{G: 255, Shade: 1, Opacity: 0.5}, &lc)

	assert.True(t, math.IsInf(fb.ZBuf[0], -1))
	assert.NotZero(t, pixel(fb, 1, 1).G)
}

func TestRasterizeTriangleSkipsDegenerate(t *testing.T) {
	lc := NewLightConfig(scene.LightingFor(store.Bright))
	fb := NewFrameBuffer(8, 8)
	v := Vertex{X: 2, Y: 2, Z: 1}
	RasterizeTriangle(fb, v, v, v, Paint{R: 255, Shade: 1, Opacity: 1}, &lc)
	for _, z := range fb.ZBuf {
		assert.True(t, math.IsInf(z, -1))
	}
}

func TestDrawLineDepthTest(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = 1
	}
	c := color.NRGBA{R: 255, A: 255}

	DrawLine(fb, Vertex{X: 0, Y: 4, Z: 0.1}, Vertex{X: 15, Y: 4, Z: 0.1}, c, 1, 1)
	assert.Zero(t, pixel(fb, 8, 4).R, "line behind geometry is hidden")

	DrawLine(fb, Vertex{X: 0, Y: 8, Z: 2}, Vertex{X: 15, Y: 8, Z: 2}, c, 1, 1)
	assert.Equal(t, uint8(255), pixel(fb, 8, 8).R)
	assert.Equal(t, 1.0, fb.ZBuf[8*16+8], "lines never write depth")
}

func TestBoxHasOutwardNormals(t *testing.T) {
	faces := Centered(scene.Subject(2), scene.MannequinSize)
	require.Len(t, faces, 6)
	center := scene.Subject(2).Add(mathutil.Vec3{0, scene.MannequinSize[1] / 2, 0})
	for _, f := range faces {
		mid := f.Verts[0].Add(f.Verts[2]).Scale(0.5)
		assert.Greater(t, mid.Sub(center).Dot(f.Normal), 0.0)
	}
}

func TestAimPointsForwardAtTarget(t *testing.T) {
	from := mathutil.Vec3{0, 2, 0}
	to := mathutil.Vec3{1, 0.5, -3}
	got := Aim(from, to).MulVec3(mathutil.Vec3{0, 0, -1})
	assert.True(t, got.ApproxEqual(to.Sub(from).Normalize(), 1e-9), "got %v", got)

	box := Box(mathutil.Vec3{-1, -1, -1}, mathutil.Vec3{1, 1, 1})
	faces := Transform(box, Aim(from, to), mathutil.Vec3{})
	for _, f := range faces {
		assert.InDelta(t, 1.0, f.Normal.Len(), 1e-9)
		mid := f.Verts[0].Add(f.Verts[2]).Scale(0.5)
		assert.Greater(t, mid.Dot(f.Normal), 0.0)
	}
	assert.Equal(t, box[0].UV, faces[0].UV)
}

func hostFrame(t *testing.T, pinned bool) host.Frame {
	t.Helper()
	h := host.New(store.New(store.Default))
	t.Cleanup(h.Close)
	h.SetPinned(pinned)
	return h.Tick(0, time.Unix(0, 0))
}

type renderCounter struct {
	metrics.NoopRecorder
	frames int
}

func (r *renderCounter) ObserveFrameRender(time.Duration) { r.frames++ }

func TestRenderFrame(t *testing.T) {
	rec := &renderCounter{}
	opts := Options{Width: 96, Height: 64, Supersample: 2, Recorder: rec}

	plain := RenderFrame(hostFrame(t, false), opts)
	require.Equal(t, image.Rect(0, 0, 96, 64), plain.Bounds())
	assert.Equal(t, 1, rec.frames)

	bg := scene.LightingFor(store.Bright).Background
	sky := plain.NRGBAAt(0, 0)
	assert.InDelta(t, int(bg.R), int(sky.R), 1, "sky above the horizon shows the background")
	assert.InDelta(t, int(bg.B), int(sky.B), 1)

	pinned := RenderFrame(hostFrame(t, true), opts)
	assert.NotEqual(t, plain.Pix, pinned.Pix, "pinned frames draw annotations")
}

func TestRenderFrameWithFloorTexture(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i], tex.Pix[i+3] = 200, 255
	}
	f := hostFrame(t, false)
	plain := RenderFrame(f, Options{Width: 48, Height: 32})
	textured := RenderFrame(f, Options{Width: 48, Height: 32, FloorTexture: tex})
	assert.NotEqual(t, plain.Pix, textured.Pix)
}

func TestSampleTextureWraps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tex.SetNRGBA(0, 0, color.NRGBA{R: 100, A: 255})
	tex.SetNRGBA(1, 0, color.NRGBA{R: 200, A: 255})
	tex.SetNRGBA(0, 1, color.NRGBA{R: 100, A: 255})
	tex.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	r, _, _ := SampleTexture(tex, 0, 0)
	assert.Equal(t, uint8(100), r)
	r, _, _ = SampleTexture(tex, 0.5, 0.25)
	assert.Equal(t, uint8(150), r)
	neg, _, _ := SampleTexture(tex, -0.5, 0.25)
	assert.Equal(t, r, neg, "negative coordinates wrap")
}
