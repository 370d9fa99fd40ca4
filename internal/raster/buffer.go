package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // inverse depth per pixel, larger is closer; initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Fill paints every pixel with c.
func (fb *FrameBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// blend mixes an encoded color into pixel i with the given opacity.
func (fb *FrameBuffer) blend(i int, r, g, b uint8, opacity float64) {
	p := i * 4
	if opacity >= 1 {
		fb.Color[p], fb.Color[p+1], fb.Color[p+2], fb.Color[p+3] = r, g, b, 255
		return
	}
	inv := 1 - opacity
	fb.Color[p] = clamp255(float64(fb.Color[p])*inv + float64(r)*opacity)
	fb.Color[p+1] = clamp255(float64(fb.Color[p+1])*inv + float64(g)*opacity)
	fb.Color[p+2] = clamp255(float64(fb.Color[p+2])*inv + float64(b)*opacity)
	fb.Color[p+3] = 255
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
