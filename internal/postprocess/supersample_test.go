package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsampleKeepsUniformColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	c := color.NRGBA{R: 0xDC, G: 0xFF, B: 0x00, A: 0xFF}
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			src.SetNRGBA(x, y, c)
		}
	}

	out := Downsample(src, 32, 16)
	require.Equal(t, image.Rect(0, 0, 32, 16), out.Bounds())
	got := out.NRGBAAt(10, 8)
	assert.InDelta(t, int(c.R), int(got.R), 1)
	assert.InDelta(t, int(c.G), int(got.G), 1)
	assert.Equal(t, uint8(0xFF), got.A)
}

func TestDownsampleNoopWhenSmaller(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	assert.Same(t, src, Downsample(src, 32, 32))
}
