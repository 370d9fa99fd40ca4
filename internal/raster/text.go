package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel writes text centred horizontally on (x, y) with the given opacity.
func DrawLabel(img *image.NRGBA, x, y float64, text string, c color.NRGBA, opacity float64) {
	if opacity <= 0 || text == "" {
		return
	}
	face := basicfont.Face7x13
	c.A = clamp255(float64(c.A) * opacity)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	w := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(x)) - w/2,
		Y: fixed.I(int(y)) + face.Metrics().Ascent/2,
	}
	d.DrawString(text)
}
