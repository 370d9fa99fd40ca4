package raster

import (
	"image"
	"math"
)

// SampleTexture bilinearly filters tex at (u, v), wrapping both coordinates
// so a texture tiles once per unit. Reads tex.Pix directly; the floor is
// opaque, so alpha is ignored.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0
	}

	fx := (u - math.Floor(u)) * float64(w-1)
	fy := (v - math.Floor(v)) * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%w, (y0+1)%h
	dx, dy := fx-float64(x0), fy-float64(y0)

	i00 := y0*tex.Stride + x0*4
	i10 := y0*tex.Stride + x1*4
	i01 := y1*tex.Stride + x0*4
	i11 := y1*tex.Stride + x1*4
	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [3]uint8
	for c := 0; c < 3; c++ {
		p := tex.Pix
		out[c] = clamp255(float64(p[i00+c])*w00 + float64(p[i10+c])*w10 + float64(p[i01+c])*w01 + float64(p[i11+c])*w11)
	}
	return out[0], out[1], out[2]
}
