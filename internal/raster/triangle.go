package raster

import (
	"image"
	"math"
)

// Vertex is a projected vertex: screen position, inverse depth and UV.
type Vertex struct {
	X, Y, Z float64
	U, V    float64
}

// Paint describes how a triangle is filled. A nil Tex fills with R, G, B.
// Opacity below 1 blends over what is already drawn without writing depth.
type Paint struct {
	Tex     *image.NRGBA
	R, G, B uint8
	Shade   float64
	Opacity float64
}

// RasterizeTriangle fills a projected triangle with z-buffering, sRGB color
// space, flat lighting and ACES tone mapping.
//
// This is the HOT PATH: no allocation inside the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, a, b, c Vertex, p Paint, lc *LightConfig) {
	if p.Opacity <= 0 {
		return
	}
	x0, y0, z0 := a.X, a.Y, a.Z
	x1, y1, z1 := b.X, b.Y, b.Z
	x2, y2, z2 := c.X, c.Y, c.Z

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	opaque := p.Opacity >= 1
	hasTex := p.Tex != nil

	// Untextured faces shade once per triangle.
	var sr, sg, sb uint8
	if !hasTex {
		sr, sg, sb = lc.Shade(p.R, p.G, p.B, p.Shade)
	}

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			r, g, bl := sr, sg, sb
			if hasTex {
				u := w0*a.U + w1*b.U + w2*c.U
				v := w0*a.V + w1*b.V + w2*c.V
				tr, tg, tb := SampleTexture(p.Tex, u, v)
				r, g, bl = lc.Shade(tr, tg, tb, p.Shade)
			}

			if opaque {
				fb.ZBuf[zIdx] = z
			}
			fb.blend(zIdx, r, g, bl, p.Opacity)
		}
	}
}
