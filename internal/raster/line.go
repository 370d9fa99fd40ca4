package raster

import (
	"image/color"
	"math"
)

// DrawLine draws a depth-tested, alpha-blended line of the given pixel width
// between two projected points. Lines never write depth, so overlapping
// annotations stay visible through each other.
func DrawLine(fb *FrameBuffer, a, b Vertex, c color.NRGBA, opacity, width float64) {
	if opacity <= 0 {
		return
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	half := int(math.Max(0, (width-1)/2))

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(a.X + dx*t)
		y := int(a.Y + dy*t)
		z := a.Z + (b.Z-a.Z)*t
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				px, py := x+ox, y+oy
				if px < 0 || py < 0 || px >= fb.Width || py >= fb.Height {
					continue
				}
				idx := py*fb.Width + px
				// Small bias so edges lying on a surface are not hidden by it.
				if z < fb.ZBuf[idx]*0.995 {
					continue
				}
				fb.blend(idx, c.R, c.G, c.B, opacity)
			}
		}
	}
}
