package raster

import (
	"math"

	"mocap-zone-configurator/internal/mathutil"
)

// Face is a planar quad in world space with its outward normal and UVs.
type Face struct {
	Verts  [4]mathutil.Vec3
	UV     [4][2]float64
	Normal mathutil.Vec3
}

// Quad builds a face from four corners in winding order. UVs are taken from
// the world X/Z coordinates so tiled floors line up across faces.
func Quad(a, b, c, d, normal mathutil.Vec3) Face {
	f := Face{Verts: [4]mathutil.Vec3{a, b, c, d}, Normal: normal}
	for i, v := range f.Verts {
		f.UV[i] = [2]float64{v[0], v[2]}
	}
	return f
}

// Box returns the six faces of an axis-aligned box spanning lo to hi.
func Box(lo, hi mathutil.Vec3) []Face {
	x0, y0, z0 := lo[0], lo[1], lo[2]
	x1, y1, z1 := hi[0], hi[1], hi[2]
	v := func(x, y, z float64) mathutil.Vec3 { return mathutil.Vec3{x, y, z} }
	return []Face{
		Quad(v(x0, y1, z0), v(x1, y1, z0), v(x1, y1, z1), v(x0, y1, z1), mathutil.Vec3{0, 1, 0}),
		Quad(v(x0, y0, z0), v(x0, y0, z1), v(x1, y0, z1), v(x1, y0, z0), mathutil.Vec3{0, -1, 0}),
		Quad(v(x0, y0, z1), v(x0, y1, z1), v(x1, y1, z1), v(x1, y0, z1), mathutil.Vec3{0, 0, 1}),
		Quad(v(x0, y0, z0), v(x1, y0, z0), v(x1, y1, z0), v(x0, y1, z0), mathutil.Vec3{0, 0, -1}),
		Quad(v(x1, y0, z0), v(x1, y0, z1), v(x1, y1, z1), v(x1, y1, z0), mathutil.Vec3{1, 0, 0}),
		Quad(v(x0, y0, z0), v(x0, y1, z0), v(x0, y1, z1), v(x0, y0, z1), mathutil.Vec3{-1, 0, 0}),
	}
}

// Centered returns the box of the given size standing on base.
func Centered(base, size mathutil.Vec3) []Face {
	lo := mathutil.Vec3{base[0] - size[0]/2, base[1], base[2] - size[2]/2}
	hi := mathutil.Vec3{base[0] + size[0]/2, base[1] + size[1], base[2] + size[2]/2}
	return Box(lo, hi)
}

// Transform rotates faces by m around pivot. UVs are kept.
func Transform(faces []Face, m mathutil.Mat3, pivot mathutil.Vec3) []Face {
	out := make([]Face, len(faces))
	for i, f := range faces {
		for j, v := range f.Verts {
			f.Verts[j] = m.MulVec3(v.Sub(pivot)).Add(pivot)
		}
		f.Normal = m.MulVec3(f.Normal)
		out[i] = f
	}
	return out
}

// Aim returns the rotation that turns a -Z facing object at from towards to.
func Aim(from, to mathutil.Vec3) mathutil.Mat3 {
	d := to.Sub(from)
	yaw := math.Atan2(-d[0], -d[2])
	pitch := math.Atan2(d[1], math.Hypot(d[0], d[2]))
	return mathutil.Mat3Mul(mathutil.RotY(yaw), mathutil.RotX(pitch))
}
