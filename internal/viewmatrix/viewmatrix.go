// Package viewmatrix turns a camera pose into screen-space projections.
package viewmatrix

import (
	"math"

	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/transition"
)

// Camera is a perspective camera looking from a pose.
type Camera struct {
	Eye    mathutil.Vec3
	R      mathutil.Mat3 // world → view rotation; the camera looks down -Z
	Focal  float64       // pixels per unit at depth 1
	Near   float64
	Width  int
	Height int
}

var worldUp = mathutil.Vec3{0, 1, 0}

// LookAt builds the world → view rotation for an eye looking at target.
// Rows are the camera right, up and backward axes.
func LookAt(eye, target mathutil.Vec3) mathutil.Mat3 {
	back := eye.Sub(target).Normalize()
	if back.Len() == 0 {
		back = mathutil.Vec3{0, 0, 1}
	}
	right := worldUp.Cross(back).Normalize()
	if right.Len() == 0 {
		// Looking straight up or down: any horizontal axis works.
		right = mathutil.Vec3{1, 0, 0}
	}
	up := back.Cross(right)
	return mathutil.Mat3Rows(right, up, back)
}

// NewCamera sets up a camera for a pose with a vertical field of view in
// degrees and a viewport of w×h pixels.
func NewCamera(p transition.Pose, fovDeg, near float64, w, h int) Camera {
	halfFOV := mathutil.Deg2Rad(fovDeg / 2)
	return Camera{
		Eye:    p.Position,
		R:      LookAt(p.Position, p.Target),
		Focal:  float64(h) / 2 / math.Tan(halfFOV),
		Near:   near,
		Width:  w,
		Height: h,
	}
}

// View transforms a world point into view space.
func (c Camera) View(v mathutil.Vec3) mathutil.Vec3 {
	return c.R.MulVec3(v.Sub(c.Eye))
}

// InFront reports whether a view-space point is past the near plane.
func (c Camera) InFront(v mathutil.Vec3) bool {
	return -v[2] >= c.Near
}

// ProjectView maps a view-space point (in front of the camera) to screen
// x, y and an inverse depth that grows toward the camera.
func (c Camera) ProjectView(v mathutil.Vec3) (x, y, invDepth float64) {
	depth := -v[2]
	invDepth = 1 / depth
	x = v[0]*c.Focal*invDepth + float64(c.Width)/2
	y = -v[1]*c.Focal*invDepth + float64(c.Height)/2
	return x, y, invDepth
}

// Project maps a world point to the screen; ok is false behind the near plane.
func (c Camera) Project(v mathutil.Vec3) (x, y, invDepth float64, ok bool) {
	vv := c.View(v)
	if !c.InFront(vv) {
		return 0, 0, 0, false
	}
	x, y, invDepth = c.ProjectView(vv)
	return x, y, invDepth, true
}

// ClipSegment trims a view-space segment to the part in front of the near
// plane; ok is false when nothing is left.
func (c Camera) ClipSegment(a, b mathutil.Vec3) (mathutil.Vec3, mathutil.Vec3, bool) {
	da := -a[2] - c.Near
	db := -b[2] - c.Near
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		a = mathutil.Lerp(a, b, da/(da-db))
	case db < 0:
		b = mathutil.Lerp(a, b, da/(da-db))
	}
	return a, b, true
}
