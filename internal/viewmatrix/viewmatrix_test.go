package viewmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/transition"
)

func TestTargetProjectsToCentre(t *testing.T) {
	p := transition.Pose{Position: mathutil.Vec3{4, 4, 4}, Target: mathutil.Vec3{0, 0, -4}}
	cam := NewCamera(p, 50, 0.1, 640, 480)
	x, y, inv, ok := cam.Project(p.Target)
	assert.True(t, ok)
	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 240, y, 1e-9)
	assert.Greater(t, inv, 0.0)
}

func TestProjectOrientation(t *testing.T) {
	p := transition.Pose{Position: mathutil.Vec3{0, 0, 5}, Target: mathutil.Vec3{0, 0, 0}}
	cam := NewCamera(p, 90, 0.1, 100, 100)

	x, _, _, _ := cam.Project(mathutil.Vec3{1, 0, 0})
	assert.Greater(t, x, 50.0, "+X is to the right")
	_, y, _, _ := cam.Project(mathutil.Vec3{0, 1, 0})
	assert.Less(t, y, 50.0, "+Y is up the screen")

	_, _, near, _ := cam.Project(mathutil.Vec3{0, 0, 1})
	_, _, far, _ := cam.Project(mathutil.Vec3{0, 0, -1})
	assert.Greater(t, near, far)

	_, _, _, ok := cam.Project(mathutil.Vec3{0, 0, 10})
	assert.False(t, ok, "behind the camera")
}

func TestLookAtStraightDown(t *testing.T) {
	r := LookAt(mathutil.Vec3{0, 5, 0}, mathutil.Vec3{0, 0, 0})
	back := mathutil.Vec3{r[6], r[7], r[8]}
	assert.True(t, back.ApproxEqual(mathutil.Vec3{0, 1, 0}, 1e-12))
}

func TestClipSegment(t *testing.T) {
	cam := Camera{Near: 1}
	a, b, ok := cam.ClipSegment(mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 0, -3})
	assert.True(t, ok)
	assert.InDelta(t, -1, a[2], 1e-12)
	assert.Equal(t, -3.0, b[2])

	_, _, ok = cam.ClipSegment(mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 0, 2})
	assert.False(t, ok)
}
