package overlay

import (
	"fmt"

	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/zone"
)

// Offsets that keep annotations just outside the zone wireframe.
const (
	floorLift   = 0.05
	edgeOffset  = 0.2
	labelOffset = 0.2
)

// Annotation is what the renderer draws for one dimension: a double-headed
// arrow from From to To and a label at Anchor.
type Annotation struct {
	Dimension zone.Dimension
	Visible   bool
	Opacity   float64
	From      mathutil.Vec3
	To        mathutil.Vec3
	Anchor    mathutil.Vec3
	Label     string
}

// Annotate places the annotation for d against the current zone. The zone is
// centred on the subject at z = -distance; the device sits at the origin.
func Annotate(d zone.Dimension, s zone.Settings) Annotation {
	centerZ := -s.Distance
	halfW := s.Width / 2
	halfL := s.Length / 2

	a := Annotation{Dimension: d, Label: Label(s.Value(d))}
	switch d {
	case zone.Width:
		z := centerZ + halfL + edgeOffset
		a.From = mathutil.Vec3{-halfW, floorLift, z}
		a.To = mathutil.Vec3{halfW, floorLift, z}
		a.Anchor = mathutil.Vec3{0, floorLift, z + labelOffset}
	case zone.Length:
		x := halfW + edgeOffset
		a.From = mathutil.Vec3{x, floorLift, centerZ + halfL}
		a.To = mathutil.Vec3{x, floorLift, centerZ - halfL}
		a.Anchor = mathutil.Vec3{x + 0.6, floorLift, centerZ}
	case zone.Height:
		x := halfW + 0.1
		z := centerZ - halfL - 0.1
		a.From = mathutil.Vec3{x, 0, z}
		a.To = mathutil.Vec3{x, s.Height, z}
		a.Anchor = mathutil.Vec3{x + 0.1, s.Height / 2, z}
	case zone.Distance:
		a.From = mathutil.Vec3{0, floorLift, 0}
		a.To = mathutil.Vec3{0, floorLift, centerZ}
		a.Anchor = mathutil.Vec3{0.3, floorLift, centerZ / 2}
	}
	return a
}

// Label formats a measurement the way the panel shows it.
func Label(v float64) string {
	return fmt.Sprintf("%.1f m", v)
}
