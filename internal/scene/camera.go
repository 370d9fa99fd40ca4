// Package scene holds the fixed staging of the configurator: camera poses per
// capture mode, light presets, mannequin clips and mount placement.
package scene

import (
	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/transition"
)

// Camera optics shared by every renderer.
const (
	FieldOfView = 50.0 // vertical, degrees
	Near        = 0.1
	Far         = 1000.0
)

// Overview is the setup-mode camera: high and to the side, looking past the
// device toward the zone.
var Overview = transition.Pose{
	Position: mathutil.Vec3{4, 4, 4},
	Target:   mathutil.Vec3{0, 0, -4},
}

// Subject returns where the mannequin stands: on the floor at the zone centre.
func Subject(distance float64) mathutil.Vec3 {
	return mathutil.Vec3{0, 0, -distance}
}

// CloseUp frames the mannequin from the front for the capture modes.
func CloseUp(distance float64) transition.Pose {
	return transition.Pose{
		Position: mathutil.Vec3{0, 2.0, -distance + 5.5},
		Target:   mathutil.Vec3{0, 1, -distance},
	}
}

// CameraPose maps a capture mode to the pose the camera settles at.
func CameraPose(mode store.MocapMode, distance float64) transition.Pose {
	switch mode {
	case store.BodyOnly, store.HandsOn:
		return CloseUp(distance)
	case store.Setup:
		return Overview
	}
	return Overview
}
