package scene

import (
	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/store"
)

// Clip is the mannequin animation playing for a mode and light combination.
type Clip string

const (
	ClipNone               Clip = ""
	ClipDancing            Clip = "dancing"
	ClipComplicatedGesture Clip = "complicated_gesture"
	ClipSimpleGesture      Clip = "simple_gesture"
)

// ClipFor picks the mannequin clip. Setup holds the T-pose; body-only always
// dances; hands-on shows detailed gestures only in bright light.
func ClipFor(mode store.MocapMode, light store.LightCondition) Clip {
	switch mode {
	case store.Setup:
		return ClipNone
	case store.BodyOnly:
		return ClipDancing
	case store.HandsOn:
		if light == store.Bright {
			return ClipComplicatedGesture
		}
		return ClipSimpleGesture
	}
	return ClipNone
}

// Mannequin body size in meters.
var MannequinSize = mathutil.Vec3{0.45, 1.7, 0.25}

// Mount heights of the capture device.
const (
	TripodHeight  = 1.2
	CeilingHeight = 2.6
)

// DevicePosition returns where the capture device sits for a mount type.
// It always faces the zone along -Z.
func DevicePosition(h store.InstallationHeight) mathutil.Vec3 {
	switch h {
	case store.Ceiling:
		return mathutil.Vec3{0, CeilingHeight, 0}
	case store.Tripod:
		return mathutil.Vec3{0, TripodHeight, 0}
	}
	return mathutil.Vec3{0, TripodHeight, 0}
}
