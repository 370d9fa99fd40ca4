package scene

import (
	"image/color"

	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/store"
)

// BrandColor is the accent used for the zone and its annotations (#DCFF00).
var BrandColor = color.NRGBA{R: 0xDC, G: 0xFF, B: 0x00, A: 0xFF}

// Lighting is the light rig for one light condition.
type Lighting struct {
	Ambient    float64
	Main       float64
	Fill       float64
	Background color.NRGBA
	Spot       float64
	SpotColor  color.NRGBA
}

// Light directions of the rig, pointing from the scene toward the light.
var (
	MainLightDir = mathutil.Vec3{10, 10, 5}.Normalize()
	FillLightDir = mathutil.Vec3{-5, 5, -5}.Normalize()
)

// LightingFor returns the rig for c. The dark rig still leaves a faint
// ambient so the scene is not pure black.
func LightingFor(c store.LightCondition) Lighting {
	switch c {
	case store.Bright:
		return Lighting{
			Ambient:    0.5,
			Main:       1.2,
			Fill:       0.5,
			Background: hex(0x1a, 0x1a, 0x1f),
			Spot:       50,
			SpotColor:  hex(0xff, 0xff, 0xff),
		}
	case store.Less:
		return Lighting{
			Ambient:    0.15,
			Main:       0.3,
			Fill:       0.1,
			Background: hex(0x0d, 0x0d, 0x10),
			Spot:       20,
			SpotColor:  hex(0xe8, 0xe8, 0xff),
		}
	case store.Dark:
		return Lighting{
			Ambient:    0.02,
			Background: hex(0x05, 0x05, 0x07),
			Spot:       5,
			SpotColor:  hex(0x66, 0x66, 0xff),
		}
	}
	return LightingFor(store.Bright)
}

func hex(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
