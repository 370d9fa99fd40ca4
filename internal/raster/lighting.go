package raster

import (
	"math"

	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/scene"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	MainDir   mathutil.Vec3
	FillDir   mathutil.Vec3
	Ambient   float64
	Hemi      float64
	Main      float64
	Fill      float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// NewLightConfig derives shading parameters from a scene light rig.
func NewLightConfig(l scene.Lighting) LightConfig {
	return LightConfig{
		MainDir:   scene.MainLightDir,
		FillDir:   scene.FillLightDir,
		Ambient:   l.Ambient,
		Hemi:      l.Ambient * 0.5,
		Main:      l.Main,
		Fill:      l.Fill,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(normal.Dot(lc.MainDir))
	ndlFill := math.Abs(normal.Dot(lc.FillDir))

	// Hemisphere fill: faces pointing up catch more sky
	hemi := normal[1]*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	return lc.Ambient + hemiLight + ndlMain*lc.Main + ndlFill*lc.Fill
}

// Shade applies a lighting scalar to an sRGB color with ACES tone mapping.
func (lc *LightConfig) Shade(r, g, b uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	return encode(srgbToLinear[r]*k, lc.InvGamma),
		encode(srgbToLinear[g]*k, lc.InvGamma),
		encode(srgbToLinear[b]*k, lc.InvGamma)
}

func encode(linear, invGamma float64) uint8 {
	return clamp255(math.Pow(ACESTonemap(linear), invGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
