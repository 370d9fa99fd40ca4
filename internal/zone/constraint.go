package zone

import "math"

// MaxLength returns the usable length for a distance. The cap grows linearly
// from LengthMin at DistanceMin to LengthMax at DistanceMax.
func MaxLength(distance float64) float64 {
	d := clamp(distance, DistanceMin, DistanceMax)
	return LengthMin + (d-DistanceMin)/(DistanceMax-DistanceMin)*(LengthMax-LengthMin)
}

// Merge overlays the fields present in patch onto current without clamping.
func Merge(current Settings, patch Patch) Settings {
	next := current
	if patch.Width != nil {
		next.Width = *patch.Width
	}
	if patch.Length != nil {
		next.Length = *patch.Length
	}
	if patch.Height != nil {
		next.Height = *patch.Height
	}
	if patch.Distance != nil {
		next.Distance = *patch.Distance
	}
	return next
}

// Derive merges patch onto current and returns settings that satisfy every
// bound. Distance is clamped before the length cap is computed from it.
// Derive never fails: NaN reads as 0 and out-of-range values saturate.
func Derive(current Settings, patch Patch) Settings {
	next := Merge(current, patch)
	next.Width = clamp(next.Width, WidthMin, WidthMax)
	next.Height = clamp(next.Height, HeightMin, HeightMax)
	next.Distance = clamp(next.Distance, DistanceMin, DistanceMax)
	next.Length = clamp(next.Length, LengthMin, MaxLength(next.Distance))
	return next
}

// Valid reports whether s already satisfies every bound.
func (s Settings) Valid() bool {
	return Derive(s, Patch{}) == s
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	return math.Max(lo, math.Min(hi, v))
}

// Bounds returns the range a dimension may take next to the other values of
// s. Only length depends on another dimension.
func Bounds(d Dimension, s Settings) (lo, hi float64) {
	switch d {
	case Width:
		return WidthMin, WidthMax
	case Length:
		return LengthMin, MaxLength(s.Distance)
	case Height:
		return HeightMin, HeightMax
	case Distance:
		return DistanceMin, DistanceMax
	}
	return 0, 0
}
