// Package zone holds the capture-zone geometry and the constraint rules that
// keep it renderable.
package zone

import (
	"math"
	"strconv"
	"strings"
)

// Settings is the zone geometry in meters. Distance is measured from the
// device to the zone centre.
type Settings struct {
	Width    float64 `yaml:"width" json:"width"`
	Length   float64 `yaml:"length" json:"length"`
	Height   float64 `yaml:"height" json:"height"`
	Distance float64 `yaml:"distance" json:"distance"`
}

// Patch is a partial update; nil fields keep the current value.
type Patch struct {
	Width    *float64
	Length   *float64
	Height   *float64
	Distance *float64
}

// Float returns a pointer to v for building patches inline.
func Float(v float64) *float64 {
	return &v
}

// Empty reports whether the patch sets no field.
func (p Patch) Empty() bool {
	return p.Width == nil && p.Length == nil && p.Height == nil && p.Distance == nil
}

// Dimension names one of the four zone measurements.
type Dimension int

const (
	Width Dimension = iota
	Length
	Height
	Distance
)

// Dimensions lists every dimension in display order.
var Dimensions = [4]Dimension{Width, Length, Height, Distance}

func (d Dimension) String() string {
	switch d {
	case Width:
		return "width"
	case Length:
		return "length"
	case Height:
		return "height"
	case Distance:
		return "distance"
	}
	return "unknown"
}

// Value returns the measurement of s for dimension d.
func (s Settings) Value(d Dimension) float64 {
	switch d {
	case Width:
		return s.Width
	case Length:
		return s.Length
	case Height:
		return s.Height
	case Distance:
		return s.Distance
	}
	return 0
}

// PatchOf builds a single-field patch for dimension d.
func PatchOf(d Dimension, v float64) Patch {
	switch d {
	case Width:
		return Patch{Width: &v}
	case Length:
		return Patch{Length: &v}
	case Height:
		return Patch{Height: &v}
	case Distance:
		return Patch{Distance: &v}
	}
	return Patch{}
}

// ParseDimension parses numeric text-field input. Anything that is not a
// finite number reads as 0 and is left for Derive to clamp.
func ParseDimension(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}
