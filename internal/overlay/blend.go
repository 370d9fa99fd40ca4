package overlay

// Blend eases a group's opacity toward shown or hidden by a fixed share of
// the remaining gap each frame. It swaps the tripod and ceiling mounts.
type Blend struct {
	opacity float64
}

const (
	blendRate      = 0.1
	blendEpsilon   = 0.001
	blendVisibleAt = 0.01
)

// NewBlend starts fully shown or fully hidden.
func NewBlend(shown bool) Blend {
	if shown {
		return Blend{opacity: 1}
	}
	return Blend{}
}

// Step moves one frame toward the target.
func (b Blend) Step(shown bool) Blend {
	target := 0.0
	if shown {
		target = 1
	}
	diff := target - b.opacity
	if diff > blendEpsilon || diff < -blendEpsilon {
		b.opacity += diff * blendRate
	}
	return b
}

// Opacity returns the current opacity.
func (b Blend) Opacity() float64 { return b.opacity }

// Visible reports whether the group should be drawn at all.
func (b Blend) Visible() bool { return b.opacity > blendVisibleAt }
