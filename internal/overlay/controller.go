package overlay

import (
	"time"

	"mocap-zone-configurator/internal/zone"
)

// Controller fades the annotation of one dimension in on change and out
// over FadeDuration.
type Controller struct {
	dim  zone.Dimension
	fade Fade
}

// NewController tracks d starting from the value in s, so the first tick
// does not count as a change.
func NewController(d zone.Dimension, s zone.Settings) *Controller {
	return &Controller{dim: d, fade: NewFade(s.Value(d))}
}

// Tick steps the fade against the current settings. The annotation geometry
// always comes from s, even when the fade was triggered by an older value.
func (c *Controller) Tick(s zone.Settings, now time.Time) (Annotation, bool) {
	var triggered bool
	c.fade, triggered = StepFade(c.fade, s.Value(c.dim), now)

	a := Annotate(c.dim, s)
	a.Visible = c.fade.Visible
	a.Opacity = c.fade.Opacity
	return a, triggered
}

// Fade returns the controller's fade state.
func (c *Controller) Fade() Fade { return c.fade }

// Set runs one controller per dimension, independently of each other.
type Set struct {
	controllers [4]*Controller
	onTrigger   func(zone.Dimension)
}

// NewSet creates controllers for every dimension seeded from s. onTrigger,
// when non-nil, is called for each dimension that changed on a tick.
func NewSet(s zone.Settings, onTrigger func(zone.Dimension)) *Set {
	set := &Set{onTrigger: onTrigger}
	for i, d := range zone.Dimensions {
		set.controllers[i] = NewController(d, s)
	}
	return set
}

// Tick steps every controller. While pinned, all annotations are shown at
// full opacity; the fades keep tracking values underneath so unpinning does
// not flash stale changes.
func (s *Set) Tick(settings zone.Settings, pinned bool, now time.Time) [4]Annotation {
	var out [4]Annotation
	for i, c := range s.controllers {
		a, triggered := c.Tick(settings, now)
		if triggered && s.onTrigger != nil {
			s.onTrigger(c.dim)
		}
		if pinned {
			a.Visible = true
			a.Opacity = 1
		}
		out[i] = a
	}
	return out
}
