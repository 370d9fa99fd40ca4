// Package overlay drives the dimension annotations drawn around the zone: a
// fade-on-change controller per dimension, the pinned display mode and the
// tap-versus-drag gesture that toggles it.
package overlay

import "time"

// FadeDuration is how long an annotation stays up after its value changes.
// The fade is measured on the wall clock so it holds under any frame rate.
const FadeDuration = 1200 * time.Millisecond

// Fade is the per-dimension fade state.
type Fade struct {
	Visible   bool
	Opacity   float64
	Triggered time.Time
	Prev      float64
}

// NewFade returns an idle fade tracking initial as the last seen value.
func NewFade(initial float64) Fade {
	return Fade{Prev: initial}
}

// StepFade compares value against the value seen on the previous tick. A
// difference (re)starts the fade at full opacity; otherwise opacity decays
// linearly and the annotation hides once FadeDuration has elapsed.
// The second result reports whether this tick triggered.
func StepFade(f Fade, value float64, now time.Time) (Fade, bool) {
	triggered := false
	if value != f.Prev {
		f.Prev = value
		f.Visible = true
		f.Opacity = 1
		f.Triggered = now
		triggered = true
	}
	if !f.Visible {
		return f, triggered
	}

	elapsed := now.Sub(f.Triggered)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= FadeDuration {
		f.Visible = false
		f.Opacity = 0
		return f, triggered
	}
	f.Opacity = 1 - float64(elapsed)/float64(FadeDuration)
	return f, triggered
}
