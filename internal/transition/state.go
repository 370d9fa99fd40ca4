// Package transition interpolates a pose from A to B over frame ticks. A new
// target while a transition is running redirects it from wherever it
// currently is instead of restarting from the original start.
package transition

import (
	"math"

	"mocap-zone-configurator/internal/mathutil"
)

// Speed is the default progress gained per second; a full transition takes
// 1/Speed seconds.
const Speed = 2.0

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position mathutil.Vec3 `json:"position"`
	Target   mathutil.Vec3 `json:"target"`
}

// LerpPose interpolates position and target independently.
func LerpPose(a, b Pose, t float64) Pose {
	return Pose{
		Position: mathutil.Lerp(a.Position, b.Position, t),
		Target:   mathutil.Lerp(a.Target, b.Target, t),
	}
}

// EaseOutCubic maps linear progress p in [0,1] to 1-(1-p)^3.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// State is the transient interpolation state. Current is the last output
// pose and stays put while idle.
type State struct {
	Animating bool
	Progress  float64
	Start     Pose
	End       Pose
	Current   Pose
}

// Rest returns an idle state holding p.
func Rest(p Pose) State {
	return State{Start: p, End: p, Current: p}
}

// Retarget begins a transition from the current pose toward end. Progress
// restarts at 0.
func Retarget(s State, end Pose) State {
	return State{
		Animating: true,
		Start:     s.Current,
		End:       end,
		Current:   s.Current,
	}
}

// Step advances s by delta seconds at speed. Idle states are returned
// unchanged. When progress reaches 1 the pose equals End exactly and the
// state goes idle.
func Step(s State, delta, speed float64) State {
	if !s.Animating {
		return s
	}
	if math.IsNaN(delta) || delta < 0 {
		delta = 0
	}

	s.Progress += delta * speed
	if s.Progress >= 1 {
		s.Progress = 1
		s.Animating = false
	}
	s.Current = LerpPose(s.Start, s.End, EaseOutCubic(s.Progress))
	return s
}
