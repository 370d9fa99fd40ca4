package transition

import "time"

// PoseFunc maps a discriminant value to the pose it should settle at.
type PoseFunc[K comparable] func(K) Pose

// Animator watches a discriminant and animates toward its pose whenever the
// value changes. It keeps no reference to where the discriminant comes from;
// the host feeds it through Observe and advances it through Tick.
type Animator[K comparable] struct {
	key     K
	lookup  PoseFunc[K]
	state   State
	speed   float64
	onStart func(redirect bool)
}

// Option configures an Animator.
type Option func(*settings)

type settings struct {
	speed   float64
	onStart func(redirect bool)
}

// WithSpeed overrides the progress gained per second.
func WithSpeed(speed float64) Option {
	return func(s *settings) {
		if speed > 0 {
			s.speed = speed
		}
	}
}

// OnStart registers a callback run whenever a transition begins; redirect is
// true when it replaced one still in flight.
func OnStart(fn func(redirect bool)) Option {
	return func(s *settings) { s.onStart = fn }
}

// NewAnimator returns an idle animator resting at lookup(initial).
func NewAnimator[K comparable](initial K, lookup PoseFunc[K], opts ...Option) *Animator[K] {
	cfg := settings{speed: Speed}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Animator[K]{
		key:     initial,
		lookup:  lookup,
		state:   Rest(lookup(initial)),
		speed:   cfg.speed,
		onStart: cfg.onStart,
	}
}

// Observe reports the latest discriminant. A changed value starts a
// transition toward its pose; if one is running it is redirected from the
// current interpolated pose. Returns whether a transition started.
func (a *Animator[K]) Observe(key K) bool {
	if key == a.key {
		return false
	}
	redirect := a.state.Animating
	a.key = key
	a.state = Retarget(a.state, a.lookup(key))
	if a.onStart != nil {
		a.onStart(redirect)
	}
	return true
}

// Tick advances the running transition by delta and returns the current pose.
func (a *Animator[K]) Tick(delta time.Duration) Pose {
	a.state = Step(a.state, delta.Seconds(), a.speed)
	return a.state.Current
}

// Pose returns the current output pose.
func (a *Animator[K]) Pose() Pose { return a.state.Current }

// State returns a copy of the interpolation state.
func (a *Animator[K]) State() State { return a.state }

// Key returns the last observed discriminant.
func (a *Animator[K]) Key() K { return a.key }
