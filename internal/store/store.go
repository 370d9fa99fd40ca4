// Package store holds the single authoritative configuration. Every write goes
// through Reduce, and subscribers are notified once the derived snapshot is
// in place.
//
// The store has one logical writer. Writes issued from inside a subscriber
// are queued and applied after the current notification round, so no
// subscriber ever observes a half-applied write.
package store

import (
	"go.uber.org/zap"

	"mocap-zone-configurator/internal/logging"
	"mocap-zone-configurator/internal/metrics"
	"mocap-zone-configurator/internal/zone"
)

// Listener receives the snapshot before and after a write.
type Listener func(prev, next Snapshot)

// Store is a constructible state container; there is no package-level instance.
type Store struct {
	state     Snapshot
	listeners []subscription
	nextID    int

	dispatching bool
	pending     []Action

	logger   *zap.Logger
	recorder metrics.Recorder
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for write and coercion diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = logging.OrNop(l) }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Store) { s.recorder = metrics.OrNoop(r) }
}

// New creates a store seeded with initial, normalized to satisfy every invariant.
func New(initial Snapshot, opts ...Option) *Store {
	s := &Store{
		state:    normalize(initial),
		logger:   zap.NewNop(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current configuration.
func (s *Store) Snapshot() Snapshot {
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run in registration order.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetZoneSettings clamps the patch onto the zone and returns the mode to Setup.
func (s *Store) SetZoneSettings(p zone.Patch) { s.Dispatch(SetZoneSettings{Patch: p}) }

// SetInstallationHeight replaces the mount type.
func (s *Store) SetInstallationHeight(h InstallationHeight) {
	s.Dispatch(SetInstallationHeight{Height: h})
}

// SetMocapMode selects a capture mode; HandsOn in the dark brings the light back to Bright.
func (s *Store) SetMocapMode(m MocapMode) { s.Dispatch(SetMocapMode{Mode: m}) }

// SetLightCondition selects a light level; Dark during HandsOn returns the mode to Setup.
func (s *Store) SetLightCondition(c LightCondition) {
	s.Dispatch(SetLightCondition{Condition: c})
}

// Dispatch applies a and notifies every listener once.
func (s *Store) Dispatch(a Action) {
	if s.dispatching {
		s.pending = append(s.pending, a)
		return
	}
	s.dispatching = true
	defer func() {
		// A panicking listener abandons the rest of the queue.
		s.dispatching = false
		s.pending = nil
	}()

	for {
		s.apply(a)
		if len(s.pending) == 0 {
			return
		}
		a = s.pending[0]
		s.pending = s.pending[1:]
	}
}

func (s *Store) apply(a Action) {
	prev := s.state
	next, coerced := Reduce(prev, a)
	s.state = next

	s.recorder.IncStoreWrite(a.op())
	for _, c := range coerced {
		s.recorder.IncCoercion(c.Kind)
		s.logger.Debug("value coerced",
			logging.Op(a.op()),
			zap.String("kind", c.Kind),
			zap.String("field", c.Field))
	}
	s.logger.Debug("store write",
		logging.Op(a.op()),
		zap.Float64("width", next.Zone.Width),
		zap.Float64("length", next.Zone.Length),
		zap.Float64("height", next.Zone.Height),
		zap.Float64("distance", next.Zone.Distance),
		logging.Mount(next.Installation),
		logging.Mode(next.Mode),
		logging.Light(next.Light))

	listeners := append([]subscription(nil), s.listeners...)
	for _, sub := range listeners {
		sub.fn(prev, next)
	}
}
