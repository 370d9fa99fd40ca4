// Package metrics exposes configurator counters. The Recorder interface lets
// the store and host stay unaware of the backend; NoopRecorder is the default.
package metrics

import "time"

// Recorder defines observability hooks for store writes, animations and rendering.
type Recorder interface {
	IncStoreWrite(op string)
	IncCoercion(kind string)
	IncTransition(redirect bool)
	IncOverlayTrigger(dimension string)
	ObserveFrameRender(d time.Duration)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) IncStoreWrite(string)             {}
func (NoopRecorder) IncCoercion(string)               {}
func (NoopRecorder) IncTransition(bool)               {}
func (NoopRecorder) IncOverlayTrigger(string)         {}
func (NoopRecorder) ObserveFrameRender(time.Duration) {}

// OrNoop returns r, or NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
