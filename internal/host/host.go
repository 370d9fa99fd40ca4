// Package host wires the store to the frame-driven parts of the configurator.
// It is what a render loop talks to: discrete input goes in through the store
// and Pointer, and once per frame Tick returns everything a renderer needs.
package host

import (
	"time"

	"go.uber.org/zap"

	"mocap-zone-configurator/internal/logging"
	"mocap-zone-configurator/internal/mathutil"
	"mocap-zone-configurator/internal/metrics"
	"mocap-zone-configurator/internal/overlay"
	"mocap-zone-configurator/internal/scene"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/transition"
	"mocap-zone-configurator/internal/zone"
)

// Mount is one mount model as the renderer should draw it.
type Mount struct {
	Height   store.InstallationHeight
	Position mathutil.Vec3
	Opacity  float64
	Visible  bool
}

// Frame is the read-only output of one tick.
type Frame struct {
	Snapshot    store.Snapshot
	Pinned      bool
	Camera      transition.Pose
	Animating   bool
	Annotations [4]overlay.Annotation
	Mounts      [2]Mount
	Lighting    scene.Lighting
	Clip        scene.Clip
}

// Host owns the transient animation state and reads the injected store.
type Host struct {
	store       *store.Store
	camera      *transition.Animator[store.MocapMode]
	overlays    *overlay.Set
	gesture     overlay.Gesture
	pinned      bool
	mounts      [2]overlay.Blend
	unsubscribe func()

	logger   *zap.Logger
	recorder metrics.Recorder
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) { h.logger = logging.OrNop(l) }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(h *Host) { h.recorder = metrics.OrNoop(r) }
}

// New attaches a host to st. The camera rests at the pose of the current
// mode and overlays treat the current zone as already seen.
func New(st *store.Store, opts ...Option) *Host {
	h := &Host{
		store:    st,
		logger:   zap.NewNop(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(h)
	}

	snap := st.Snapshot()
	h.camera = transition.NewAnimator(snap.Mode, h.cameraPose,
		transition.OnStart(func(redirect bool) {
			h.recorder.IncTransition(redirect)
			h.logger.Debug("camera transition", zap.Bool("redirect", redirect))
		}))
	h.overlays = overlay.NewSet(snap.Zone, func(d zone.Dimension) {
		h.recorder.IncOverlayTrigger(d.String())
	})
	for i, mh := range store.InstallationHeights {
		h.mounts[i] = overlay.NewBlend(mh == snap.Installation)
	}

	h.unsubscribe = st.Subscribe(func(_, next store.Snapshot) {
		h.camera.Observe(next.Mode)
	})
	return h
}

// cameraPose reads the distance at the moment a transition starts.
func (h *Host) cameraPose(m store.MocapMode) transition.Pose {
	return scene.CameraPose(m, h.store.Snapshot().Zone.Distance)
}

// Close detaches the host from its store.
func (h *Host) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}

// Store returns the store the host reads.
func (h *Host) Store() *store.Store { return h.store }

// Pinned reports whether all annotations are held on screen.
func (h *Host) Pinned() bool { return h.pinned }

// SetPinned forces the pinned display mode.
func (h *Host) SetPinned(p bool) { h.pinned = p }

// Pointer feeds a pointer event; a tap on the zone floor flips pinned mode.
func (h *Host) Pointer(ev overlay.PointerEvent) bool {
	if !h.gesture.Handle(ev) {
		return false
	}
	h.pinned = !h.pinned
	h.logger.Debug("pinned labels toggled", zap.Bool("pinned", h.pinned))
	return true
}

// Tick advances the camera by delta and the overlays to now, and returns the
// frame to draw.
func (h *Host) Tick(delta time.Duration, now time.Time) Frame {
	snap := h.store.Snapshot()
	pose := h.camera.Tick(delta)

	f := Frame{
		Snapshot:    snap,
		Pinned:      h.pinned,
		Camera:      pose,
		Animating:   h.camera.State().Animating,
		Annotations: h.overlays.Tick(snap.Zone, h.pinned, now),
		Lighting:    scene.LightingFor(snap.Light),
		Clip:        scene.ClipFor(snap.Mode, snap.Light),
	}
	for i, mh := range store.InstallationHeights {
		h.mounts[i] = h.mounts[i].Step(mh == snap.Installation)
		f.Mounts[i] = Mount{
			Height:   mh,
			Position: scene.DevicePosition(mh),
			Opacity:  h.mounts[i].Opacity(),
			Visible:  h.mounts[i].Visible(),
		}
	}
	return f
}

// Settle ticks at the given frame interval until the camera stops moving,
// for at most limit frames, and returns the last frame.
func (h *Host) Settle(step time.Duration, now time.Time, limit int) Frame {
	f := h.Tick(0, now)
	for i := 0; i < limit && f.Animating; i++ {
		now = now.Add(step)
		f = h.Tick(step, now)
	}
	return f
}

// Record ticks at the given frame interval while the camera is moving and
// returns every frame, starting with the current one. At most limit frames
// follow the first.
func (h *Host) Record(step time.Duration, now time.Time, limit int) []Frame {
	f := h.Tick(0, now)
	frames := []Frame{f}
	for i := 0; i < limit && f.Animating; i++ {
		now = now.Add(step)
		f = h.Tick(step, now)
		frames = append(frames, f)
	}
	return frames
}
