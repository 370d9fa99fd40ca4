package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(g *Gesture, evs ...PointerEvent) bool {
	var tapped bool
	for _, ev := range evs {
		if g.Handle(ev) {
			tapped = true
		}
	}
	return tapped
}

func TestGestureTapInsideToggles(t *testing.T) {
	var g Gesture
	assert.True(t, feed(&g,
		PointerEvent{X: 10, Y: 10, Phase: PointerDown, HitZone: true},
		PointerEvent{X: 12, Y: 12, Phase: PointerMove, HitZone: true},
		PointerEvent{X: 12, Y: 12, Phase: PointerUp, HitZone: true},
	))
}

func TestGestureExactlyThresholdIsStillTap(t *testing.T) {
	var g Gesture
	assert.True(t, feed(&g,
		PointerEvent{X: 0, Y: 0, Phase: PointerDown, HitZone: true},
		PointerEvent{X: 3, Y: 0, Phase: PointerMove, HitZone: true},
		PointerEvent{X: 3, Y: 0, Phase: PointerUp, HitZone: true},
	))
}

func TestGestureDragDoesNotToggle(t *testing.T) {
	var g Gesture
	assert.False(t, feed(&g,
		PointerEvent{X: 10, Y: 10, Phase: PointerDown, HitZone: true},
		PointerEvent{X: 14, Y: 10, Phase: PointerMove, HitZone: true},
		PointerEvent{X: 10, Y: 10, Phase: PointerMove, HitZone: true},
		PointerEvent{X: 10, Y: 10, Phase: PointerUp, HitZone: true},
	))
}

func TestGestureStartedOutsideDoesNotToggle(t *testing.T) {
	var g Gesture
	assert.False(t, feed(&g,
		PointerEvent{X: 10, Y: 10, Phase: PointerDown, HitZone: false},
		PointerEvent{X: 10, Y: 10, Phase: PointerUp, HitZone: true},
	))
	assert.False(t, feed(&g,
		PointerEvent{X: 10, Y: 10, Phase: PointerDown, HitZone: false},
		PointerEvent{X: 40, Y: 10, Phase: PointerMove, HitZone: true},
		PointerEvent{X: 40, Y: 10, Phase: PointerUp, HitZone: true},
	))
}

func TestGestureCancelAndReleaseOutside(t *testing.T) {
	var g Gesture
	assert.False(t, feed(&g,
		PointerEvent{Phase: PointerDown, HitZone: true},
		PointerEvent{Phase: PointerCancel},
		PointerEvent{Phase: PointerUp, HitZone: true},
	))
	assert.False(t, feed(&g,
		PointerEvent{Phase: PointerDown, HitZone: true},
		PointerEvent{Phase: PointerUp, HitZone: false},
	))
}

func TestGestureUpWithoutDown(t *testing.T) {
	var g Gesture
	assert.False(t, g.Handle(PointerEvent{Phase: PointerUp, HitZone: true}))
	assert.False(t, g.Handle(PointerEvent{X: 50, Phase: PointerMove}))
	assert.False(t, g.Dragging())
}

func TestBlendApproachesTarget(t *testing.T) {
	b := NewBlend(true)
	for i := 0; i < 100; i++ {
		b = b.Step(false)
	}
	assert.False(t, b.Visible())
	assert.Less(t, b.Opacity(), 0.01)

	b = b.Step(true)
	assert.InDelta(t, b.Opacity(), 0.1, 0.01)
	assert.True(t, b.Visible())

	still := NewBlend(false).Step(false)
	assert.Equal(t, 0.0, still.Opacity())
}
