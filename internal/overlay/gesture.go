package overlay

// DragThreshold is the screen-space distance, in pixels, past which a press
// counts as a drag rather than a tap.
const DragThreshold = 3.0

// Phase is the stage of a pointer interaction.
type Phase int

const (
	PointerDown Phase = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (p Phase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is one pointer sample in screen space. HitZone reports
// whether it landed on the zone's floor.
type PointerEvent struct {
	X, Y    float64
	Phase   Phase
	HitZone bool
}

// Gesture tells a tap on the zone floor apart from a camera drag.
type Gesture struct {
	pressed       bool
	startedInside bool
	dragging      bool
	originX       float64
	originY       float64
}

// Handle feeds one event and reports whether it completed a tap, which is a
// press and release both on the zone with no more than DragThreshold of
// movement in between. Cancel and releases off the zone never tap.
func (g *Gesture) Handle(ev PointerEvent) bool {
	switch ev.Phase {
	case PointerDown:
		*g = Gesture{
			pressed:       true,
			startedInside: ev.HitZone,
			originX:       ev.X,
			originY:       ev.Y,
		}
	case PointerMove:
		if !g.pressed || g.dragging {
			return false
		}
		dx := ev.X - g.originX
		dy := ev.Y - g.originY
		if dx*dx+dy*dy > DragThreshold*DragThreshold {
			g.dragging = true
		}
	case PointerUp:
		tap := g.pressed && g.startedInside && !g.dragging && ev.HitZone
		*g = Gesture{}
		return tap
	case PointerCancel:
		*g = Gesture{}
	}
	return false
}

// Dragging reports whether the current press has turned into a drag.
func (g *Gesture) Dragging() bool { return g.dragging }
