package panzoom

import "strings"

// EventKind discriminates pointer events.
type EventKind uint8

const (
	EventMoved EventKind = iota
	EventPressed
	EventReleased
	EventScrolled
)

// WheelDirection classifies a wheel gesture.
type WheelDirection uint8

const (
	// WheelNone is a wheel event with no usable delta.
	WheelNone WheelDirection = iota
	// WheelUp zooms in by the configured wheel factor.
	WheelUp
	// WheelDown zooms out by the inverse of the wheel factor.
	WheelDown
	// WheelHorizontal is classified separately and changes nothing.
	WheelHorizontal
)

// ClassifyWheel maps raw signed wheel deltas to a WheelDirection. A
// positive vertical delta is up, negative is down; a nonzero horizontal
// delta with zero vertical delta is horizontal.
func ClassifyWheel(dx, dy float64) WheelDirection {
	switch {
	case dy > 0:
		return WheelUp
	case dy < 0:
		return WheelDown
	case dx != 0:
		return WheelHorizontal
	default:
		return WheelNone
	}
}

// Event is a discriminated pointer event. Construct events with Moved,
// Pressed, Released, and Scrolled rather than filling the struct by hand.
type Event struct {
	Kind     EventKind
	Position MousePosition  // Moved, Pressed, Scrolled
	Classes  []string       // Pressed: classes of the element under the pointer
	Wheel    WheelDirection // Scrolled
}

// Moved is a pointer-move event at the given captured position.
func Moved(p MousePosition) Event {
	return Event{Kind: EventMoved, Position: p}
}

// Pressed is a pointer-down event. classes is the class list of the
// precise element under the pointer; it decides drag permission against
// the configured filter.
func Pressed(p MousePosition, classes []string) Event {
	return Event{Kind: EventPressed, Position: p, Classes: classes}
}

// Released is a pointer-up event. It carries no payload.
func Released() Event {
	return Event{Kind: EventReleased}
}

// Scrolled is a wheel event at the given captured position.
func Scrolled(p MousePosition, dir WheelDirection) Event {
	return Event{Kind: EventScrolled, Position: p, Wheel: dir}
}

// SplitClasses splits a space-separated class string into a class list,
// dropping empty entries.
func SplitClasses(s string) []string {
	return strings.Fields(s)
}

// Apply runs one pointer event through the interaction state machine and
// returns the resulting State. It is a pure function: no event is an
// error, and an event that doesn't apply (a move without a drag, a press
// the filter rejects, a horizontal scroll) leaves the transform
// unchanged.
func Apply(cfg Config, s State, e Event) State {
	switch e.Kind {
	case EventMoved:
		return s.dragTo(e.Position)

	case EventPressed:
		if cfg.Filter.Allows(e.Classes) {
			return s.beginDrag(e.Position)
		}
		// A rejected press still cancels any drag already in progress.
		return s.endDrag()

	case EventReleased:
		return s.endDrag()

	case EventScrolled:
		var factor float64
		switch e.Wheel {
		case WheelUp:
			factor = cfg.wheelFactor()
		case WheelDown:
			factor = 1 / cfg.wheelFactor()
		default:
			return s
		}
		return s.ScaleBy(cfg, factor, At(e.Position))
	}
	return s
}
