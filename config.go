package panzoom

// defaultWheelFactor is the multiplicative zoom step applied per wheel
// notch when Config.WheelFactor is unset.
const defaultWheelFactor = 1.1

// Origin selects which point of the content box the tracked position
// refers to, and with it how page coordinates convert to the internal
// coordinate space.
type Origin uint8

const (
	// OriginCenter positions the content box by its center point.
	// Page coordinates convert to internal coordinates by subtracting
	// the configured viewport Offset on input and adding it back on
	// getter output.
	OriginCenter Origin = iota
	// OriginTopLeft positions the content box by its top-left corner.
	// No offset conversion is performed; anchor points are instead
	// normalized by half the configured content size, matching a box
	// that scales about its visual center.
	OriginTopLeft
)

// FilterMode selects how a DragFilter's class list is interpreted.
type FilterMode uint8

const (
	// FilterDeny permits a drag unless the pressed element carries one
	// of the listed classes. An empty list denies nothing, so the zero
	// value of DragFilter always permits dragging.
	FilterDeny FilterMode = iota
	// FilterAllow permits a drag only if the pressed element carries at
	// least one of the listed classes. An empty list never matches, so
	// dragging can then only start on elements explicitly carrying an
	// allowed class.
	FilterAllow
)

// DragFilter decides, from the class list of the element under the
// pointer, whether a press may begin a drag.
type DragFilter struct {
	Mode    FilterMode
	Classes []string
}

// Allows reports whether a press on an element with the given classes
// may begin a drag. An empty class list never matches a non-empty
// filter list: allow mode then rejects, deny mode permits.
func (f DragFilter) Allows(classes []string) bool {
	if f.Mode == FilterAllow {
		return intersects(f.Classes, classes)
	}
	return !intersects(f.Classes, classes)
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// Config holds the immutable per-controller settings. The zero value is
// usable: center origin at page offset (0,0), unbounded scale, wheel
// factor 1.1, and dragging permitted everywhere.
type Config struct {
	// Origin selects the content box positioning convention.
	Origin Origin
	// Offset is the page-space position of the viewport's top-left
	// corner. Only consulted with OriginCenter.
	Offset Vec2
	// ContentWidth and ContentHeight are the unscaled content box
	// dimensions. Required for OriginTopLeft anchor math and for the
	// rendering helpers; ignored by the OriginCenter core math.
	ContentWidth, ContentHeight float64

	// MinScale and MaxScale bound the scale when > 0. A scale request
	// outside the bounds is clamped, never rejected.
	MinScale, MaxScale float64

	// WheelFactor is the multiplicative zoom step per wheel notch.
	// Must be > 1 to take effect; otherwise defaultWheelFactor is used.
	WheelFactor float64

	// Filter decides which pressed elements may begin a drag.
	Filter DragFilter

	// Geometry is the injected capability for querying the viewport's
	// on-screen geometry. May be nil if ViewportCenter anchoring and
	// RequestViewportGeometry are never used.
	Geometry GeometrySource
}

// wheelFactor returns the configured wheel step or the default.
func (c Config) wheelFactor() float64 {
	if c.WheelFactor > 1 {
		return c.WheelFactor
	}
	return defaultWheelFactor
}

// clampScale clamps s into [MinScale, MaxScale], treating an unset
// (zero) bound as open.
func (c Config) clampScale(s float64) float64 {
	if c.MinScale > 0 && s < c.MinScale {
		return c.MinScale
	}
	if c.MaxScale > 0 && s > c.MaxScale {
		return c.MaxScale
	}
	return s
}

// toInternal converts a page-space point into the internal position
// space: offset-relative for OriginCenter, unchanged for OriginTopLeft.
func (c Config) toInternal(p Vec2) Vec2 {
	if c.Origin == OriginCenter {
		return p.Sub(c.Offset)
	}
	return p
}

// fromInternal converts an internal position back to page space for
// getter output.
func (c Config) fromInternal(p Vec2) Vec2 {
	if c.Origin == OriginCenter {
		return p.Add(c.Offset)
	}
	return p
}

// anchorCoord converts a page-space anchor point into the coordinate
// the compensation formula works in. With OriginTopLeft the point is
// additionally normalized by half the content size, since the box
// scales about its visual center while being positioned by its corner.
func (c Config) anchorCoord(p Vec2) Vec2 {
	p = c.toInternal(p)
	if c.Origin == OriginTopLeft {
		p.X -= c.ContentWidth / 2
		p.Y -= c.ContentHeight / 2
	}
	return p
}
