package panzoom

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API. It carries no coordinate-space tag; callers track
// whether a value is page-, viewport-, or content-relative.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o componentwise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v − o componentwise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle in page space. The coordinate system
// has its origin at the top-left, with Y increasing downward. Viewport
// geometry delivered by a GeometrySource uses this type.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MousePosition is a page-space pointer position captured from an input
// event. It is deliberately opaque so captured pointer coordinates cannot
// be mixed up with content-space vectors: the only way to obtain one is
// CapturedAt, and the only way back out is Page.
type MousePosition struct {
	x, y float64
}

// CapturedAt wraps a raw page-space pointer coordinate. Event-source
// adapters call this at the capture boundary; everything downstream
// passes the wrapper around.
func CapturedAt(x, y float64) MousePosition {
	return MousePosition{x: x, y: y}
}

// Page returns the wrapped page-space coordinate.
func (m MousePosition) Page() Vec2 {
	return Vec2{m.x, m.y}
}
