package panzoom

import "errors"

// ErrNoGeometrySource is delivered when RequestViewportGeometry is
// called on a controller configured without a GeometrySource.
var ErrNoGeometrySource = errors.New("panzoom: no geometry source configured")

// GeometrySource queries the viewport's current on-screen geometry from
// the host environment. It may fail (element not found, not mounted
// yet); the controller never retries on the caller's behalf.
type GeometrySource func() (Rect, error)

// GeometryResult is the outcome of one viewport geometry query. Exactly
// one of Viewport and Err is meaningful.
type GeometryResult struct {
	Viewport Rect
	Err      error
}

// Controller owns one transform State under one Config and exposes the
// programmatic pan/zoom surface. One controller per content box; it is
// driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	cfg   Config
	state State
}

// NewController creates a controller with the identity transform.
func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, state: NewState()}
}

// Config returns the controller's immutable configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Origin reports the content box positioning convention, so the
// rendering collaborator knows how to place the box from Position.
func (c *Controller) Origin() Origin {
	return c.cfg.Origin
}

// State returns a snapshot of the current transform state.
func (c *Controller) State() State {
	return c.state
}

// Scale returns the current uniform scale factor.
func (c *Controller) Scale() float64 {
	return c.state.Scale
}

// Position returns the current position of the content box's origin
// point, converted back to page space.
func (c *Controller) Position() Vec2 {
	return c.cfg.fromInternal(c.state.Position)
}

// DragOrigin returns the pointer position the current drag was last
// updated at, and whether a drag is in progress.
func (c *Controller) DragOrigin() (MousePosition, bool) {
	return c.state.DragOrigin()
}

// Dragging reports whether a drag is in progress, so an event-source
// collaborator knows whether move events are worth delivering.
func (c *Controller) Dragging() bool {
	return c.state.Dragging()
}

// MoveBy translates the content box by delta.
func (c *Controller) MoveBy(delta Vec2) {
	c.state = c.state.MoveBy(delta)
}

// MoveTo places the content box's origin point at the page-space point p.
func (c *Controller) MoveTo(p Vec2) {
	c.state = c.state.MoveTo(c.cfg, p)
}

// ScaleBy multiplies the scale by factor, keeping the anchor visually
// fixed. Out-of-bounds results are clamped, see State.ScaleBy.
func (c *Controller) ScaleBy(factor float64, anchor Anchor) {
	c.state = c.state.ScaleBy(c.cfg, factor, anchor)
}

// ScaleTo sets the scale to target, keeping the anchor visually fixed.
func (c *Controller) ScaleTo(target float64, anchor Anchor) {
	c.state = c.state.ScaleTo(c.cfg, target, anchor)
}

// Reset returns the controller to the identity transform and cancels
// any drag in progress.
func (c *Controller) Reset() {
	c.state = NewState()
}

// Handle runs one pointer event through the interaction state machine.
func (c *Controller) Handle(e Event) {
	c.state = Apply(c.cfg, c.state, e)
}

// RequestViewportGeometry queries the configured GeometrySource off the
// event path and delivers exactly one GeometryResult on the returned
// channel. The channel is buffered, so the result never blocks on a
// caller that lost interest; issuing a new request simply supersedes a
// stale one.
func (c *Controller) RequestViewportGeometry() <-chan GeometryResult {
	ch := make(chan GeometryResult, 1)
	src := c.cfg.Geometry
	if src == nil {
		ch <- GeometryResult{Err: ErrNoGeometrySource}
		return ch
	}
	go func() {
		v, err := src()
		ch <- GeometryResult{Viewport: v, Err: err}
	}()
	return ch
}
