package panzoom

// State is the current transform of the content box: a uniform scale, a
// position for the configured origin point, and the origin of the drag
// in progress, if any. State is an immutable value; the transition
// methods return a new State and never mutate the receiver. Callers are
// expected to go through the transitions rather than poking fields.
type State struct {
	// Scale is the uniform zoom factor (1.0 = no scaling).
	Scale float64
	// Position is the content box position in the internal coordinate
	// space selected by Config.Origin.
	Position Vec2

	dragging bool
	dragFrom Vec2 // page-space pointer position the drag last saw
}

// NewState returns the identity transform: scale 1, position (0,0), no
// drag in progress.
func NewState() State {
	return State{Scale: 1}
}

// Dragging reports whether a drag is in progress.
func (s State) Dragging() bool {
	return s.dragging
}

// DragOrigin returns the pointer position the current drag was last
// updated at, and whether a drag is in progress at all.
func (s State) DragOrigin() (MousePosition, bool) {
	if !s.dragging {
		return MousePosition{}, false
	}
	return CapturedAt(s.dragFrom.X, s.dragFrom.Y), true
}

// MoveBy translates the position by delta. Deltas are space-independent,
// so no coordinate conversion applies. Always succeeds.
func (s State) MoveBy(delta Vec2) State {
	s.Position = s.Position.Add(delta)
	return s
}

// MoveTo places the content box so its configured origin point sits at
// the given page-space point. Always succeeds.
func (s State) MoveTo(cfg Config, p Vec2) State {
	s.Position = cfg.toInternal(p)
	return s
}

// ScaleBy multiplies the scale by factor and shifts the position so the
// anchor stays visually fixed. The resulting scale is clamped into the
// configured bounds; the compensation uses the multiplier that actually
// took effect, so a clamped zoom still shifts the position consistently
// with the applied scale change.
//
// The compensation is newPos = a − f·(a − oldPos) componentwise, where
// a is the anchor resolved into the internal coordinate space: before
// the zoom the anchor sits at offset (a − oldPos) from the origin
// point, after it that offset has grown by f, so the origin point must
// move to keep a in place. ContentCenter resolves to no shift at all.
func (s State) ScaleBy(cfg Config, factor float64, anchor Anchor) State {
	return s.applyScale(cfg, s.Scale*factor, anchor)
}

// ScaleTo sets the scale to target, anchored like ScaleBy.
func (s State) ScaleTo(cfg Config, target float64, anchor Anchor) State {
	return s.applyScale(cfg, target, anchor)
}

// applyScale clamps and applies a new absolute scale with anchor
// compensation driven by the multiplier that actually took effect.
func (s State) applyScale(cfg Config, target float64, anchor Anchor) State {
	newScale := cfg.clampScale(target)
	applied := newScale / s.Scale
	s.Scale = newScale

	if a, ok := anchor.resolve(cfg); ok {
		s.Position = Vec2{
			X: a.X - applied*(a.X-s.Position.X),
			Y: a.Y - applied*(a.Y-s.Position.Y),
		}
	}
	return s
}

// beginDrag records a permitted press. Any prior drag is replaced.
func (s State) beginDrag(p MousePosition) State {
	s.dragging = true
	s.dragFrom = p.Page()
	return s
}

// endDrag clears the drag, if any.
func (s State) endDrag() State {
	s.dragging = false
	s.dragFrom = Vec2{}
	return s
}

// dragTo advances a drag to the new pointer position, translating the
// content by the pointer delta. The drag origin and the position update
// together; a State never carries one without the other. No-op when not
// dragging.
func (s State) dragTo(p MousePosition) State {
	if !s.dragging {
		return s
	}
	pos := p.Page()
	delta := pos.Sub(s.dragFrom)
	s.dragFrom = pos
	s.Position = s.Position.Add(delta)
	return s
}
