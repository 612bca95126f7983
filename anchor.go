package panzoom

type anchorKind uint8

const (
	anchorContentCenter anchorKind = iota
	anchorPoint
	anchorViewportCenter
)

// Anchor names the point that must stay visually stationary while the
// scale changes. Construct one with At, ViewportCenter, or ContentCenter;
// the zero value is ContentCenter.
type Anchor struct {
	kind     anchorKind
	point    Vec2
	viewport Rect
}

// At anchors the zoom at an explicit captured pointer position, so the
// content under the cursor stays put. This is what wheel zooming uses.
func At(p MousePosition) Anchor {
	return Anchor{kind: anchorPoint, point: p.Page()}
}

// ViewportCenter anchors the zoom at the center of the given viewport
// geometry. The geometry comes from a GeometrySource query; zooming
// about the viewport center without having obtained geometry first is a
// caller bug, not something the core can detect.
func ViewportCenter(v Rect) Anchor {
	return Anchor{kind: anchorViewportCenter, viewport: v}
}

// ContentCenter anchors the zoom at the content box's own reference
// point. Position is unaffected; only the scale changes.
func ContentCenter() Anchor {
	return Anchor{kind: anchorContentCenter}
}

// resolve returns the anchor coordinate in the content box's internal
// coordinate space, ready for the compensation formula. ok is false for
// ContentCenter, which needs no position shift at all.
func (a Anchor) resolve(cfg Config) (Vec2, bool) {
	switch a.kind {
	case anchorPoint:
		return cfg.anchorCoord(a.point), true
	case anchorViewportCenter:
		return cfg.anchorCoord(a.viewport.Center()), true
	default:
		return Vec2{}, false
	}
}
