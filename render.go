package panzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// CSSTransform renders the current transform as a CSS-style transform
// string: translation in pixels, scale unitless. The translation is the
// internal position, i.e. the value a stylesheet would apply to the
// content box inside the viewport.
func (c *Controller) CSSTransform() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g)",
		c.state.Position.X, c.state.Position.Y, c.state.Scale)
}

// GeoM returns the current transform as an ebiten.GeoM for drawing the
// content box image into the viewport. The box scales about its visual
// center in both origin modes; the configured origin only decides which
// point of the box Position refers to. ContentWidth and ContentHeight
// must be set for the geometry to come out right.
func (c *Controller) GeoM() ebiten.GeoM {
	w := c.cfg.ContentWidth
	h := c.cfg.ContentHeight
	s := c.state.Scale
	p := c.state.Position

	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(s, s)
	switch c.cfg.Origin {
	case OriginTopLeft:
		// Position is the unscaled box's top-left corner.
		g.Translate(w/2+p.X, h/2+p.Y)
	default:
		// Position is the box's center point.
		g.Translate(p.X, p.Y)
	}
	return g
}

// DrawOptions returns draw options carrying GeoM, ready to render the
// content box image.
func (c *Controller) DrawOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = c.GeoM()
	return op
}
