// Package panzoom is an interaction model for panning and zooming a
// rectangular content box inside a fixed viewport with mouse drag and
// wheel input.
//
// The package tracks an affine transform (translation plus uniform
// scale) for one content box, interprets pointer and wheel events into
// transform updates, and exposes the result both programmatically and
// as ready-to-apply render output. Attaching real input sources and
// drawing the transformed box are collaborator concerns; adapters for
// [Ebitengine] are included but nothing in the core requires them.
//
// # Quick start
//
//	ctrl := panzoom.NewController(panzoom.Config{
//		Origin:        panzoom.OriginTopLeft,
//		ContentWidth:  800,
//		ContentHeight: 600,
//		MinScale:      0.5,
//		MaxScale:      4,
//	})
//	mouse := panzoom.NewMouseSource(ctrl)
//
//	// each tick:
//	mouse.Update()
//	screen.DrawImage(content, ctrl.DrawOptions())
//
// Or drive the controller directly:
//
//	ctrl.MoveBy(panzoom.Vec2{X: 10})
//	ctrl.ScaleBy(1.25, panzoom.ContentCenter())
//
// # Model
//
// [State] is an immutable transform value with four pure operations:
// MoveBy, MoveTo, ScaleBy, and ScaleTo. Scale operations shift the
// position so a chosen [Anchor] stays visually fixed; out-of-bounds
// scales are clamped, never rejected. [Apply] is the pure event state
// machine on top: drags translate, wheel scrolls zoom about the cursor,
// and a configurable class filter decides which pressed elements may
// begin a drag. [Controller] bundles one State with one [Config] for
// hosts that prefer a mutable handle.
//
// Viewport geometry for center-anchored zooming comes from an injected
// [GeometrySource]; [Controller.RequestViewportGeometry] runs it off
// the event path and delivers one fallible result on a channel.
//
// [Ebitengine]: https://ebitengine.org
package panzoom
