package panzoom

import (
	"errors"
	"testing"
)

func TestControllerDefaults(t *testing.T) {
	c := NewController(Config{})
	if c.Scale() != 1 {
		t.Errorf("Scale = %v, want 1", c.Scale())
	}
	if c.Position() != (Vec2{}) {
		t.Errorf("Position = %v, want origin", c.Position())
	}
	if c.Dragging() {
		t.Error("new controller reports a drag in progress")
	}
	if _, ok := c.DragOrigin(); ok {
		t.Error("new controller reports a drag origin")
	}
	if c.Origin() != OriginCenter {
		t.Errorf("Origin = %v, want OriginCenter", c.Origin())
	}
}

func TestControllerMoveToGetterRoundtrip(t *testing.T) {
	c := NewController(Config{Origin: OriginCenter, Offset: Vec2{X: 10, Y: 20}})
	p := Vec2{X: 250, Y: -30}
	c.MoveTo(p)
	if got := c.Position(); got != p {
		t.Errorf("Position after MoveTo = %v, want %v", got, p)
	}
}

func TestControllerScaleOps(t *testing.T) {
	c := NewController(Config{MinScale: 0.5, MaxScale: 2})
	c.ScaleBy(3, ContentCenter())
	if c.Scale() != 2 {
		t.Errorf("Scale after clamped ScaleBy = %v, want 2", c.Scale())
	}
	c.ScaleTo(0.75, ContentCenter())
	if c.Scale() != 0.75 {
		t.Errorf("Scale after ScaleTo = %v, want 0.75", c.Scale())
	}
}

func TestControllerHandleDrag(t *testing.T) {
	c := NewController(Config{})
	c.Handle(Pressed(CapturedAt(100, 100), nil))
	c.Handle(Moved(CapturedAt(80, 90)))
	if got := c.Position(); got != (Vec2{X: -20, Y: -10}) {
		t.Errorf("Position = %v, want {-20 -10}", got)
	}
	if !c.Dragging() {
		t.Error("not dragging mid-drag")
	}
	c.Handle(Released())
	if c.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestControllerReset(t *testing.T) {
	c := NewController(Config{})
	c.Handle(Pressed(CapturedAt(0, 0), nil))
	c.MoveBy(Vec2{X: 40, Y: 40})
	c.ScaleBy(2, ContentCenter())

	c.Reset()
	if c.Scale() != 1 || c.Position() != (Vec2{}) {
		t.Errorf("after Reset: scale %v position %v, want identity", c.Scale(), c.Position())
	}
	if c.Dragging() {
		t.Error("Reset left a drag in progress")
	}
}

func TestControllerStateSnapshotIsDetached(t *testing.T) {
	c := NewController(Config{})
	snap := c.State()
	c.MoveBy(Vec2{X: 100})
	if snap.Position != (Vec2{}) {
		t.Error("snapshot mutated by later controller call")
	}
}

func TestRequestViewportGeometrySuccess(t *testing.T) {
	want := Rect{X: 10, Y: 20, Width: 800, Height: 600}
	c := NewController(Config{
		Geometry: func() (Rect, error) { return want, nil },
	})

	res := <-c.RequestViewportGeometry()
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Viewport != want {
		t.Errorf("Viewport = %v, want %v", res.Viewport, want)
	}
}

func TestRequestViewportGeometryFailure(t *testing.T) {
	wantErr := errors.New("element not mounted")
	c := NewController(Config{
		Geometry: func() (Rect, error) { return Rect{}, wantErr },
	})

	res := <-c.RequestViewportGeometry()
	if !errors.Is(res.Err, wantErr) {
		t.Errorf("Err = %v, want %v", res.Err, wantErr)
	}
}

func TestRequestViewportGeometryNoSource(t *testing.T) {
	c := NewController(Config{})
	res := <-c.RequestViewportGeometry()
	if !errors.Is(res.Err, ErrNoGeometrySource) {
		t.Errorf("Err = %v, want ErrNoGeometrySource", res.Err)
	}
}

func TestGeometryFeedsViewportCenterZoom(t *testing.T) {
	viewport := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	c := NewController(Config{
		Geometry: func() (Rect, error) { return viewport, nil },
	})

	res := <-c.RequestViewportGeometry()
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	c.ScaleBy(2, ViewportCenter(res.Viewport))
	if c.Scale() != 2 {
		t.Fatalf("Scale = %v, want 2", c.Scale())
	}
	// Anchored at (400, 300): newPos = a − 2·(a − 0) = −a.
	want := Vec2{X: -400, Y: -300}
	if !vecApproxEqual(c.Position(), want, epsilon) {
		t.Errorf("Position = %v, want %v", c.Position(), want)
	}
}
