package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// MouseSource adapts Ebitengine mouse input into controller events.
// Call Update once per game tick; it polls the cursor, the left button,
// and the wheel, synthesizes the corresponding events, and feeds them to
// the controller. The core never depends on this adapter; any event
// source that produces Event values works equally well.
type MouseSource struct {
	controller *Controller

	// ClassesAt is the injected hit-tester: given a page-space point it
	// returns the class list of the element under the pointer, which
	// press events carry to the drag filter. When nil, presses carry no
	// classes.
	ClassesAt func(x, y float64) []string

	down         bool
	lastX, lastY float64
}

// NewMouseSource creates an adapter feeding the given controller.
func NewMouseSource(c *Controller) *MouseSource {
	return &MouseSource{controller: c}
}

// Update polls the current mouse state and delivers events. Events are
// processed strictly in order, one fully applied before the next.
func (m *MouseSource) Update() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !m.down:
		var classes []string
		if m.ClassesAt != nil {
			classes = m.ClassesAt(x, y)
		}
		m.controller.Handle(Pressed(CapturedAt(x, y), classes))
	case !pressed && m.down:
		m.controller.Handle(Released())
	case x != m.lastX || y != m.lastY:
		m.controller.Handle(Moved(CapturedAt(x, y)))
	}
	m.down = pressed
	m.lastX, m.lastY = x, y

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		if dir := ClassifyWheel(dx, dy); dir != WheelNone {
			m.controller.Handle(Scrolled(CapturedAt(x, y), dir))
		}
	}
}
