package knobs

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonCount
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

func (b MouseButton) valid() bool {
	return b >= 0 && b < MouseButtonCount
}

// PointerTarget receives pointer input already reduced to moves and
// button transitions. *Gui implements it.
type PointerTarget interface {
	OnMoveMouse(x, y, dx, dy float32)
	OnPressMouseButton(button MouseButton)
	OnReleaseMouseButton(button MouseButton)
}

// Pointer converts sampled cursor positions and button levels, as polled
// from a windowing library each frame or delivered by callbacks, into the
// move/press/release calls a PointerTarget expects.
type Pointer struct {
	target PointerTarget
	pos    Vector
	seen   bool
	down   [MouseButtonCount]bool
}

// NewPointer creates a Pointer forwarding to target.
func NewPointer(target PointerTarget) *Pointer {
	return &Pointer{target: target}
}

// MoveTo records a cursor sample. The target is notified only when the
// position changed; the first sample reports a zero delta.
func (p *Pointer) MoveTo(x, y float32) {
	next := Vector{X: x, Y: y}
	if p.seen && next == p.pos {
		return
	}
	delta := Vector{}
	if p.seen {
		delta = next.Sub(p.pos)
	}
	p.pos = next
	p.seen = true
	p.target.OnMoveMouse(x, y, delta.X, delta.Y)
}

// SetButton records the level of a button and forwards edges.
func (p *Pointer) SetButton(button MouseButton, down bool) {
	if !button.valid() {
		return
	}

	wasDown := p.down[button]
	p.down[button] = down

	if down && !wasDown {
		p.target.OnPressMouseButton(button)
	}
	if !down && wasDown {
		p.target.OnReleaseMouseButton(button)
	}
}

// Position returns the last recorded cursor position.
func (p *Pointer) Position() Vector {
	return p.pos
}

// Down returns true if the button is currently held.
func (p *Pointer) Down(button MouseButton) bool {
	if !button.valid() {
		return false
	}
	return p.down[button]
}
