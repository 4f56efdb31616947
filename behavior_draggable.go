package knobs

import "github.com/chewxy/math32"

// SnapConfig configures where a dragged element settles on release.
type SnapConfig struct {
	GridSize   float32 // Grid size for grid snapping (0 = disabled)
	EdgeMargin float32 // Snap to the parent's edges within this margin
}

// Draggable moves its element with the pointer while Button holds it.
// Positions stay relative to the parent; with ClampToParent the element
// cannot leave the parent's bounds.
type Draggable struct {
	BaseBehavior

	Button        MouseButton
	Snap          SnapConfig
	ClampToParent bool

	dragging bool
	start    Vector // element position at press
	moved    Vector // accumulated pointer delta
}

// NewDraggable creates a Draggable moved by the left button.
func NewDraggable() *Draggable {
	return &Draggable{Button: MouseButtonLeft}
}

// Dragging returns true between press and release.
func (d *Draggable) Dragging() bool {
	return d.dragging
}

func (d *Draggable) On(ev Event, elements *Elements, _ *EventQueue) {
	switch e := ev.(type) {
	case Press:
		if e.Button != d.Button {
			return
		}
		d.dragging = true
		d.start = elements.Get(e.ID).Rect.Position
		d.moved = Vector{}

	case Drag:
		if !d.dragging || e.Button != d.Button {
			return
		}
		d.moved = d.moved.Add(e.Delta)
		el := elements.Get(e.ID)
		el.Rect.Position = d.start.Add(d.moved)
		d.constrain(elements, el)

	case Release:
		if !d.dragging || e.Button != d.Button {
			return
		}
		d.dragging = false
		el := elements.Get(e.ID)
		d.snapToEdges(elements, el)
		d.snapToGrid(el)
		d.constrain(elements, el)
	}
}

func (d *Draggable) parentSize(elements *Elements, el *Element) (Vector, bool) {
	parent, ok := el.Parent()
	if !ok {
		return Vector{}, false
	}
	return elements.Get(parent).Rect.Size, true
}

func (d *Draggable) constrain(elements *Elements, el *Element) {
	if !d.ClampToParent {
		return
	}
	bounds, ok := d.parentSize(elements, el)
	if !ok {
		return
	}
	el.Rect.Position.X = clampf(el.Rect.Position.X, 0, math32.Max(0, bounds.X-el.Rect.Size.X))
	el.Rect.Position.Y = clampf(el.Rect.Position.Y, 0, math32.Max(0, bounds.Y-el.Rect.Size.Y))
}

func (d *Draggable) snapToEdges(elements *Elements, el *Element) {
	margin := d.Snap.EdgeMargin
	if margin <= 0 {
		return
	}
	bounds, ok := d.parentSize(elements, el)
	if !ok {
		return
	}

	pos := &el.Rect.Position
	if math32.Abs(pos.X) < margin {
		pos.X = 0
	}
	if math32.Abs(pos.Y) < margin {
		pos.Y = 0
	}
	if right := bounds.X - el.Rect.Size.X; math32.Abs(pos.X-right) < margin {
		pos.X = right
	}
	if bottom := bounds.Y - el.Rect.Size.Y; math32.Abs(pos.Y-bottom) < margin {
		pos.Y = bottom
	}
}

func (d *Draggable) snapToGrid(el *Element) {
	grid := d.Snap.GridSize
	if grid <= 0 {
		return
	}
	el.Rect.Position.X = math32.Round(el.Rect.Position.X/grid) * grid
	el.Rect.Position.Y = math32.Round(el.Rect.Position.Y/grid) * grid
}
