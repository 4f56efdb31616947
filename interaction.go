package knobs

import "log/slog"

// OnMoveMouse updates hover state for a pointer at (x, y) in root space,
// having moved by (dx, dy). Elements that lost hover get Unhover first,
// then the newly hovered element gets Hover, then every held element gets a
// Drag for each button holding it.
func (g *Gui) OnMoveMouse(x, y, dx, dy float32) {
	g.pointer = Vector{X: x, Y: y}

	target, _ := g.topmostAt(g.pointer)

	var gained ElementID
	var lost []ElementID
	for id, el := range g.elements.All() {
		want := id == target
		switch {
		case el.hovered && !want:
			el.hovered = false
			lost = append(lost, id)
		case !el.hovered && want:
			el.hovered = true
			gained = id
		}
	}

	for _, id := range lost {
		g.logger.Debug("unhover", slog.String("element", id.String()))
		g.Emit(Unhover{ID: id}, id)
	}
	if gained.IsValid() {
		g.logger.Debug("hover", slog.String("element", gained.String()))
		g.Emit(Hover{ID: gained, Position: g.relative(gained)}, gained)
	}

	delta := Vector{X: dx, Y: dy}
	for button := range MouseButtonCount {
		id, ok := g.HeldBy(button)
		if !ok {
			continue
		}
		g.Emit(Drag{ID: id, Button: button, Position: g.relative(id), Delta: delta}, id)
	}
}

// OnPressMouseButton makes the hovered element, if any, the holder of button
// and sends it Press.
func (g *Gui) OnPressMouseButton(button MouseButton) {
	if !button.valid() {
		return
	}

	// A press without a release in between moves the hold.
	if prev, ok := g.HeldBy(button); ok {
		g.elements.Get(prev).held[button] = false
	}

	id, ok := g.Hovered()
	if !ok {
		return
	}
	g.elements.Get(id).held[button] = true

	g.logger.Debug("press", slog.String("element", id.String()), slog.String("button", button.String()))
	g.Emit(Press{ID: id, Button: button, Position: g.relative(id)}, id)
}

// OnReleaseMouseButton releases the element holding button and sends it
// Release, followed by Click when the pointer is still over it.
func (g *Gui) OnReleaseMouseButton(button MouseButton) {
	if !button.valid() {
		return
	}

	id, ok := g.HeldBy(button)
	if !ok {
		return
	}
	el := g.elements.Get(id)
	el.held[button] = false
	click := el.hovered
	pos := g.relative(id)

	g.logger.Debug("release", slog.String("element", id.String()), slog.String("button", button.String()), slog.Bool("click", click))
	g.Emit(Release{ID: id, Button: button, Position: pos}, id)
	if click {
		g.Emit(Click{ID: id, Button: button, Position: pos}, id)
	}
}

// Hovered returns the element currently under the pointer.
func (g *Gui) Hovered() (ElementID, bool) {
	for id, el := range g.elements.All() {
		if el.hovered {
			return id, true
		}
	}
	return ElementID{}, false
}

// HeldBy returns the element holding button.
func (g *Gui) HeldBy(button MouseButton) (ElementID, bool) {
	if !button.valid() {
		return ElementID{}, false
	}
	for id, el := range g.elements.All() {
		if el.held[button] {
			return id, true
		}
	}
	return ElementID{}, false
}

// Pointer returns the last pointer position passed to OnMoveMouse.
func (g *Gui) Pointer() Vector {
	return g.pointer
}

// ElementAt returns the topmost element containing p, in root space.
func (g *Gui) ElementAt(p Vector) (ElementID, bool) {
	return g.topmostAt(p)
}

func (g *Gui) topmostAt(p Vector) (ElementID, bool) {
	var found ElementID
	hitTest(&g.elements, g.elements.Tree(ElementID{}), p, Vector{}, &found)
	return found, found.IsValid()
}

// hitTest visits nodes topmost-first: later siblings before earlier ones,
// children before their parent. The first node containing p wins and blocks
// everything visited after it.
func hitTest(es *Elements, nodes []TreeNode, p, origin Vector, found *ElementID) {
	for i := len(nodes) - 1; i >= 0 && !found.IsValid(); i-- {
		el := es.Get(nodes[i].ID)
		local := el.Rect.Translated(origin)
		hitTest(es, nodes[i].Children, p, local.Position, found)
		if !found.IsValid() && local.Contains(p) {
			*found = nodes[i].ID
		}
	}
}

// relative returns the last pointer position in id's coordinate space.
func (g *Gui) relative(id ElementID) Vector {
	return g.pointer.Sub(g.elements.AbsolutePosition(id))
}
