package knobs

import "log/slog"

// Draw lays out every element, children before parents, and then collects
// the draw operations of all behaviors into a fresh Canvas. Each element
// contributes DrawBelow, then its children, then DrawAbove.
func (g *Gui) Draw() *Canvas {
	roots := g.elements.Tree(ElementID{})
	g.layout(roots)

	canvas := NewCanvas()
	g.drawNodes(roots, canvas)

	g.logger.Debug("frame", slog.Int("elements", g.elements.Len()), slog.Int("operations", len(canvas.Operations)))
	return canvas
}

// Layout runs only the layout pass.
func (g *Gui) Layout() {
	g.layout(g.elements.Tree(ElementID{}))
}

func (g *Gui) layout(nodes []TreeNode) {
	for _, node := range nodes {
		g.layout(node.Children)
		for _, b := range g.behaviors[node.ID.index()] {
			b.Layout(&g.elements, node.ID, g.resources)
		}
	}
}

func (g *Gui) drawNodes(nodes []TreeNode, canvas *Canvas) {
	for _, node := range nodes {
		el := *g.elements.Get(node.ID)
		behaviors := g.behaviors[node.ID.index()]

		for _, b := range behaviors {
			b.DrawBelow(el, canvas, g.resources)
		}

		canvas.PushTranslation(el.Rect.Position)
		g.drawNodes(node.Children, canvas)
		canvas.PopTranslation()

		for _, b := range behaviors {
			b.DrawAbove(el, canvas, g.resources)
		}
	}
}

// DrawDebug outlines every element in root space: yellow while held by the
// left button, red while hovered, white otherwise.
func (g *Gui) DrawDebug(canvas *Canvas) {
	for id, el := range g.elements.All() {
		color := ColorWhite
		switch {
		case el.held[MouseButtonLeft]:
			color = ColorYellow
		case el.hovered:
			color = ColorRed
		}
		canvas.DrawRectangle(g.elements.AbsoluteRect(id), Stroke(1, color))
	}
}
