package knobs

// Rectangle fills its element below the children and outlines it above
// them. The outline doubles in width while the element is hovered.
type Rectangle struct {
	BaseBehavior

	FillColor   Color
	StrokeColor Color
	StrokeWidth float32

	fill   bool
	stroke bool
	themed bool
}

// NewRectangle creates a rectangle that draws nothing until Fill or Stroke
// is set.
func NewRectangle() *Rectangle {
	return &Rectangle{}
}

// NewPanel creates a rectangle filled and outlined with theme colors.
func NewPanel() *Rectangle {
	return &Rectangle{fill: true, stroke: true, themed: true}
}

// Fill sets the fill color.
func (r *Rectangle) Fill(c Color) *Rectangle {
	r.FillColor = c
	r.fill = true
	r.themed = false
	return r
}

// Stroke sets the outline.
func (r *Rectangle) Stroke(width float32, c Color) *Rectangle {
	r.StrokeWidth = width
	r.StrokeColor = c
	r.stroke = true
	r.themed = false
	return r
}

func (r *Rectangle) ApplyTheme(theme Theme) {
	if !r.themed {
		return
	}
	r.FillColor = theme.Surface
	r.StrokeColor = theme.Outline
	r.StrokeWidth = theme.StrokeWidth
}

func (r *Rectangle) DrawBelow(el Element, canvas *Canvas, _ Resources) {
	if r.fill {
		canvas.DrawRectangle(el.Rect, Fill(r.FillColor))
	}
}

func (r *Rectangle) DrawAbove(el Element, canvas *Canvas, _ Resources) {
	if !r.stroke {
		return
	}
	width := r.StrokeWidth
	if el.Hovered() {
		width *= 2
	}
	canvas.DrawRectangle(el.Rect, Stroke(width, r.StrokeColor))
}
