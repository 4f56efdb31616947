package knobs

// Text draws a string at its element's origin. An element with zero size is
// sized to the measured text; a larger or smaller element stretches it.
type Text struct {
	BaseBehavior

	Font  FontID
	Text  string
	Scale Vector // pixel size per axis
	Color Color

	themed bool
}

// NewText creates a text behavior colored by the theme.
func NewText(font FontID, text string, scale Vector) *Text {
	return &Text{Font: font, Text: text, Scale: scale, Color: ColorWhite, themed: true}
}

// WithColor fixes the text color, ignoring the theme.
func (t *Text) WithColor(c Color) *Text {
	t.Color = c
	t.themed = false
	return t
}

func (t *Text) ApplyTheme(theme Theme) {
	if t.themed {
		t.Color = theme.Text
	}
}

func (t *Text) Layout(elements *Elements, id ElementID, res Resources) {
	el := elements.Get(id)
	if el.Rect.Size.IsZero() {
		el.Rect.Size = res.Font(t.Font).Measure(t.Text, t.Scale)
	}
}

func (t *Text) DrawBelow(el Element, canvas *Canvas, res Resources) {
	scale := t.Scale
	measured := res.Font(t.Font).Measure(t.Text, t.Scale)
	if measured.X > 0 {
		scale.X *= el.Rect.Width() / measured.X
	}
	if measured.Y > 0 {
		scale.Y *= el.Rect.Height() / measured.Y
	}
	canvas.DrawText(t.Font, t.Text, el.Rect.Position, scale, t.Color)
}
