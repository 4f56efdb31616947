package knobs

// DrawMode selects between filled and outlined shapes.
type DrawMode uint8

const (
	DrawFill DrawMode = iota
	DrawStroke
)

// ShapeStyle describes how a shape is painted.
type ShapeStyle struct {
	Mode  DrawMode
	Width float32 // Stroke width, ignored for fills
	Color Color
}

// Fill returns a fill style.
func Fill(c Color) ShapeStyle {
	return ShapeStyle{Mode: DrawFill, Color: c}
}

// Stroke returns an outline style.
func Stroke(width float32, c Color) ShapeStyle {
	return ShapeStyle{Mode: DrawStroke, Width: width, Color: c}
}

// ArcKind selects how an arc is closed.
type ArcKind uint8

const (
	ArcPie    ArcKind = iota // Closed through the center
	ArcOpen                  // Just the curve
	ArcClosed                // Closed by the chord
)

// DrawOperation is one abstract drawing instruction. All coordinates are
// absolute: the canvas has already applied its translation stack.
type DrawOperation interface {
	isDrawOperation()
}

// RectangleOp draws an axis-aligned rectangle.
type RectangleOp struct {
	Rect  Rect
	Style ShapeStyle
}

// CircleOp draws a circle.
type CircleOp struct {
	Center Vector
	Radius float32
	Style  ShapeStyle
}

// ArcOp draws a circular arc between two angles in radians, clockwise in
// screen space (y down).
type ArcOp struct {
	Kind       ArcKind
	Center     Vector
	Radius     float32
	StartAngle float32
	EndAngle   float32
	Style      ShapeStyle
}

// PolylineOp draws connected line segments.
type PolylineOp struct {
	Points []Vector
	Style  ShapeStyle
}

// PolygonOp draws a closed polygon.
type PolygonOp struct {
	Points []Vector
	Style  ShapeStyle
}

// TextOp draws a string with its top-left corner at Position. Scale is the
// font size in pixels along each axis.
type TextOp struct {
	Font     FontID
	Text     string
	Position Vector
	Scale    Vector
	Color    Color
}

// ImageOp draws an image with its top-left corner at Position, scaled per
// axis and tinted by Color.
type ImageOp struct {
	Image    ImageID
	Position Vector
	Scale    Vector
	Color    Color
}

func (RectangleOp) isDrawOperation() {}
func (CircleOp) isDrawOperation() {}
func (ArcOp) isDrawOperation() {}
func (PolylineOp) isDrawOperation() {}
func (PolygonOp) isDrawOperation() {}
func (TextOp) isDrawOperation() {}
func (ImageOp) isDrawOperation() {}

// Canvas is an append-only list of draw operations for one frame, plus a
// translation stack that composes nested coordinate offsets.
type Canvas struct {
	Operations []DrawOperation

	translations []Vector // accumulated offsets, top is current
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		Operations:   make([]DrawOperation, 0, 64),
		translations: make([]Vector, 0, 8),
	}
}

// Translation returns the current accumulated offset.
func (c *Canvas) Translation() Vector {
	if n := len(c.translations); n > 0 {
		return c.translations[n-1]
	}
	return Vector{}
}

// PushTranslation offsets subsequent operations by v on top of the current
// translation.
func (c *Canvas) PushTranslation(v Vector) {
	c.translations = append(c.translations, c.Translation().Add(v))
}

// PopTranslation restores the previous translation.
func (c *Canvas) PopTranslation() {
	if n := len(c.translations); n > 0 {
		c.translations = c.translations[:n-1]
	}
}

// DrawRectangle appends a rectangle.
func (c *Canvas) DrawRectangle(r Rect, style ShapeStyle) {
	c.Operations = append(c.Operations, RectangleOp{Rect: r.Translated(c.Translation()), Style: style})
}

// DrawCircle appends a circle.
func (c *Canvas) DrawCircle(center Vector, radius float32, style ShapeStyle) {
	c.Operations = append(c.Operations, CircleOp{
		Center: center.Add(c.Translation()),
		Radius: radius,
		Style:  style,
	})
}

// DrawArc appends an arc.
func (c *Canvas) DrawArc(kind ArcKind, center Vector, radius, startAngle, endAngle float32, style ShapeStyle) {
	c.Operations = append(c.Operations, ArcOp{
		Kind:       kind,
		Center:     center.Add(c.Translation()),
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Style:      style,
	})
}

// DrawPolyline appends connected line segments. points is copied.
func (c *Canvas) DrawPolyline(points []Vector, style ShapeStyle) {
	c.Operations = append(c.Operations, PolylineOp{Points: c.translate(points), Style: style})
}

// DrawPolygon appends a closed polygon. points is copied.
func (c *Canvas) DrawPolygon(points []Vector, style ShapeStyle) {
	c.Operations = append(c.Operations, PolygonOp{Points: c.translate(points), Style: style})
}

// DrawText appends a text run.
func (c *Canvas) DrawText(font FontID, text string, position, scale Vector, color Color) {
	c.Operations = append(c.Operations, TextOp{
		Font:     font,
		Text:     text,
		Position: position.Add(c.Translation()),
		Scale:    scale,
		Color:    color,
	})
}

// DrawImage appends an image.
func (c *Canvas) DrawImage(image ImageID, position, scale Vector, color Color) {
	c.Operations = append(c.Operations, ImageOp{
		Image:    image,
		Position: position.Add(c.Translation()),
		Scale:    scale,
		Color:    color,
	})
}

func (c *Canvas) translate(points []Vector) []Vector {
	t := c.Translation()
	out := make([]Vector, len(points))
	for i, p := range points {
		out[i] = p.Add(t)
	}
	return out
}
