package knobs

// Image draws a picture stretched over its element. An element with zero
// size takes the image's pixel size times DefaultScale.
type Image struct {
	BaseBehavior

	Image        ImageID
	DefaultScale Vector
	Tint         Color
}

// NewImage creates an image behavior at natural size.
func NewImage(id ImageID) *Image {
	return &Image{Image: id, DefaultScale: Vector{X: 1, Y: 1}, Tint: ColorWhite}
}

func (m *Image) Layout(elements *Elements, id ElementID, res Resources) {
	el := elements.Get(id)
	if !el.Rect.Size.IsZero() {
		return
	}
	size := ImageSize(res.Image(m.Image))
	el.Rect.Size = Vector{X: size.X * m.DefaultScale.X, Y: size.Y * m.DefaultScale.Y}
}

func (m *Image) DrawBelow(el Element, canvas *Canvas, res Resources) {
	size := ImageSize(res.Image(m.Image))
	if size.X == 0 || size.Y == 0 {
		return
	}
	scale := Vector{X: el.Rect.Width() / size.X, Y: el.Rect.Height() / size.Y}
	canvas.DrawImage(m.Image, el.Rect.Position, scale, m.Tint)
}
