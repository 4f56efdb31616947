package drawlist

import "github.com/knobs-audio/knobs"

// TextureSource resolves canvas resources to textures the renderer has
// uploaded.
type TextureSource interface {
	// GlyphAtlas returns the atlas used for font and the texture it lives in.
	GlyphAtlas(font knobs.FontID) (atlas *GlyphAtlas, texture uint32, ok bool)
	// ImageTexture returns the texture for image and its pixel size.
	ImageTexture(image knobs.ImageID) (texture uint32, width, height int, ok bool)
}

// Tessellate appends every operation of canvas to dl in order. Text and
// images are skipped when textures is nil or cannot resolve them.
func Tessellate(dl *DrawList, canvas *knobs.Canvas, textures TextureSource) {
	for _, op := range canvas.Operations {
		switch op := op.(type) {
		case knobs.RectangleOp:
			dl.SetTexture(0)
			c := PackColor(op.Style.Color)
			r := op.Rect
			if op.Style.Mode == knobs.DrawFill {
				dl.AddRect(r.Position.X, r.Position.Y, r.Size.X, r.Size.Y, c)
			} else {
				dl.AddRectOutline(r.Position.X, r.Position.Y, r.Size.X, r.Size.Y, c, op.Style.Width)
			}

		case knobs.CircleOp:
			dl.SetTexture(0)
			c := PackColor(op.Style.Color)
			if op.Style.Mode == knobs.DrawFill {
				dl.AddCircle(op.Center.X, op.Center.Y, op.Radius, c)
			} else {
				dl.AddCircleOutline(op.Center.X, op.Center.Y, op.Radius, c, op.Style.Width)
			}

		case knobs.ArcOp:
			dl.SetTexture(0)
			dl.AddArc(op.Kind, op.Center.X, op.Center.Y, op.Radius, op.StartAngle, op.EndAngle,
				PackColor(op.Style.Color), strokeWidth(op.Style), op.Style.Mode == knobs.DrawFill)

		case knobs.PolylineOp:
			dl.SetTexture(0)
			dl.AddPolyline(op.Points, PackColor(op.Style.Color), strokeWidth(op.Style), false)

		case knobs.PolygonOp:
			dl.SetTexture(0)
			c := PackColor(op.Style.Color)
			if op.Style.Mode == knobs.DrawFill {
				dl.AddPolygon(op.Points, c)
			} else {
				dl.AddPolyline(op.Points, c, op.Style.Width, true)
			}

		case knobs.TextOp:
			if textures == nil {
				continue
			}
			atlas, tex, ok := textures.GlyphAtlas(op.Font)
			if !ok {
				continue
			}
			dl.SetTexture(tex)
			dl.AddText(atlas, op.Position.X, op.Position.Y, op.Text, op.Scale, PackColor(op.Color))

		case knobs.ImageOp:
			if textures == nil {
				continue
			}
			tex, w, h, ok := textures.ImageTexture(op.Image)
			if !ok {
				continue
			}
			dl.SetTexture(tex)
			dl.AddImage(op.Position.X, op.Position.Y, float32(w)*op.Scale.X, float32(h)*op.Scale.Y, PackColor(op.Color))
		}
	}
}

// strokeWidth returns the line width for shapes drawn as lines even when
// filled, such as polylines.
func strokeWidth(style knobs.ShapeStyle) float32 {
	if style.Mode == knobs.DrawFill || style.Width <= 0 {
		return 1
	}
	return style.Width
}
