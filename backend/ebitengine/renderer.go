// Package ebitengine draws knobs canvases on Ebitengine images and runs a
// knobs.Gui as an ebiten.Game.
package ebitengine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/knobs-audio/knobs"
)

// Renderer paints canvas operations with the vector and text/v2 packages.
// Fonts and images are converted on first use and cached.
type Renderer struct {
	AntiAlias bool

	resources knobs.Resources
	faces     map[knobs.FontID]*text.GoTextFaceSource
	images    map[knobs.ImageID]*ebiten.Image

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer reading fonts and images from resources.
func NewRenderer(resources knobs.Resources) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Renderer{
		AntiAlias: true,
		resources: resources,
		faces:     make(map[knobs.FontID]*text.GoTextFaceSource),
		images:    make(map[knobs.ImageID]*ebiten.Image),
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw paints every operation of canvas onto dst in order.
func (r *Renderer) Draw(dst *ebiten.Image, canvas *knobs.Canvas) error {
	for _, op := range canvas.Operations {
		switch op := op.(type) {
		case knobs.RectangleOp:
			x, y, w, h := op.Rect.Position.X, op.Rect.Position.Y, op.Rect.Size.X, op.Rect.Size.Y
			if op.Style.Mode == knobs.DrawFill {
				vector.DrawFilledRect(dst, x, y, w, h, op.Style.Color, r.AntiAlias)
			} else {
				vector.StrokeRect(dst, x, y, w, h, op.Style.Width, op.Style.Color, r.AntiAlias)
			}

		case knobs.CircleOp:
			if op.Style.Mode == knobs.DrawFill {
				vector.DrawFilledCircle(dst, op.Center.X, op.Center.Y, op.Radius, op.Style.Color, r.AntiAlias)
			} else {
				vector.StrokeCircle(dst, op.Center.X, op.Center.Y, op.Radius, op.Style.Width, op.Style.Color, r.AntiAlias)
			}

		case knobs.ArcOp:
			var path vector.Path
			switch op.Kind {
			case knobs.ArcPie:
				path.MoveTo(op.Center.X, op.Center.Y)
				path.Arc(op.Center.X, op.Center.Y, op.Radius, op.StartAngle, op.EndAngle, vector.Clockwise)
				path.Close()
			case knobs.ArcOpen:
				path.Arc(op.Center.X, op.Center.Y, op.Radius, op.StartAngle, op.EndAngle, vector.Clockwise)
			case knobs.ArcClosed:
				path.Arc(op.Center.X, op.Center.Y, op.Radius, op.StartAngle, op.EndAngle, vector.Clockwise)
				path.Close()
			}
			style := op.Style
			if op.Kind == knobs.ArcOpen {
				style.Mode = knobs.DrawStroke
			}
			r.drawPath(dst, &path, style)

		case knobs.PolylineOp:
			style := op.Style
			style.Mode = knobs.DrawStroke
			r.drawPath(dst, pathOf(op.Points, false), style)

		case knobs.PolygonOp:
			r.drawPath(dst, pathOf(op.Points, true), op.Style)

		case knobs.TextOp:
			if err := r.drawText(dst, op); err != nil {
				return err
			}

		case knobs.ImageOp:
			img := r.image(op.Image)
			opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
			opts.GeoM.Scale(float64(op.Scale.X), float64(op.Scale.Y))
			opts.GeoM.Translate(float64(op.Position.X), float64(op.Position.Y))
			opts.ColorScale.ScaleWithColor(op.Color)
			dst.DrawImage(img, opts)
		}
	}
	return nil
}

func pathOf(points []knobs.Vector, closed bool) *vector.Path {
	var path vector.Path
	for i, p := range points {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	if closed {
		path.Close()
	}
	return &path
}

func (r *Renderer) drawPath(dst *ebiten.Image, path *vector.Path, style knobs.ShapeStyle) {
	if style.Mode == knobs.DrawFill {
		r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	} else {
		width := style.Width
		if width <= 0 {
			width = 1
		}
		r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
			Width:    width,
			LineJoin: vector.LineJoinRound,
		})
	}

	c := style.Color
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = c.R
		r.vertices[i].ColorG = c.G
		r.vertices[i].ColorB = c.B
		r.vertices[i].ColorA = c.A
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: r.AntiAlias}
	if style.Mode == knobs.DrawFill {
		opts.FillRule = ebiten.NonZero
	}
	dst.DrawTriangles(r.vertices, r.indices, r.white, opts)
}

func (r *Renderer) drawText(dst *ebiten.Image, op knobs.TextOp) error {
	if op.Scale.X <= 0 || op.Scale.Y <= 0 || op.Text == "" {
		return nil
	}

	src, ok := r.faces[op.Font]
	if !ok {
		var err error
		src, err = text.NewGoTextFaceSource(bytes.NewReader(r.resources.Font(op.Font).Data()))
		if err != nil {
			return fmt.Errorf("load font %v: %w", op.Font, err)
		}
		r.faces[op.Font] = src
	}

	face := &text.GoTextFace{Source: src, Size: float64(op.Scale.Y)}
	opts := &text.DrawOptions{}
	opts.GeoM.Scale(float64(op.Scale.X/op.Scale.Y), 1)
	opts.GeoM.Translate(float64(op.Position.X), float64(op.Position.Y))
	opts.ColorScale.ScaleWithColor(op.Color)
	text.Draw(dst, op.Text, face, opts)
	return nil
}

func (r *Renderer) image(id knobs.ImageID) *ebiten.Image {
	if img, ok := r.images[id]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(r.resources.Image(id))
	r.images[id] = img
	return img
}
