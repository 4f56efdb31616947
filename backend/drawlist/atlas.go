package drawlist

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/knobs-audio/knobs"
)

const (
	atlasWidth   = 512
	atlasPadding = 1
	firstRune    = ' '
	lastRune     = '~'
)

// Glyph locates one rasterized glyph in a GlyphAtlas. Offset and Size are in
// atlas pixels; Offset is relative to the pen position on the top line.
type Glyph struct {
	Offset  knobs.Vector
	Size    knobs.Vector
	Advance float32
	UV      [4]float32 // u0, v0, u1, v1
}

// GlyphAtlas is a single-channel texture holding the printable ASCII glyphs
// of a font rendered at one pixel size. Runes outside the atlas draw as '?'.
type GlyphAtlas struct {
	Size  float32
	Image *image.Alpha

	glyphs map[rune]Glyph
}

// NewGlyphAtlas rasterizes font at size pixels.
func NewGlyphAtlas(font *knobs.Font, size float32) (*GlyphAtlas, error) {
	face := font.Face(size)
	if face == nil {
		return nil, errors.New("drawlist: glyph atlas size must be positive")
	}
	dot := fixed.Point26_6{Y: face.Metrics().Ascent}

	type placed struct {
		r       rune
		dst     image.Rectangle
		bounds  image.Rectangle
		advance fixed.Int26_6
	}

	var glyphs []placed
	var x, y, rowHeight int
	for r := rune(firstRune); r <= lastRune; r++ {
		dr, _, _, advance, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if x+w+atlasPadding > atlasWidth {
			x = 0
			y += rowHeight + atlasPadding
			rowHeight = 0
		}
		glyphs = append(glyphs, placed{
			r:       r,
			dst:     image.Rect(x, y, x+w, y+h),
			bounds:  dr,
			advance: advance,
		})
		x += w + atlasPadding
		rowHeight = max(rowHeight, h)
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("drawlist: font has no printable glyphs")
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, y+rowHeight+atlasPadding))
	atlas := &GlyphAtlas{Size: size, Image: img, glyphs: make(map[rune]Glyph, len(glyphs))}
	w := float32(img.Bounds().Dx())
	h := float32(img.Bounds().Dy())

	for _, g := range glyphs {
		_, mask, maskp, _, _ := face.Glyph(dot, g.r)
		if mask != nil && !g.dst.Empty() {
			draw.DrawMask(img, g.dst, image.Opaque, image.Point{}, mask, maskp, draw.Src)
		}
		atlas.glyphs[g.r] = Glyph{
			Offset:  knobs.Vector{X: float32(g.bounds.Min.X), Y: float32(g.bounds.Min.Y)},
			Size:    knobs.Vector{X: float32(g.dst.Dx()), Y: float32(g.dst.Dy())},
			Advance: float32(g.advance) / 64,
			UV: [4]float32{
				float32(g.dst.Min.X) / w, float32(g.dst.Min.Y) / h,
				float32(g.dst.Max.X) / w, float32(g.dst.Max.Y) / h,
			},
		}
	}

	return atlas, nil
}

// Glyph returns the atlas entry for r.
func (a *GlyphAtlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	g, ok := a.glyphs['?']
	return g, ok
}
