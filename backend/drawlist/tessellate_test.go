package drawlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/knobs-audio/knobs"
	"github.com/knobs-audio/knobs/backend/drawlist"
)

func newAtlas(t *testing.T, size float32) *drawlist.GlyphAtlas {
	t.Helper()
	font, err := knobs.ParseFont(goregular.TTF)
	require.NoError(t, err)
	atlas, err := drawlist.NewGlyphAtlas(font, size)
	require.NoError(t, err)
	return atlas
}

func TestGlyphAtlas(t *testing.T) {
	atlas := newAtlas(t, 24)

	a, ok := atlas.Glyph('A')
	require.True(t, ok)
	assert.Greater(t, a.Size.X, float32(0))
	assert.Greater(t, a.Size.Y, float32(0))
	assert.Greater(t, a.Advance, float32(0))
	for _, uv := range a.UV {
		assert.GreaterOrEqual(t, uv, float32(0))
		assert.LessOrEqual(t, uv, float32(1))
	}

	space, ok := atlas.Glyph(' ')
	require.True(t, ok)
	assert.Greater(t, space.Advance, float32(0))

	fallback, ok := atlas.Glyph('é')
	require.True(t, ok)
	question, _ := atlas.Glyph('?')
	assert.Equal(t, question, fallback)

	var ink int
	for _, v := range atlas.Image.Pix {
		if v > 0 {
			ink++
		}
	}
	assert.Positive(t, ink)
	assert.Equal(t, 512, atlas.Image.Bounds().Dx())
}

func TestGlyphAtlasRejectsSize(t *testing.T) {
	font, err := knobs.ParseFont(goregular.TTF)
	require.NoError(t, err)

	_, err = drawlist.NewGlyphAtlas(font, 0)
	assert.Error(t, err)
}

type textures struct {
	atlas *drawlist.GlyphAtlas
}

func (s textures) GlyphAtlas(knobs.FontID) (*drawlist.GlyphAtlas, uint32, bool) {
	return s.atlas, 5, s.atlas != nil
}

func (s textures) ImageTexture(knobs.ImageID) (uint32, int, int, bool) {
	return 9, 32, 16, true
}

func TestTessellateShapes(t *testing.T) {
	canvas := knobs.NewCanvas()
	canvas.DrawRectangle(knobs.NewRect(0, 0, 10, 10), knobs.Fill(knobs.ColorRed))
	canvas.DrawRectangle(knobs.NewRect(0, 0, 10, 10), knobs.Stroke(1, knobs.ColorRed))
	canvas.DrawPolygon([]knobs.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, knobs.Fill(knobs.ColorRed))
	canvas.DrawText(knobs.FontID{}, "skipped", knobs.Vector{}, knobs.Vec(12, 12), knobs.ColorWhite)
	canvas.DrawImage(knobs.ImageID{}, knobs.Vector{}, knobs.Vec(1, 1), knobs.ColorWhite)

	dl := drawlist.Acquire()
	defer drawlist.Release(dl)
	drawlist.Tessellate(dl, canvas, nil)
	dl.Finalize()

	assert.Len(t, dl.VtxBuffer, 4+4*4+3)
	assert.Zero(t, len(dl.IdxBuffer)%3)
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, drawlist.PackColor(knobs.ColorRed), dl.VtxBuffer[0].Color)
}

func TestTessellateTexturedOps(t *testing.T) {
	atlas := newAtlas(t, 24)

	canvas := knobs.NewCanvas()
	canvas.DrawRectangle(knobs.NewRect(0, 0, 10, 10), knobs.Fill(knobs.ColorRed))
	canvas.DrawText(knobs.FontID{}, "Hi", knobs.Vec(5, 5), knobs.Vec(12, 12), knobs.ColorWhite)
	canvas.DrawImage(knobs.ImageID{}, knobs.Vec(100, 100), knobs.Vec(2, 0.5), knobs.ColorWhite)
	canvas.DrawCircle(knobs.Vec(0, 0), 4, knobs.Fill(knobs.ColorBlue))

	dl := drawlist.Acquire()
	defer drawlist.Release(dl)
	drawlist.Tessellate(dl, canvas, textures{atlas: atlas})
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 4)
	assert.Equal(t, []uint32{0, 5, 9, 0}, []uint32{
		dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID,
		dl.CmdBuffer[2].TextureID, dl.CmdBuffer[3].TextureID,
	})
	assert.Equal(t, uint32(2*6), dl.CmdBuffer[1].ElemCount)

	// The image quad spans its pixel size times the scale.
	img := dl.VtxBuffer[dl.CmdBuffer[2].VertexOffset:][:4]
	assert.Equal(t, [2]float32{100, 100}, img[0].Pos)
	assert.Equal(t, [2]float32{164, 108}, img[2].Pos)
}

func TestTessellateTextScalesGlyphs(t *testing.T) {
	atlas := newAtlas(t, 24)
	h, _ := atlas.Glyph('H')

	canvas := knobs.NewCanvas()
	canvas.DrawText(knobs.FontID{}, "H", knobs.Vec(0, 0), knobs.Vec(48, 12), knobs.ColorWhite)

	dl := drawlist.Acquire()
	defer drawlist.Release(dl)
	drawlist.Tessellate(dl, canvas, textures{atlas: atlas})

	require.Len(t, dl.VtxBuffer, 4)
	quad := dl.VtxBuffer
	assert.InDelta(t, h.Size.X*2, quad[1].Pos[0]-quad[0].Pos[0], 1e-4)
	assert.InDelta(t, h.Size.Y/2, quad[3].Pos[1]-quad[0].Pos[1], 1e-4)
	assert.Equal(t, [2]float32{h.UV[0], h.UV[1]}, quad[0].TexCoord)
}
