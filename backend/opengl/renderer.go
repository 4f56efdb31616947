// Package opengl renders knobs canvases with OpenGL 4.1 and feeds GLFW input
// into a knobs.Gui.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"

	"github.com/knobs-audio/knobs"
	"github.com/knobs-audio/knobs/backend/drawlist"
)

// AtlasSize is the pixel size glyph atlases are rasterized at. Text drawn
// at other sizes scales the atlas quads.
const AtlasSize = 48

const vertexSize = int(unsafe.Sizeof(drawlist.Vertex{}))

type atlasTexture struct {
	atlas   *drawlist.GlyphAtlas
	texture uint32
}

type imageTexture struct {
	texture       uint32
	width, height int
}

// Renderer draws knobs canvases using OpenGL. It implements
// drawlist.TextureSource, uploading fonts and images on first use.
type Renderer struct {
	prog          *program
	vao, vbo, ebo uint32
	width, height int

	resources knobs.Resources
	atlases   map[knobs.FontID]atlasTexture
	images    map[knobs.ImageID]imageTexture
	modes     map[uint32]int32 // texture -> shader mode
}

// NewRenderer creates a renderer for a framebuffer of the given size. A GL
// context must be current.
func NewRenderer(width, height int, resources knobs.Resources) (*Renderer, error) {
	prog, err := newProgram()
	if err != nil {
		return nil, fmt.Errorf("canvas shader: %w", err)
	}

	r := &Renderer{
		prog:      prog,
		width:     width,
		height:    height,
		resources: resources,
		atlases:   make(map[knobs.FontID]atlasTexture),
		images:    make(map[knobs.ImageID]imageTexture),
		modes:     make(map[uint32]int32),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v drawlist.Vertex
	stride := int32(vertexSize)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	for i := uint32(0); i < 3; i++ {
		gl.EnableVertexAttribArray(i)
	}
	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// GlyphAtlas implements drawlist.TextureSource.
func (r *Renderer) GlyphAtlas(font knobs.FontID) (*drawlist.GlyphAtlas, uint32, bool) {
	if entry, ok := r.atlases[font]; ok {
		return entry.atlas, entry.texture, entry.atlas != nil
	}

	atlas, err := drawlist.NewGlyphAtlas(r.resources.Font(font), AtlasSize)
	if err != nil {
		// Remember the failure so the atlas is not rebuilt every frame.
		r.atlases[font] = atlasTexture{}
		return nil, 0, false
	}

	b := atlas.Image.Bounds()
	tex := upload(gl.RED, gl.RED, b.Dx(), b.Dy(), atlas.Image.Pix)
	r.modes[tex] = modeCoverage
	r.atlases[font] = atlasTexture{atlas: atlas, texture: tex}
	return atlas, tex, true
}

// ImageTexture implements drawlist.TextureSource.
func (r *Renderer) ImageTexture(id knobs.ImageID) (uint32, int, int, bool) {
	if entry, ok := r.images[id]; ok {
		return entry.texture, entry.width, entry.height, true
	}

	src := r.resources.Image(id)
	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	tex := upload(gl.RGBA8, gl.RGBA, b.Dx(), b.Dy(), nrgba.Pix)
	r.modes[tex] = modeTexture
	r.images[id] = imageTexture{texture: tex, width: b.Dx(), height: b.Dy()}
	return tex, b.Dx(), b.Dy(), true
}

func upload(internalFormat int32, format uint32, width, height int, pix []byte) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for _, p := range [...]uint32{gl.TEXTURE_MIN_FILTER, gl.TEXTURE_MAG_FILTER} {
		gl.TexParameteri(gl.TEXTURE_2D, p, gl.LINEAR)
	}
	for _, p := range [...]uint32{gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T} {
		gl.TexParameteri(gl.TEXTURE_2D, p, gl.CLAMP_TO_EDGE)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Frame draws g: layout, canvas, tessellation, then Render. With debug set,
// element outlines are drawn on top.
func (r *Renderer) Frame(g *knobs.Gui, debug bool) error {
	dl := drawlist.Acquire()
	defer drawlist.Release(dl)

	canvas := g.Draw()
	if debug {
		g.DrawDebug(canvas)
	}
	drawlist.Tessellate(dl, canvas, r)
	return r.Render(dl)
}

// Render draws a draw list. GL state it touches is restored afterwards.
func (r *Renderer) Render(dl *drawlist.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := captureState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	r.prog.use(r.width, r.height)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*vertexSize, gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := r.scissor(cmd.ClipRect)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		mode := modeColor
		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			mode = r.modes[cmd.TextureID]
		}
		gl.Uniform1i(r.prog.mode, mode)

		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// scissor converts a top-left clip rectangle into a GL scissor box clamped
// to the framebuffer.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int32, ok bool) {
	fw, fh := float32(r.width), float32(r.height)
	x = int32(max(clip[0], 0))
	y = int32(max(fh-clip[3], 0))
	w = int32(min(clip[2], fw)) - x
	h = int32(min(fh-clip[1], fh)) - y
	return x, y, w, h, w > 0 && h > 0
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for tex := range r.modes {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.modes)
	clear(r.atlases)
	clear(r.images)

	for _, buf := range []*uint32{&r.ebo, &r.vbo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.prog.delete()
}
