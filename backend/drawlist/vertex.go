// Package drawlist turns a knobs.Canvas into indexed triangle batches that a
// GPU backend can upload as is.
package drawlist

import "github.com/knobs-audio/knobs"

// Vertex represents a single vertex for GUI rendering.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// RGBA packs 8-bit components as 0xAABBGGRR, the byte order OpenGL reads
// as four normalized unsigned bytes.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// PackColor packs a knobs color.
func PackColor(c knobs.Color) uint32 {
	return RGBA(c.Bytes())
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}
