package drawlist

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/knobs-audio/knobs"
)

// maxVertices is the most vertices one command can address with uint16 indices.
const maxVertices = 1 << 16

// pool reuses DrawList buffers between frames.
var pool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// Acquire gets a cleared DrawList from the pool.
// Call Release when done to return it.
func Acquire() *DrawList {
	dl := pool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// Release returns a DrawList to the pool for reuse.
func Release(dl *DrawList) {
	if dl != nil {
		pool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to the command's VertexOffset

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect restricts subsequent primitives to a rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the texture for subsequent primitives. 0 draws untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// Texture returns the current texture.
func (dl *DrawList) Texture() uint32 {
	return dl.textureID
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the index of the first one,
// relative to the current command. A command that would overflow uint16
// indices is split first.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	idx := dl.addVertices(a, b, c, d)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func transparent(color uint32) bool {
	return color&0xFF000000 == 0
}

func vtx(x, y float32, color uint32) Vertex {
	return Vertex{Pos: [2]float32{x, y}, Color: color}
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if transparent(color) {
		return
	}
	dl.addQuad(vtx(x, y, color), vtx(x+w, y, color), vtx(x+w, y+h, color), vtx(x, y+h, color))
}

// AddRectOutline draws a rectangle outline inside the given bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	thickness = math32.Min(thickness, math32.Min(w, h)/2)

	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if l := math32.Hypot(dx, dy); l > 0 {
		inv = 1 / l
	}

	// Normal perpendicular to the line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.addQuad(
		vtx(x1+nx, y1+ny, color),
		vtx(x2+nx, y2+ny, color),
		vtx(x2-nx, y2-ny, color),
		vtx(x1-nx, y1-ny, color),
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if transparent(color) {
		return
	}
	idx := dl.addVertices(vtx(x1, y1, color), vtx(x2, y2, color), vtx(x3, y3, color))
	dl.addIndices(idx, idx+1, idx+2)
}

// AddPolyline draws connected segments. closed joins the last point to the first.
func (dl *DrawList) AddPolyline(points []knobs.Vector, color uint32, thickness float32, closed bool) {
	if transparent(color) || len(points) < 2 {
		return
	}
	for i := 1; i < len(points); i++ {
		dl.AddLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, color, thickness)
	}
	if closed && len(points) > 2 {
		last := points[len(points)-1]
		dl.AddLine(last.X, last.Y, points[0].X, points[0].Y, color, thickness)
	}
}

// AddPolygon fills a convex polygon as a triangle fan around its first point.
func (dl *DrawList) AddPolygon(points []knobs.Vector, color uint32) {
	if transparent(color) || len(points) < 3 {
		return
	}
	if len(points) > maxVertices {
		points = points[:maxVertices]
	}

	verts := make([]Vertex, len(points))
	for i, p := range points {
		verts[i] = vtx(p.X, p.Y, color)
	}
	idx := dl.addVertices(verts...)
	for i := 1; i < len(points)-1; i++ {
		dl.addIndices(idx, idx+uint16(i), idx+uint16(i)+1)
	}
}

// segments picks how many straight pieces approximate an arc.
func segments(radius, sweep float32) int {
	n := int(math32.Ceil(math32.Abs(sweep) * radius / 4))
	return max(8, min(n, 128))
}

// ArcPoints samples a circular arc from startAngle to endAngle, both
// included. Angles grow clockwise on screen.
func ArcPoints(cx, cy, radius, startAngle, endAngle float32) []knobs.Vector {
	sweep := endAngle - startAngle
	n := segments(radius, sweep)
	points := make([]knobs.Vector, n+1)
	for i := range points {
		a := startAngle + sweep*float32(i)/float32(n)
		sin, cos := math32.Sincos(a)
		points[i] = knobs.Vector{X: cx + cos*radius, Y: cy + sin*radius}
	}
	return points
}

// AddCircle draws a filled circle.
func (dl *DrawList) AddCircle(cx, cy, radius float32, color uint32) {
	points := ArcPoints(cx, cy, radius, 0, 2*math32.Pi)
	dl.AddPolygon(points[:len(points)-1], color)
}

// AddCircleOutline draws a circle outline centered on radius.
func (dl *DrawList) AddCircleOutline(cx, cy, radius float32, color uint32, thickness float32) {
	points := ArcPoints(cx, cy, radius, 0, 2*math32.Pi)
	dl.AddPolyline(points[:len(points)-1], color, thickness, true)
}

// AddArc draws an arc. A pie is closed through the center, a closed arc by
// its chord; an open arc is only ever stroked.
func (dl *DrawList) AddArc(kind knobs.ArcKind, cx, cy, radius, startAngle, endAngle float32, color uint32, thickness float32, fill bool) {
	points := ArcPoints(cx, cy, radius, startAngle, endAngle)

	switch kind {
	case knobs.ArcPie:
		points = append([]knobs.Vector{{X: cx, Y: cy}}, points...)
	case knobs.ArcOpen:
		dl.AddPolyline(points, color, thickness, false)
		return
	}

	if fill {
		dl.AddPolygon(points, color)
	} else {
		dl.AddPolyline(points, color, thickness, true)
	}
}

// AddImage draws the current texture stretched over a rectangle.
func (dl *DrawList) AddImage(x, y, w, h float32, color uint32) {
	if transparent(color) {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{0, 0}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{1, 0}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{1, 1}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{0, 1}, Color: color},
	)
}

// AddText draws text from a glyph atlas with its top-left corner at (x, y).
// The current texture must be the atlas's. scale is the pixel size along
// each axis.
func (dl *DrawList) AddText(atlas *GlyphAtlas, x, y float32, text string, scale knobs.Vector, color uint32) {
	if transparent(color) || text == "" || atlas == nil {
		return
	}

	sx := scale.X / atlas.Size
	sy := scale.Y / atlas.Size
	pen := x
	for _, r := range text {
		g, ok := atlas.Glyph(r)
		if !ok {
			continue
		}
		x0 := pen + g.Offset.X*sx
		y0 := y + g.Offset.Y*sy
		x1 := x0 + g.Size.X*sx
		y1 := y0 + g.Size.Y*sy
		dl.addQuad(
			Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{g.UV[0], g.UV[1]}, Color: color},
			Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{g.UV[2], g.UV[1]}, Color: color},
			Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{g.UV[2], g.UV[3]}, Color: color},
			Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{g.UV[0], g.UV[3]}, Color: color},
		)
		pen += g.Advance * sx
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
