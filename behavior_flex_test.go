package knobs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knobs-audio/knobs"
)

// flexScene lays out children of the given sizes inside a container and
// returns the container rect and the child positions.
func flexScene(container knobs.Rect, flex *knobs.Flex, sizes ...knobs.Vector) (knobs.Rect, []knobs.Vector) {
	children := make([]knobs.ElementSettings, len(sizes))
	for i, size := range sizes {
		children[i].Rect = knobs.Rect{Size: size}
	}

	g := knobs.New()
	id := g.Add(knobs.ElementSettings{
		Rect:      container,
		Behaviors: []knobs.Behavior{flex},
		Children:  children,
	})
	g.Layout()

	var positions []knobs.Vector
	for _, child := range g.Elements().ChildrenOf(id) {
		positions = append(positions, g.Elements().Get(child).Rect.Position)
	}
	return g.Elements().Get(id).Rect, positions
}

func TestFlexSpaceEvenly(t *testing.T) {
	container, pos := flexScene(rect(0, 0, 300, 0),
		knobs.NewRow(knobs.SpaceEvenly(), knobs.AlignStart),
		knobs.Vec(50, 10), knobs.Vec(100, 20))

	assert.Equal(t, []knobs.Vector{{X: 0, Y: 0}, {X: 200, Y: 0}}, pos)
	assert.Equal(t, float32(20), container.Height(), "cross extent taken from the tallest child")
}

func TestFlexSpaceEvenlySingleChild(t *testing.T) {
	_, pos := flexScene(rect(0, 0, 300, 40),
		knobs.NewRow(knobs.SpaceEvenly(), knobs.AlignStart),
		knobs.Vec(50, 10))

	assert.Equal(t, []knobs.Vector{{X: 0, Y: 0}}, pos)
}

func TestFlexStackResizesContainer(t *testing.T) {
	container, pos := flexScene(rect(5, 5, 999, 0),
		knobs.NewRow(knobs.Stack(10), knobs.AlignStart),
		knobs.Vec(50, 10), knobs.Vec(100, 20), knobs.Vec(30, 5))

	assert.Equal(t, []knobs.Vector{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 170, Y: 0}}, pos)
	assert.Equal(t, knobs.Vec(200, 20), container.Size)
	assert.Equal(t, knobs.Vec(5, 5), container.Position)
}

func TestFlexAlignToGrid(t *testing.T) {
	_, pos := flexScene(rect(0, 0, 300, 20),
		knobs.NewRow(knobs.AlignToGrid(), knobs.AlignStart),
		knobs.Vec(20, 20), knobs.Vec(20, 20), knobs.Vec(20, 20))

	assert.Equal(t, []knobs.Vector{{X: 0, Y: 0}, {X: 140, Y: 0}, {X: 280, Y: 0}}, pos)
}

func TestFlexCrossAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align knobs.Alignment
		want  float32
	}{
		{"start", knobs.AlignStart, 0},
		{"middle", knobs.AlignMiddle, 15},
		{"end", knobs.AlignEnd, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pos := flexScene(rect(0, 0, 100, 40),
				knobs.NewRow(knobs.Stack(0), tt.align),
				knobs.Vec(10, 10))
			assert.Equal(t, tt.want, pos[0].Y)
		})
	}
}

func TestFlexColumn(t *testing.T) {
	container, pos := flexScene(rect(0, 0, 0, 0),
		knobs.NewColumn(knobs.Stack(4), knobs.AlignMiddle),
		knobs.Vec(40, 10), knobs.Vec(20, 10))

	assert.Equal(t, []knobs.Vector{{X: 0, Y: 0}, {X: 10, Y: 14}}, pos)
	assert.Equal(t, knobs.Vec(40, 24), container.Size)
}

func TestFlexNoChildren(t *testing.T) {
	container, pos := flexScene(rect(1, 2, 3, 4), knobs.NewRow(knobs.Stack(8), knobs.AlignMiddle))

	assert.Empty(t, pos)
	assert.Equal(t, rect(1, 2, 3, 4), container)
}

func TestNestedFlexSeesFinalChildSizes(t *testing.T) {
	g := knobs.New()
	row := g.Add(knobs.ElementSettings{
		Behaviors: []knobs.Behavior{knobs.NewRow(knobs.Stack(0), knobs.AlignStart)},
		Children: []knobs.ElementSettings{
			{
				Name:      "column",
				Behaviors: []knobs.Behavior{knobs.NewColumn(knobs.Stack(0), knobs.AlignStart)},
				Children: []knobs.ElementSettings{
					{Rect: rect(0, 0, 30, 10)},
					{Rect: rect(0, 0, 30, 10)},
				},
			},
			{Rect: rect(0, 0, 10, 50)},
		},
	})
	g.Layout()

	column, _ := g.Elements().Lookup("column")
	assert.Equal(t, knobs.Vec(30, 20), g.Elements().Get(column).Rect.Size)
	assert.Equal(t, knobs.Vec(40, 50), g.Elements().Get(row).Rect.Size)
}
