package knobs

import "github.com/chewxy/math32"

// Axis is a layout direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) of(v Vector) float32 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

func (a Axis) set(v *Vector, value float32) {
	if a == Horizontal {
		v.X = value
	} else {
		v.Y = value
	}
}

func (a Axis) cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Alignment is a fraction along an axis: 0 is the leading edge, 0.5 the
// center and 1 the trailing edge. The same fraction anchors the child.
type Alignment float32

const (
	AlignStart  Alignment = 0
	AlignMiddle Alignment = 0.5
	AlignEnd    Alignment = 1
)

// DistributionKind selects how Flex spreads children along the main axis.
type DistributionKind uint8

const (
	DistributeStack DistributionKind = iota
	DistributeSpaceEvenly
	DistributeAlignToGrid
)

// Distribution describes main-axis placement.
type Distribution struct {
	Kind    DistributionKind
	Spacing float32 // Stack only
}

// Stack places children one after another with a fixed gap and resizes the
// container to fit them exactly.
func Stack(spacing float32) Distribution {
	return Distribution{Kind: DistributeStack, Spacing: spacing}
}

// SpaceEvenly splits the container's leftover main-axis space equally
// between adjacent children. The first child starts at 0 and the last ends
// at the container's extent.
func SpaceEvenly() Distribution {
	return Distribution{Kind: DistributeSpaceEvenly}
}

// AlignToGrid places child i of n at fraction i/(n-1) of the container,
// anchored by the same fraction.
func AlignToGrid() Distribution {
	return Distribution{Kind: DistributeAlignToGrid}
}

// Flex positions the children of its element along an axis. It runs after
// the children were laid out, so their sizes are final.
//
// If the container has no cross-axis extent, it takes the largest child's.
type Flex struct {
	BaseBehavior

	Axis         Axis
	Distribution Distribution
	CrossAlign   Alignment
}

// NewFlex creates a Flex layout.
func NewFlex(axis Axis, distribution Distribution, crossAlign Alignment) *Flex {
	return &Flex{Axis: axis, Distribution: distribution, CrossAlign: crossAlign}
}

// NewRow creates a horizontal Flex.
func NewRow(distribution Distribution, crossAlign Alignment) *Flex {
	return NewFlex(Horizontal, distribution, crossAlign)
}

// NewColumn creates a vertical Flex.
func NewColumn(distribution Distribution, crossAlign Alignment) *Flex {
	return NewFlex(Vertical, distribution, crossAlign)
}

func (f *Flex) Layout(elements *Elements, id ElementID, _ Resources) {
	children := elements.ChildrenOf(id)
	if len(children) == 0 {
		return
	}
	f.distribute(elements, id, children)
	f.align(elements, id, children)
}

func (f *Flex) distribute(elements *Elements, id ElementID, children []ElementID) {
	main := f.Axis
	parent := elements.Get(id)
	extent := main.of(parent.Rect.Size)
	n := len(children)

	switch f.Distribution.Kind {
	case DistributeStack:
		spacing := f.Distribution.Spacing
		var next float32
		for _, child := range children {
			r := &elements.Get(child).Rect
			main.set(&r.Position, next)
			next += main.of(r.Size) + spacing
		}
		main.set(&parent.Rect.Size, next-spacing)

	case DistributeSpaceEvenly:
		var total float32
		for _, child := range children {
			total += main.of(elements.Get(child).Rect.Size)
		}
		var gap float32
		if n > 1 {
			gap = (extent - total) / float32(n-1)
		}
		var next float32
		for _, child := range children {
			r := &elements.Get(child).Rect
			main.set(&r.Position, next)
			next += main.of(r.Size) + gap
		}

	case DistributeAlignToGrid:
		for i, child := range children {
			var frac float32
			if n > 1 {
				frac = float32(i) / float32(n-1)
			}
			r := &elements.Get(child).Rect
			main.set(&r.Position, extent*frac-main.of(r.Size)*frac)
		}
	}
}

func (f *Flex) align(elements *Elements, id ElementID, children []ElementID) {
	cross := f.Axis.cross()
	parent := elements.Get(id)

	if cross.of(parent.Rect.Size) == 0 {
		var largest float32
		for _, child := range children {
			largest = math32.Max(largest, cross.of(elements.Get(child).Rect.Size))
		}
		cross.set(&parent.Rect.Size, largest)
	}

	frac := float32(f.CrossAlign)
	target := cross.of(parent.Rect.Size) * frac
	for _, child := range children {
		r := &elements.Get(child).Rect
		cross.set(&r.Position, target-cross.of(r.Size)*frac)
	}
}
