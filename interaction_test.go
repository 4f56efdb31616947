package knobs_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knobs-audio/knobs"
)

// scene is a parent at (10,10) 100x100 holding a child at (20,20) 40x40,
// which is (30,30)-(70,70) in root space, plus a root sibling at (200,0).
type scene struct {
	gui                  *knobs.Gui
	parent, child, other knobs.ElementID
	parentRec, childRec  *recorder
	otherRec             *recorder
	log                  []string
}

func newScene(t *testing.T) *scene {
	t.Helper()

	s := &scene{gui: knobs.New()}
	s.parentRec = newRecorder("parent", &s.log)
	s.childRec = newRecorder("child", &s.log)
	s.otherRec = newRecorder("other", &s.log)

	s.parent = s.gui.Add(knobs.ElementSettings{
		Rect:      rect(10, 10, 100, 100),
		Behaviors: []knobs.Behavior{s.parentRec},
		Children: []knobs.ElementSettings{{
			Rect:      rect(20, 20, 40, 40),
			Name:      "child",
			Behaviors: []knobs.Behavior{s.childRec},
		}},
	})
	child, ok := s.gui.Elements().Lookup("child")
	require.True(t, ok)
	s.child = child
	s.other = s.gui.Add(knobs.ElementSettings{
		Rect:      rect(200, 0, 50, 50),
		Behaviors: []knobs.Behavior{s.otherRec},
	})
	return s
}

func hoveredCount(g *knobs.Gui) int {
	n := 0
	for _, el := range g.Elements().All() {
		if el.Hovered() {
			n++
		}
	}
	return n
}

func TestHoverPrefersChildOverParent(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 45, 0, 0)

	id, ok := s.gui.Hovered()
	require.True(t, ok)
	assert.Equal(t, s.child, id)
	assert.Equal(t, 1, hoveredCount(s.gui))
	assert.Empty(t, ofType[knobs.Hover](s.parentRec))
	assert.Equal(t, []knobs.Hover{{ID: s.child, Position: knobs.Vec(10, 15)}}, ofType[knobs.Hover](s.childRec))
}

func TestHoverParentOutsideChild(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(15, 100, 0, 0)

	id, ok := s.gui.Hovered()
	require.True(t, ok)
	assert.Equal(t, s.parent, id)
	assert.Equal(t, []knobs.Hover{{ID: s.parent, Position: knobs.Vec(5, 90)}}, ofType[knobs.Hover](s.parentRec))
}

func TestHoverNothing(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(150, 150, 0, 0)

	_, ok := s.gui.Hovered()
	assert.False(t, ok)
	assert.Empty(t, s.log)
}

func TestLaterSiblingOccludesEarlier(t *testing.T) {
	g := knobs.New()
	below := g.Add(knobs.ElementSettings{Rect: rect(0, 0, 100, 100)})
	above := g.Add(knobs.ElementSettings{Rect: rect(50, 50, 100, 100)})

	g.OnMoveMouse(75, 75, 0, 0)
	id, _ := g.Hovered()
	assert.Equal(t, above, id)

	g.OnMoveMouse(25, 25, 0, 0)
	id, _ = g.Hovered()
	assert.Equal(t, below, id)
}

func TestFullyCoveringChildAlwaysWins(t *testing.T) {
	g := knobs.New()
	parent := g.Add(knobs.ElementSettings{
		Rect:     rect(0, 0, 100, 100),
		Children: []knobs.ElementSettings{{Rect: rect(0, 0, 100, 100), Name: "cover"}},
	})
	cover, _ := g.Elements().Lookup("cover")

	for _, p := range []knobs.Vector{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 100}} {
		g.OnMoveMouse(p.X, p.Y, 0, 0)
		id, ok := g.Hovered()
		require.True(t, ok)
		assert.Equal(t, cover, id, "at %v", p)
		assert.False(t, g.Elements().Get(parent).Hovered())
	}
}

func TestHoverUnhoverPairing(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnMoveMouse(45, 45, 5, 5)
	s.gui.OnMoveMouse(50, 50, 5, 5)
	assert.Len(t, ofType[knobs.Hover](s.childRec), 1)
	assert.Empty(t, ofType[knobs.Unhover](s.childRec))

	// Into the parent: the child unhovers before the parent hovers.
	s.log = nil
	s.gui.OnMoveMouse(15, 15, -35, -35)
	assert.Equal(t, []string{"child", "parent"}, s.log)
	assert.Equal(t, []knobs.Unhover{{ID: s.child}}, ofType[knobs.Unhover](s.childRec))
	assert.Len(t, ofType[knobs.Hover](s.parentRec), 1)

	s.gui.OnMoveMouse(300, 300, 285, 285)
	assert.Len(t, ofType[knobs.Unhover](s.parentRec), 1)
	assert.Len(t, ofType[knobs.Unhover](s.childRec), 1)
	assert.Equal(t, 0, hoveredCount(s.gui))
}

func TestPressReleaseClick(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)

	held, ok := s.gui.HeldBy(knobs.MouseButtonLeft)
	require.True(t, ok)
	assert.Equal(t, s.child, held)
	assert.True(t, s.gui.Elements().Get(s.child).Held(knobs.MouseButtonLeft))
	assert.Equal(t, []knobs.Press{{ID: s.child, Button: knobs.MouseButtonLeft, Position: knobs.Vec(10, 10)}},
		ofType[knobs.Press](s.childRec))

	s.gui.OnReleaseMouseButton(knobs.MouseButtonLeft)

	_, ok = s.gui.HeldBy(knobs.MouseButtonLeft)
	assert.False(t, ok)
	assert.Len(t, ofType[knobs.Release](s.childRec), 1)
	assert.Equal(t, []knobs.Click{{ID: s.child, Button: knobs.MouseButtonLeft, Position: knobs.Vec(10, 10)}},
		ofType[knobs.Click](s.childRec))
}

func TestReleaseOffElementDoesNotClick(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonRight)
	s.gui.OnMoveMouse(220, 20, 180, -20)
	s.gui.OnReleaseMouseButton(knobs.MouseButtonRight)

	assert.Equal(t, []knobs.Release{{ID: s.child, Button: knobs.MouseButtonRight, Position: knobs.Vec(190, -10)}},
		ofType[knobs.Release](s.childRec))
	assert.Empty(t, ofType[knobs.Click](s.childRec))
	assert.Empty(t, ofType[knobs.Release](s.otherRec))
	assert.Empty(t, ofType[knobs.Click](s.otherRec))
}

func TestDragContinuesOffElement(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)
	s.gui.OnMoveMouse(45, 40, 5, 0)
	s.gui.OnMoveMouse(220, 20, 175, -20)
	s.gui.OnMoveMouse(500, 500, 280, 480)

	drags := ofType[knobs.Drag](s.childRec)
	require.Len(t, drags, 3)
	assert.Equal(t, knobs.Drag{ID: s.child, Button: knobs.MouseButtonLeft, Position: knobs.Vec(15, 10), Delta: knobs.Vec(5, 0)}, drags[0])
	assert.Equal(t, knobs.Vec(175, -20), drags[1].Delta)
	assert.Equal(t, knobs.Vec(470, 470), drags[2].Position)
	assert.Empty(t, ofType[knobs.Drag](s.otherRec))

	s.gui.OnReleaseMouseButton(knobs.MouseButtonLeft)
	s.gui.OnMoveMouse(40, 40, -460, -460)
	assert.Len(t, ofType[knobs.Drag](s.childRec), 3)
}

func TestDragFollowsHover(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)
	s.childRec.got = nil
	s.log = nil

	s.gui.OnMoveMouse(15, 15, -25, -25)

	assert.Equal(t, []string{"child", "parent", "child"}, s.log)
	_, unhover := s.childRec.got[0].(knobs.Unhover)
	_, drag := s.childRec.got[1].(knobs.Drag)
	assert.True(t, unhover)
	assert.True(t, drag)
}

func TestPressWithoutHoverIsNoop(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(150, 150, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)
	s.gui.OnReleaseMouseButton(knobs.MouseButtonLeft)

	_, ok := s.gui.HeldBy(knobs.MouseButtonLeft)
	assert.False(t, ok)
	assert.Empty(t, s.log)
}

func TestSecondPressMovesHold(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)
	s.gui.OnMoveMouse(220, 20, 180, -20)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)

	held, ok := s.gui.HeldBy(knobs.MouseButtonLeft)
	require.True(t, ok)
	assert.Equal(t, s.other, held)
	assert.False(t, s.gui.Elements().Get(s.child).HeldAny())
}

func TestButtonsHoldIndependently(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonLeft)
	s.gui.OnMoveMouse(220, 20, 180, -20)
	s.gui.OnPressMouseButton(knobs.MouseButtonRight)

	left, _ := s.gui.HeldBy(knobs.MouseButtonLeft)
	right, _ := s.gui.HeldBy(knobs.MouseButtonRight)
	assert.Equal(t, s.child, left)
	assert.Equal(t, s.other, right)

	s.gui.OnMoveMouse(230, 20, 10, 0)
	assert.Len(t, ofType[knobs.Drag](s.otherRec), 1)
	assert.Len(t, ofType[knobs.Drag](s.childRec), 2)
}

func TestInvalidButtonIgnored(t *testing.T) {
	s := newScene(t)

	s.gui.OnMoveMouse(40, 40, 0, 0)
	s.gui.OnPressMouseButton(knobs.MouseButtonCount)
	s.gui.OnReleaseMouseButton(knobs.MouseButton(-1))

	assert.Empty(t, ofType[knobs.Press](s.childRec))
	_, ok := s.gui.HeldBy(knobs.MouseButtonCount)
	assert.False(t, ok)
}

func TestElementAt(t *testing.T) {
	s := newScene(t)

	id, ok := s.gui.ElementAt(knobs.Vec(70, 70))
	require.True(t, ok)
	assert.Equal(t, s.child, id)

	_, ok = s.gui.ElementAt(knobs.Vec(-1, -1))
	assert.False(t, ok)

	// ElementAt is a query and does not hover.
	assert.Equal(t, 0, hoveredCount(s.gui))
}

// randomForest builds a random nested tree of elements.
func randomForest(r *rand.Rand, depth int) []knobs.ElementSettings {
	n := r.IntN(4)
	out := make([]knobs.ElementSettings, n)
	for i := range out {
		out[i].Rect = rect(
			float32(r.IntN(200))-50, float32(r.IntN(200))-50,
			float32(r.IntN(150)), float32(r.IntN(150)))
		if depth > 0 {
			out[i].Children = randomForest(r, depth-1)
		}
	}
	return out
}

func TestAtMostOneHoveredAndTopmost(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for round := range 50 {
		t.Run(fmt.Sprint(round), func(t *testing.T) {
			g := knobs.New()
			for _, settings := range randomForest(r, 3) {
				g.Add(settings)
			}

			for range 40 {
				p := knobs.Vec(float32(r.IntN(300))-50, float32(r.IntN(300))-50)
				g.OnMoveMouse(p.X, p.Y, 0, 0)

				// Elements are added depth-first, so the topmost element
				// containing p is the last one added.
				var want knobs.ElementID
				for id := range g.Elements().All() {
					if g.Elements().AbsoluteRect(id).Contains(p) {
						want = id
					}
				}

				require.LessOrEqual(t, hoveredCount(g), 1)
				got, ok := g.Hovered()
				assert.Equal(t, want.IsValid(), ok, "at %v", p)
				assert.Equal(t, want, got, "at %v", p)
			}
		})
	}
}
