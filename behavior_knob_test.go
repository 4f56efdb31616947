package knobs_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knobs-audio/knobs"
)

// knobScene puts two knobs for the same parameter and one for another
// parameter side by side, each 40x40 starting at x = 0, 50 and 100.
func knobScene() (*knobs.Gui, [3]*knobs.Knob) {
	ks := [3]*knobs.Knob{knobs.NewKnob(0, 0.5), knobs.NewKnob(0, 0.5), knobs.NewKnob(1, 0.1)}
	g := knobs.New()
	for i, k := range ks {
		g.Add(knobs.ElementSettings{
			Rect:      rect(float32(i)*50, 0, 40, 40),
			Behaviors: []knobs.Behavior{k},
		})
	}
	return g, ks
}

func TestKnobDragSetsParameter(t *testing.T) {
	g, ks := knobScene()

	g.OnMoveMouse(20, 20, 0, 0)
	g.OnPressMouseButton(knobs.MouseButtonLeft)
	g.OnMoveMouse(20, 0, 0, -20)

	assert.InDelta(t, 0.7, ks[0].Value, 1e-6)
	assert.InDelta(t, 0.7, ks[1].Value, 1e-6, "knobs of the same parameter follow")
	assert.InDelta(t, 0.1, ks[2].Value, 1e-6)

	out := g.DrainOutputEvents()
	require.Len(t, out, 1)
	change := out[0].(knobs.SetParameter)
	assert.Equal(t, 0, change.Index)
	assert.InDelta(t, 0.7, change.Value, 1e-6)
}

func TestKnobClampsAndSkipsNoops(t *testing.T) {
	g, ks := knobScene()

	g.OnMoveMouse(20, 20, 0, 0)
	g.OnPressMouseButton(knobs.MouseButtonLeft)
	g.OnMoveMouse(20, -500, 0, -520)
	assert.Equal(t, float32(1), ks[0].Value)
	assert.Len(t, g.DrainOutputEvents(), 1)

	g.OnMoveMouse(20, -600, 0, -100)
	assert.Empty(t, g.DrainOutputEvents(), "already at the maximum")

	g.OnMoveMouse(20, 1000, 0, 1600)
	assert.Equal(t, float32(0), ks[0].Value)
}

func TestKnobIgnoresOtherButtons(t *testing.T) {
	g, ks := knobScene()

	g.OnMoveMouse(20, 20, 0, 0)
	g.OnPressMouseButton(knobs.MouseButtonMiddle)
	g.OnMoveMouse(20, 0, 0, -20)

	assert.Equal(t, float32(0.5), ks[0].Value)
	assert.Empty(t, g.DrainOutputEvents())
}

func TestKnobRightClickResets(t *testing.T) {
	g, ks := knobScene()
	g.SetParameter(0, 0.9)
	g.SetParameter(1, 0.4)
	assert.Equal(t, float32(0.9), ks[1].Value)

	g.OnMoveMouse(70, 20, 0, 0)
	g.OnPressMouseButton(knobs.MouseButtonRight)
	g.OnReleaseMouseButton(knobs.MouseButtonRight)

	assert.Equal(t, float32(0.5), ks[0].Value)
	assert.Equal(t, float32(0.5), ks[1].Value)
	assert.Equal(t, float32(0.4), ks[2].Value)
	assert.Equal(t, []knobs.Event{knobs.ResetParameter{Index: 0}}, g.DrainOutputEvents())
}

func TestHostParameterChanges(t *testing.T) {
	g, ks := knobScene()

	g.SetParameter(1, 2)
	assert.Equal(t, float32(1), ks[2].Value)

	g.ResetParameter(1)
	assert.Equal(t, float32(0.1), ks[2].Value)

	assert.Empty(t, g.DrainOutputEvents(), "host changes are not echoed back")
}

func TestKnobDraw(t *testing.T) {
	k := knobs.NewKnob(0, 0)
	g := knobs.New()
	g.Add(knobs.ElementSettings{Rect: rect(10, 10, 40, 60), Behaviors: []knobs.Behavior{k}})

	ops := g.Draw().Operations
	require.Len(t, ops, 2)

	ring := ops[0].(knobs.CircleOp)
	assert.Equal(t, knobs.Vec(30, 40), ring.Center)
	assert.Equal(t, float32(20), ring.Radius)
	assert.Equal(t, knobs.DefaultTheme().Outline, ring.Style.Color)

	nub := ops[1].(knobs.ArcOp)
	assert.Equal(t, knobs.ArcOpen, nub.Kind)
	assert.Equal(t, float32(15), nub.Radius)
	assert.InDelta(t, 0.75*math32.Pi, (nub.StartAngle+nub.EndAngle)/2, 1e-5)

	k.Value = 1
	assert.InDelta(t, 2.25*math32.Pi, k.NubAngle(), 1e-5)
}

func TestKnobLabel(t *testing.T) {
	assets := knobs.NewAssets()
	font, err := assets.LoadDefaultFont()
	require.NoError(t, err)

	g := knobs.New(knobs.WithResources(assets))
	g.Add(knobs.ElementSettings{
		Rect:      rect(0, 0, 40, 40),
		Behaviors: []knobs.Behavior{knobs.NewKnob(0, 0).WithLabel(font, "Gain")},
	})

	ops := g.Draw().Operations
	require.Len(t, ops, 3)
	label := ops[2].(knobs.TextOp)
	assert.Equal(t, "Gain", label.Text)
	assert.Equal(t, float32(50), label.Position.Y)
	width := assets.MeasureText(font, "Gain", label.Scale).X
	assert.InDelta(t, 20-width/2, label.Position.X, 1e-4)
}
