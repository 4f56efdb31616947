package knobs

import "github.com/chewxy/math32"

const (
	knobStartAngle = 0.75 * math32.Pi
	knobSweep      = 1.5 * math32.Pi
	knobNubHalf    = 0.25
)

// Knob controls one plugin parameter. Dragging vertically changes the
// value; the new value is broadcast as SetParameter to every behavior and
// sent to the host as an output event. A right click resets the parameter.
//
// The knob only shows values it receives through SetParameter and
// ResetParameter, so it stays in sync with host automation.
type Knob struct {
	BaseBehavior

	Index       int
	Value       float32 // normalized, 0..1
	Default     float32
	Sensitivity float32 // pixels of drag for the full range

	// Label is drawn centered below the knob when Font is valid.
	Label     string
	Font      FontID
	LabelSize float32

	ringColor   Color
	hoverColor  Color
	accentColor Color
	labelColor  Color
	strokeWidth float32
}

// NewKnob creates a knob for parameter index.
func NewKnob(index int, value float32) *Knob {
	return &Knob{
		Index:       index,
		Value:       clampf(value, 0, 1),
		Default:     clampf(value, 0, 1),
		Sensitivity: 100,
		LabelSize:   16,
		ringColor:   ColorWhite,
		hoverColor:  ColorWhite,
		accentColor: ColorWhite,
		labelColor:  ColorWhite,
		strokeWidth: 4,
	}
}

// WithLabel sets the caption drawn below the knob.
func (k *Knob) WithLabel(font FontID, label string) *Knob {
	k.Font = font
	k.Label = label
	return k
}

func (k *Knob) ApplyTheme(theme Theme) {
	k.ringColor = theme.Outline
	k.hoverColor = theme.Hovered
	k.accentColor = theme.Accent
	k.labelColor = theme.Text
	k.strokeWidth = theme.StrokeWidth * 2
	k.LabelSize = theme.FontSize
}

func (k *Knob) On(ev Event, _ *Elements, queue *EventQueue) {
	switch e := ev.(type) {
	case Drag:
		if e.Button != MouseButtonLeft || k.Sensitivity <= 0 {
			return
		}
		value := clampf(k.Value-e.Delta.Y/k.Sensitivity, 0, 1)
		if value == k.Value {
			return
		}
		change := SetParameter{Index: k.Index, Value: value}
		queue.Broadcast(change)
		queue.Output(change)

	case Click:
		if e.Button != MouseButtonRight {
			return
		}
		reset := ResetParameter{Index: k.Index}
		queue.Broadcast(reset)
		queue.Output(reset)

	case SetParameter:
		if e.Index == k.Index {
			k.Value = clampf(e.Value, 0, 1)
		}

	case ResetParameter:
		if e.Index == k.Index {
			k.Value = k.Default
		}
	}
}

// NubAngle returns the angle of the value marker in radians, clockwise from
// the positive x axis.
func (k *Knob) NubAngle() float32 {
	return knobStartAngle + k.Value*knobSweep
}

func (k *Knob) DrawBelow(el Element, canvas *Canvas, res Resources) {
	center := el.Rect.Center()
	radius := math32.Min(el.Rect.Width(), el.Rect.Height()) / 2

	ring := k.ringColor
	if el.Hovered() || el.HeldAny() {
		ring = k.hoverColor
	}
	canvas.DrawCircle(center, radius, Stroke(k.strokeWidth, ring))

	nub := k.NubAngle()
	canvas.DrawArc(ArcOpen, center, radius*0.75, nub-knobNubHalf, nub+knobNubHalf, Stroke(k.strokeWidth, k.accentColor))

	if k.Label == "" || !k.Font.IsValid() {
		return
	}
	scale := Vector{X: k.LabelSize, Y: k.LabelSize}
	size := res.Font(k.Font).Measure(k.Label, scale)
	pos := Vector{X: center.X - size.X/2, Y: center.Y + radius + 10}
	canvas.DrawText(k.Font, k.Label, pos, scale, k.labelColor)
}
