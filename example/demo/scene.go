// Package demo builds the editor shown by the example programs: a panel
// with a title, a row of labeled knobs and a badge that can be dragged
// around inside the panel.
package demo

import (
	"log/slog"

	"github.com/knobs-audio/knobs"
)

// Width and Height are the logical size of the scene.
const (
	Width  = 480
	Height = 280
)

// Parameter is one plugin parameter controlled by a knob.
type Parameter struct {
	Name    string
	Default float32
}

// Parameters are the parameters of the demo plugin, by index.
var Parameters = []Parameter{
	{Name: "Gain", Default: 0.5},
	{Name: "Drive", Default: 0.2},
	{Name: "Tone", Default: 0.7},
	{Name: "Mix", Default: 1},
}

// Build adds the scene to g and returns the root element. Every event the
// knob row sees is logged to logger at debug level.
func Build(g *knobs.Gui, font knobs.FontID, logger *slog.Logger) knobs.ElementID {
	theme := g.Theme()

	knobSize := 2 * theme.KnobRadius
	knobRow := make([]knobs.ElementSettings, 0, len(Parameters))
	for i, p := range Parameters {
		knobRow = append(knobRow, knobs.ElementSettings{
			Rect:      knobs.NewRect(0, 0, knobSize, knobSize),
			Name:      p.Name,
			Behaviors: []knobs.Behavior{knobs.NewKnob(i, p.Default).WithLabel(font, p.Name)},
		})
	}

	return g.Add(knobs.ElementSettings{
		Rect:      knobs.NewRect(theme.Spacing, theme.Spacing, Width-2*theme.Spacing, Height-2*theme.Spacing),
		Name:      "panel",
		Behaviors: []knobs.Behavior{knobs.NewPanel()},
		Children: []knobs.ElementSettings{
			{
				Rect:      knobs.NewRect(theme.Spacing, theme.Spacing, 0, 0),
				Name:      "title",
				Behaviors: []knobs.Behavior{knobs.NewText(font, "knobs demo", knobs.Vec(24, 24))},
			},
			{
				Rect: knobs.NewRect(theme.Spacing, 60, Width-4*theme.Spacing, knobSize),
				Name: "knobs",
				Behaviors: []knobs.Behavior{
					knobs.NewRow(knobs.SpaceEvenly(), knobs.AlignMiddle),
					knobs.NewEventLogger(logger),
				},
				Children: knobRow,
			},
			{
				Rect: knobs.NewRect(theme.Spacing, Height-4*theme.Spacing-24, 72, 24),
				Name: "badge",
				Behaviors: []knobs.Behavior{
					knobs.NewRectangle().Fill(theme.Accent).Stroke(theme.StrokeWidth, theme.Outline),
					&knobs.Draggable{
						Button:        knobs.MouseButtonLeft,
						Snap:          knobs.SnapConfig{GridSize: 8, EdgeMargin: 12},
						ClampToParent: true,
					},
				},
			},
		},
	})
}

// LogOutput logs an event the GUI sent to the host.
func LogOutput(logger *slog.Logger, ev knobs.Event) {
	switch e := ev.(type) {
	case knobs.SetParameter:
		logger.Info("set parameter",
			slog.String("name", Parameters[e.Index].Name),
			slog.Float64("value", float64(e.Value)))
	case knobs.ResetParameter:
		logger.Info("reset parameter", slog.String("name", Parameters[e.Index].Name))
	}
}
