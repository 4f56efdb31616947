package knobs

import "log/slog"

// Gui holds elements and their behaviors, takes mouse input, decides which
// element is hovered or held, and dispatches events between behaviors and
// the host. It is not safe for concurrent use; drive it from one goroutine.
type Gui struct {
	elements  Elements
	behaviors [][]Behavior // indexed like elements
	parents   []ElementID  // parent stack while Add recurses
	queue     EventQueue
	resources Resources
	theme     Theme
	logger    *slog.Logger
	pointer   Vector // last pointer position, root space
}

// Option configures a Gui instance.
type Option func(*Gui)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gui) { g.logger = logger }
}

// WithResources sets the resource provider handed to layout and draw.
func WithResources(res Resources) Option {
	return func(g *Gui) { g.resources = res }
}

// WithTheme sets the theme applied to Themed behaviors.
func WithTheme(theme Theme) Option {
	return func(g *Gui) { g.theme = theme }
}

// New creates an empty Gui.
func New(opts ...Option) *Gui {
	g := &Gui{
		resources: NewAssets(),
		theme:     DefaultTheme(),
		logger:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Elements returns the element tree.
func (g *Gui) Elements() *Elements {
	return &g.elements
}

// Resources returns the resource provider.
func (g *Gui) Resources() Resources {
	return g.resources
}

// Theme returns the current theme.
func (g *Gui) Theme() Theme {
	return g.theme
}

// SetTheme replaces the theme and re-applies it to every Themed behavior.
func (g *Gui) SetTheme(theme Theme) {
	g.theme = theme
	for _, list := range g.behaviors {
		for _, b := range list {
			if t, ok := b.(Themed); ok {
				t.ApplyTheme(theme)
			}
		}
	}
}

// Add appends an element and, depth-first, its children. Children get the
// new element as parent. The returned id is the top-level element's.
func (g *Gui) Add(settings ElementSettings) ElementID {
	var parent ElementID
	if n := len(g.parents); n > 0 {
		parent = g.parents[n-1]
	}

	id := g.elements.push(Element{
		Rect:   settings.Rect,
		Height: settings.Height,
		Name:   settings.Name,
		parent: parent,
	})

	behaviors := append([]Behavior(nil), settings.Behaviors...)
	for _, b := range behaviors {
		if t, ok := b.(Themed); ok {
			t.ApplyTheme(g.theme)
		}
	}
	g.behaviors = append(g.behaviors, behaviors)

	g.parents = append(g.parents, id)
	for _, child := range settings.Children {
		g.Add(child)
	}
	g.parents = g.parents[:len(g.parents)-1]

	return id
}

// Behaviors returns the behaviors attached to id.
func (g *Gui) Behaviors(id ElementID) []Behavior {
	g.elements.Get(id)
	return g.behaviors[id.index()]
}

// DrainOutputEvents returns and clears the events behaviors sent to the host.
func (g *Gui) DrainOutputEvents() []Event {
	return g.queue.drainOutput()
}

// SetParameter tells every behavior that a parameter changed outside the
// GUI, e.g. from host automation.
func (g *Gui) SetParameter(index int, value float32) {
	g.Emit(SetParameter{Index: index, Value: value}, ElementID{})
}

// ResetParameter tells every behavior that a parameter returned to its default.
func (g *Gui) ResetParameter(index int) {
	g.Emit(ResetParameter{Index: index}, ElementID{})
}
