package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/knobs-audio/knobs"
)

// Game runs a knobs.Gui inside ebiten.RunGame. Input is polled every tick
// and fed through a knobs.Pointer; F1 toggles the debug overlay.
type Game struct {
	Width, Height int
	Background    knobs.Color

	// OnOutput receives the output events produced during each tick.
	OnOutput func(knobs.Event)

	gui      *knobs.Gui
	renderer *Renderer
	pointer  *knobs.Pointer
	debug    bool
	err      error
}

// NewGame creates a game for gui with a logical screen of width x height.
func NewGame(gui *knobs.Gui, width, height int) *Game {
	return &Game{
		Width:      width,
		Height:     height,
		Background: gui.Theme().Background,
		gui:        gui,
		renderer:   NewRenderer(gui.Resources()),
		pointer:    knobs.NewPointer(gui),
	}
}

// Renderer returns the renderer used by Draw.
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

// Debug reports whether the debug overlay is shown.
func (g *Game) Debug() bool {
	return g.debug
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	x, y := ebiten.CursorPosition()
	g.pointer.MoveTo(float32(x), float32(y))
	for button, eb := range ebitenButtons {
		g.pointer.SetButton(knobs.MouseButton(button), ebiten.IsMouseButtonPressed(eb))
	}

	for _, ev := range g.gui.DrainOutputEvents() {
		if g.OnOutput != nil {
			g.OnOutput(ev)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)

	canvas := g.gui.Draw()
	if g.debug {
		g.gui.DrawDebug(canvas)
	}
	if err := g.renderer.Draw(screen, canvas); err != nil {
		// Draw cannot fail, so the error surfaces from the next Update.
		g.err = err
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// Indexed by knobs.MouseButton.
var ebitenButtons = [knobs.MouseButtonCount]ebiten.MouseButton{
	knobs.MouseButtonLeft:   ebiten.MouseButtonLeft,
	knobs.MouseButtonMiddle: ebiten.MouseButtonMiddle,
	knobs.MouseButtonRight:  ebiten.MouseButtonRight,
}
