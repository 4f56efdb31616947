// Example ebiten shows the demo editor through the Ebitengine backend.
//
//	go run ./example/ebiten -theme theme.toml
//
// With -theme the file is watched and the editor restyles itself whenever
// it is saved. F1 toggles element outlines.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/knobs-audio/knobs"
	"github.com/knobs-audio/knobs/backend/ebitengine"
	"github.com/knobs-audio/knobs/example/demo"
)

func main() {
	themePath := flag.String("theme", "", "TOML or YAML theme file to load and watch")
	light := flag.Bool("light", false, "use the light theme")
	verbose := flag.Bool("v", false, "log every event")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*themePath, *light, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themePath string, light bool, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme := knobs.DarkTheme()
	if light {
		theme = knobs.LightTheme()
	}

	var themes <-chan knobs.Theme
	if themePath != "" {
		var err error
		themes, err = knobs.WatchTheme(ctx, themePath, logger)
		if err != nil {
			return err
		}
		theme = <-themes
	}

	assets := knobs.NewAssets()
	font, err := assets.LoadDefaultFont()
	if err != nil {
		return err
	}

	ui := knobs.New(knobs.WithResources(assets), knobs.WithTheme(theme), knobs.WithLogger(logger))
	demo.Build(ui, font, logger)

	game := &themedGame{
		Game:   ebitengine.NewGame(ui, demo.Width, demo.Height),
		ui:     ui,
		themes: themes,
		ctx:    ctx,
	}
	game.OnOutput = func(ev knobs.Event) { demo.LogOutput(logger, ev) }

	ebiten.SetWindowSize(demo.Width, demo.Height)
	ebiten.SetWindowTitle("knobs (Ebitengine)")
	ebiten.SetVsyncEnabled(true)

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(game)
}

// themedGame applies reloaded themes on the game goroutine and quits on
// interrupt.
type themedGame struct {
	*ebitengine.Game

	ui     *knobs.Gui
	themes <-chan knobs.Theme
	ctx    context.Context
}

func (g *themedGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	select {
	case theme, ok := <-g.themes:
		if ok {
			g.ui.SetTheme(theme)
			g.Background = theme.Background
		}
	default:
	}

	return g.Game.Update()
}
