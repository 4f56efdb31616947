// Example opengl shows the demo editor in a GLFW window drawn by the
// OpenGL backend.
//
//	go run ./example/opengl
//
// Drag a knob vertically to change it, right click to reset it. F1 toggles
// element outlines.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/knobs-audio/knobs"
	"github.com/knobs-audio/knobs/backend/opengl"
	"github.com/knobs-audio/knobs/example/demo"
)

const windowTitle = "knobs (OpenGL)"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log every event")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(demo.Width, demo.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	assets := knobs.NewAssets()
	font, err := assets.LoadDefaultFont()
	if err != nil {
		return err
	}

	ui := knobs.New(knobs.WithResources(assets), knobs.WithLogger(logger))
	demo.Build(ui, font, logger)

	w, h := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h, assets)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewInputAdapter(window, ui)
	background := ui.Theme().Background

	for !window.ShouldClose() {
		glfw.PollEvents()

		for _, ev := range ui.DrainOutputEvents() {
			demo.LogOutput(logger, ev)
		}

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(background.R, background.G, background.B, background.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := renderer.Frame(ui, input.Debug()); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
