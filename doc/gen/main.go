// Command gen renders the demo editor in a few themes and interaction
// states, captures framebuffer pixels, and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/knobs-audio/knobs"
	"github.com/knobs-audio/knobs/backend/opengl"
	"github.com/knobs-audio/knobs/example/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture of the demo editor.
type screenshot struct {
	name  string           // filename without extension
	theme knobs.Theme      // theme the editor is built with
	debug bool             // draw element outlines
	input func(*knobs.Gui) // pointer input replayed before capture
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(demo.Width, demo.Height, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	assets := knobs.NewAssets()
	font, err := assets.LoadDefaultFont()
	if err != nil {
		return err
	}

	renderer, err := opengl.NewRenderer(demo.Width, demo.Height, assets)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		ui := knobs.New(knobs.WithResources(assets), knobs.WithTheme(s.theme))
		demo.Build(ui, font, slog.New(slog.DiscardHandler))
		if s.input != nil {
			s.input(ui)
		}

		if err := capture(renderer, ui, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, demo.Width, demo.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, ui *knobs.Gui, s screenshot, outDir string) error {
	const width, height = demo.Width, demo.Height

	bg := s.theme.Background
	gl.Viewport(0, 0, width, height)
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if err := renderer.Frame(ui, s.debug); err != nil {
		return err
	}

	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows start at the bottom.
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// knobCenter returns the root-space center of the named knob after layout.
func knobCenter(ui *knobs.Gui, name string) knobs.Vector {
	ui.Layout()
	id, ok := ui.Elements().Lookup(name)
	if !ok {
		return knobs.Vector{}
	}
	return ui.Elements().AbsoluteRect(id).Center()
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "demo_dark", theme: knobs.DarkTheme()},
		{name: "demo_light", theme: knobs.LightTheme()},
		{
			name:  "demo_hover",
			theme: knobs.DarkTheme(),
			input: func(ui *knobs.Gui) {
				c := knobCenter(ui, "Drive")
				ui.OnMoveMouse(c.X, c.Y, 0, 0)
			},
		},
		{
			name:  "demo_drag",
			theme: knobs.DarkTheme(),
			input: func(ui *knobs.Gui) {
				c := knobCenter(ui, "Tone")
				ui.OnMoveMouse(c.X, c.Y, 0, 0)
				ui.OnPressMouseButton(knobs.MouseButtonLeft)
				for range 5 {
					c.Y -= 4
					ui.OnMoveMouse(c.X, c.Y, 0, -4)
				}
			},
		},
		{
			name:  "demo_debug",
			theme: knobs.DarkTheme(),
			debug: true,
			input: func(ui *knobs.Gui) {
				c := knobCenter(ui, "Gain")
				ui.OnMoveMouse(c.X, c.Y, 0, 0)
			},
		},
	}
}
