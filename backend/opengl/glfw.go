package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/knobs-audio/knobs"
)

// InputAdapter forwards GLFW cursor and mouse button callbacks to a
// knobs.PointerTarget, usually a *knobs.Gui. Cursor positions are scaled to
// framebuffer pixels so they match what the renderer draws.
type InputAdapter struct {
	window  *glfw.Window
	pointer *knobs.Pointer
	debug   bool
}

// NewInputAdapter installs callbacks on window. F1 toggles Debug.
func NewInputAdapter(window *glfw.Window, target knobs.PointerTarget) *InputAdapter {
	a := &InputAdapter{
		window:  window,
		pointer: knobs.NewPointer(target),
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetKeyCallback(a.keyCallback)

	return a
}

// Pointer returns the pointer state fed by the callbacks.
func (a *InputAdapter) Pointer() *knobs.Pointer {
	return a.pointer
}

// Debug reports whether the debug overlay was toggled on.
func (a *InputAdapter) Debug() bool {
	return a.debug
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	sx, sy := a.scale()
	a.pointer.MoveTo(float32(xpos)*sx, float32(ypos)*sy)
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.pointer.SetButton(b, true)
	case glfw.Release:
		a.pointer.SetButton(b, false)
	}
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyF1 && action == glfw.Press {
		a.debug = !a.debug
	}
}

// scale returns the framebuffer to window size ratio, which is not 1 on
// HiDPI displays.
func (a *InputAdapter) scale() (float32, float32) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func glfwMouseButton(button glfw.MouseButton) (knobs.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return knobs.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return knobs.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return knobs.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
