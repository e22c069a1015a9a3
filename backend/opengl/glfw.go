package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/wheel"
)

// GLFWInputAdapter adapts GLFW callbacks to wheel.InputState.
//
// Per frame: glfw.PollEvents, Update, feed the returned state to trackers,
// then EndFrame to drop the frame's edges.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *wheel.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  wheel.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFocusCallback(adapter.focusCallback)

	return adapter
}

// Update refreshes the cursor position and returns the frame's state.
func (a *GLFWInputAdapter) Update() *wheel.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// EndFrame clears press/release edges, wheel delta and Cancel.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *wheel.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToWheelKey(key)
	if k == wheel.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Repeats step the wheel again.
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToWheel(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelY + float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// focusCallback cancels drags when the window loses focus; the release
// would otherwise never arrive.
func (a *GLFWInputAdapter) focusCallback(w *glfw.Window, focused bool) {
	if !focused {
		a.input.Cancel = true
		a.input.SetMouseButton(wheel.MouseButtonLeft, false)
	}
}

func glfwKeyToWheelKey(key glfw.Key) wheel.Key {
	switch key {
	case glfw.KeyTab:
		return wheel.KeyTab
	case glfw.KeyLeft:
		return wheel.KeyLeft
	case glfw.KeyRight:
		return wheel.KeyRight
	case glfw.KeyUp:
		return wheel.KeyUp
	case glfw.KeyDown:
		return wheel.KeyDown
	case glfw.KeyEscape:
		return wheel.KeyEscape
	default:
		return wheel.KeyNone
	}
}

func glfwMouseButtonToWheel(button glfw.MouseButton) wheel.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return wheel.MouseButtonLeft
	case glfw.MouseButtonRight:
		return wheel.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return wheel.MouseButtonMiddle
	default:
		return -1
	}
}
