package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scoped/toolkit"
)

// GLFWInputAdapter feeds GLFW input into a toolkit.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *toolkit.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  toolkit.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame, before polling events.
func (a *GLFWInputAdapter) Update() *toolkit.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *toolkit.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	tkKey := glfwKeyToToolkit(key)
	if tkKey == toolkit.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(tkKey, true)
	case glfw.Release:
		a.input.SetKey(tkKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	tkButton := glfwMouseButtonToToolkit(button)
	if tkButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(tkButton, true)
	case glfw.Release:
		a.input.SetMouseButton(tkButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToToolkit maps GLFW keys to toolkit keys.
func glfwKeyToToolkit(key glfw.Key) toolkit.Key {
	switch key {
	case glfw.KeyTab:
		return toolkit.KeyTab
	case glfw.KeyLeft:
		return toolkit.KeyLeft
	case glfw.KeyRight:
		return toolkit.KeyRight
	case glfw.KeyUp:
		return toolkit.KeyUp
	case glfw.KeyDown:
		return toolkit.KeyDown
	case glfw.KeyHome:
		return toolkit.KeyHome
	case glfw.KeyEnd:
		return toolkit.KeyEnd
	case glfw.KeyDelete:
		return toolkit.KeyDelete
	case glfw.KeyBackspace:
		return toolkit.KeyBackspace
	case glfw.KeySpace:
		return toolkit.KeySpace
	case glfw.KeyEnter:
		return toolkit.KeyEnter
	case glfw.KeyEscape:
		return toolkit.KeyEscape
	default:
		return toolkit.KeyNone
	}
}

// glfwMouseButtonToToolkit maps GLFW mouse buttons to toolkit buttons.
func glfwMouseButtonToToolkit(button glfw.MouseButton) toolkit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return toolkit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return toolkit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return toolkit.MouseButtonMiddle
	default:
		return -1
	}
}
