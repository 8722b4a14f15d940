package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-infinitegrid/camera"
)

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler
	camera       *camera.Controller
	settings     Settings

	firstFrame    bool
	deltaTime     float64
	lastFrameTime float64
}

// NewWindowHandler creates the window and its GL context and routes cursor
// and scroll input to cam. glfw.Init must already have succeeded.
func NewWindowHandler(settings Settings, cam *camera.Controller) (*WindowHandler, error) {
	// Initialize and create window
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	glfwWindow.MakeContextCurrent()
	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	inputHandler := NewInputHandler()
	windowHandler := &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: inputHandler,
		camera:       cam,
		settings:     settings,
		firstFrame:   true,
	}

	glfwWindow.SetFramebufferSizeCallback(resizeCallback)
	glfwWindow.SetKeyCallback(inputHandler.keyCallback)
	glfwWindow.SetCursorPosCallback(windowHandler.cursorPosCallback)
	glfwWindow.SetScrollCallback(windowHandler.scrollCallback)

	// Capture the cursor for mouse look
	glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return windowHandler, nil
}

// Resize the viewport with the framebuffer
func resizeCallback(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (windowHandler *WindowHandler) cursorPosCallback(w *glfw.Window, xpos float64, ypos float64) {
	windowHandler.camera.OnCursorMove(xpos, ypos)
}

func (windowHandler *WindowHandler) scrollCallback(w *glfw.Window, xoff float64, yoff float64) {
	windowHandler.camera.OnScroll(yoff)
}

// startFrame polls events and updates frame timing. It returns false when
// the window is minimized and nothing should be drawn.
func (windowHandler *WindowHandler) startFrame() bool {
	// Set frame time
	currentFrameTime := glfw.GetTime()

	if windowHandler.firstFrame {
		windowHandler.lastFrameTime = currentFrameTime
		windowHandler.firstFrame = false
	}

	windowHandler.deltaTime = currentFrameTime - windowHandler.lastFrameTime
	windowHandler.lastFrameTime = currentFrameTime

	// Window events for keyboard and mouse
	glfw.PollEvents()

	if windowHandler.inputHandler.isActive(PROGRAM_QUIT) {
		windowHandler.glfwWindow.SetShouldClose(true)
	}

	if windowHandler.glfwWindow.GetAttrib(glfw.Iconified) != 0 {
		// Block until restored instead of spinning, and restart frame timing
		// so the time spent minimized is not applied as movement
		glfw.WaitEvents()
		windowHandler.firstFrame = true
		windowHandler.camera.ResetCursor()
		return false
	}
	return true
}

func (windowHandler *WindowHandler) endFrame() {
	windowHandler.glfwWindow.SwapBuffers()
}

func (windowHandler *WindowHandler) shouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

func (windowHandler *WindowHandler) getTimeSinceLastFrame() float64 {
	return windowHandler.deltaTime
}

func (windowHandler *WindowHandler) framebufferSize() (int, int) {
	return windowHandler.glfwWindow.GetFramebufferSize()
}

// aspectRatio uses the framebuffer size, falling back to the configured
// window size while the framebuffer is degenerate.
func (windowHandler *WindowHandler) aspectRatio() float32 {
	width, height := windowHandler.framebufferSize()
	return aspectRatio(width, height, windowHandler.settings)
}

func aspectRatio(width, height int, settings Settings) float32 {
	if width <= 0 || height <= 0 {
		return float32(settings.Width) / float32(settings.Height)
	}
	return float32(width) / float32(height)
}

func (windowHandler *WindowHandler) destroy() {
	windowHandler.glfwWindow.Destroy()
}
