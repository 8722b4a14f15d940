package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-infinitegrid/camera"
	"github.com/samuelyuan/go-infinitegrid/render"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func run(settings Settings) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	cam := camera.NewController()
	windowHandler, err := NewWindowHandler(settings, cam)
	if err != nil {
		return err
	}
	defer windowHandler.destroy()

	renderer := render.NewRenderer(render.DefaultGridStyle())
	if err := renderer.Init(render.Shaders); err != nil {
		return err
	}
	defer renderer.Delete()

	log.Println("Rendering infinite grid. WASD to move, mouse to look, scroll to zoom, Esc to quit.")

	for !windowHandler.shouldClose() {
		if !windowHandler.startFrame() {
			continue
		}

		renderer.Viewport(windowHandler.framebufferSize())

		cam.OnTick(windowHandler.inputHandler.movement(), windowHandler.getTimeSinceLastFrame())

		view := cam.ViewMatrix()
		projection := cam.ProjectionMatrix(windowHandler.aspectRatio())
		renderer.DrawFrame(view, projection, cam.Position())

		windowHandler.endFrame()
	}
	return nil
}

func main() {
	settings, err := parseSettings(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err := run(settings); err != nil {
		log.Fatal(err)
	}
}
