package main

import (
	"fmt"
	"runtime"
	"time"

	"material-scene/internal/graphics"
	renderer "material-scene/internal/graphics/renderer"
	"material-scene/internal/graphics/renderables/cube"
	"material-scene/internal/graphics/renderables/hud"
	"material-scene/internal/graphics/renderables/lightmarker"
	"material-scene/internal/graphics/renderables/sphere"
	"material-scene/internal/graphics/renderables/torus"
	"material-scene/internal/input"
	"material-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	// Draw order matters: opaque objects first, the transparent cube after
	// them, the HUD on top of everything.
	r, err := renderer.New(
		lightmarker.New(),
		sphere.New(),
		torus.New(),
		cube.New(),
		hud.New(),
	)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	demoScene := scene.New(time.Now())
	dispatcher := input.New(demoScene)
	setupInputHandlers(window, dispatcher)

	runRenderLoop(window, r, dispatcher, demoScene)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(graphics.WinWidth, graphics.WinHeight, "Material Scene", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return nil, err
	}

	return window, nil
}

func setupInputHandlers(window *glfw.Window, dispatcher *input.Dispatcher) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		dispatcher.HandleKey(key, action, mods)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		dispatcher.HandleMouseButton(button, action)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		dispatcher.HandleCursorPos(xpos, ypos)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		dispatcher.HandleScroll(yoff)
	})
}

func runRenderLoop(window *glfw.Window, r *renderer.Renderer, dispatcher *input.Dispatcher, s *scene.Scene) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		dispatcher.Update(dt)
		r.Render(s, now, dt)

		frames++
		if time.Since(lastFPSCheckTime) >= time.Second {
			fmt.Println("FPS: ", frames)
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
