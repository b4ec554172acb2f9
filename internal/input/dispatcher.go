// Package input maps GLFW keyboard and mouse events onto scene state
// mutations. The Dispatcher never touches a window, so the whole mapping is
// testable headless; the cmd wiring forwards raw callback arguments here.
package input

import (
	"material-scene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Tuning constants. Held-key effects are per second and scaled by dt in
// Update, so behavior does not depend on frame rate.
const (
	lightMoveSpeed = 2.0  // world units per second
	intensitySpeed = 0.5  // intensity per second
	colorStep      = 0.1  // per key event
	rotateSpeed    = 0.5  // degrees per pixel of drag
	panSpeed       = 0.01 // world units per pixel of drag
	zoomStep       = 1.0  // distance per wheel notch
)

// Dispatcher translates window events into mutations on a Scene.
//
// Discrete events (help toggle, color steps) apply in the key callback.
// Held keys only mark state; their effect is applied exclusively in Update,
// so an event can never be double-counted between the callback path and the
// per-frame path.
type Dispatcher struct {
	scene *scene.Scene

	held map[glfw.Key]bool

	dragButton glfw.MouseButton
	dragging   bool
	lastX      float64
	lastY      float64
	haveCursor bool
}

// New creates a dispatcher mutating the given scene.
func New(s *scene.Scene) *Dispatcher {
	return &Dispatcher{
		scene: s,
		held:  make(map[glfw.Key]bool),
	}
}

// HandleKey processes a key event from the window system.
func (d *Dispatcher) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	switch key {
	case glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD,
		glfw.KeyUp, glfw.KeyDown, glfw.KeyQ, glfw.KeyE:
		switch action {
		case glfw.Press:
			d.held[key] = true
		case glfw.Release:
			delete(d.held, key)
		}
		return
	}

	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyH:
		if action == glfw.Press {
			d.scene.ToggleHelp()
		}
	case glfw.KeyR:
		d.scene.Light.AdjustChannel(0, colorDelta(mods))
	case glfw.KeyG:
		d.scene.Light.AdjustChannel(1, colorDelta(mods))
	case glfw.KeyB:
		d.scene.Light.AdjustChannel(2, colorDelta(mods))
	}
}

// Shift+key brightens the channel, the bare key darkens it.
func colorDelta(mods glfw.ModifierKey) float32 {
	if mods&glfw.ModShift != 0 {
		return colorStep
	}
	return -colorStep
}

// HandleMouseButton tracks which button, if any, is dragging the camera.
func (d *Dispatcher) HandleMouseButton(button glfw.MouseButton, action glfw.Action) {
	switch action {
	case glfw.Press:
		d.dragButton = button
		d.dragging = true
	case glfw.Release:
		if button == d.dragButton {
			d.dragging = false
		}
	}
}

// HandleCursorPos accumulates drag deltas into camera rotation or pan. The
// first sample after startup only primes the previous position.
func (d *Dispatcher) HandleCursorPos(x, y float64) {
	if !d.haveCursor {
		d.lastX, d.lastY = x, y
		d.haveCursor = true
		return
	}

	dx := float32(x - d.lastX)
	dy := float32(y - d.lastY)
	d.lastX, d.lastY = x, y

	if !d.dragging {
		return
	}

	switch d.dragButton {
	case glfw.MouseButtonLeft:
		d.scene.Camera.Rotate(dx*rotateSpeed, dy*rotateSpeed)
	case glfw.MouseButtonMiddle:
		d.scene.Camera.PanBy(dx*panSpeed, -dy*panSpeed)
	}
}

// HandleScroll zooms the camera. Scrolling up moves closer.
func (d *Dispatcher) HandleScroll(yoff float64) {
	d.scene.Camera.Zoom(float32(-yoff) * zoomStep)
}

// Update applies the effect of currently held keys for a frame of dt
// seconds. Light movement is camera-relative on the ground plane, vertical
// movement world-aligned.
func (d *Dispatcher) Update(dt float64) {
	step := float32(dt) * lightMoveSpeed
	cam := &d.scene.Camera

	if d.held[glfw.KeyW] {
		d.scene.Light.Translate(cam.ForwardXZ().Mul(step))
	}
	if d.held[glfw.KeyS] {
		d.scene.Light.Translate(cam.ForwardXZ().Mul(-step))
	}
	if d.held[glfw.KeyA] {
		d.scene.Light.Translate(cam.RightXZ().Mul(-step))
	}
	if d.held[glfw.KeyD] {
		d.scene.Light.Translate(cam.RightXZ().Mul(step))
	}
	if d.held[glfw.KeyUp] {
		d.scene.Light.Translate(mgl32.Vec3{0, step, 0})
	}
	if d.held[glfw.KeyDown] {
		d.scene.Light.Translate(mgl32.Vec3{0, -step, 0})
	}

	if d.held[glfw.KeyQ] {
		d.scene.Light.AdjustIntensity(float32(dt) * intensitySpeed)
	}
	if d.held[glfw.KeyE] {
		d.scene.Light.AdjustIntensity(-float32(dt) * intensitySpeed)
	}
}
