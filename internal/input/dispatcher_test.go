package input

import (
	"testing"
	"time"

	"material-scene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() (*Dispatcher, *scene.Scene) {
	s := scene.New(time.Now())
	return New(s), s
}

func TestKeyEventAloneDoesNotMoveLight(t *testing.T) {
	d, s := newTestDispatcher()
	before := s.Light.Position

	// The callback path only marks the key held; movement happens in Update
	d.HandleKey(glfw.KeyW, glfw.Press, 0)
	d.HandleKey(glfw.KeyW, glfw.Repeat, 0)
	assert.Equal(t, before, s.Light.Position)
}

func TestHeldKeyMovesLightViaUpdate(t *testing.T) {
	d, s := newTestDispatcher()
	require.Equal(t, float32(0), s.Camera.Yaw)
	before := s.Light.Position

	d.HandleKey(glfw.KeyW, glfw.Press, 0)
	d.Update(0.5)

	// At yaw 0 the ground-plane forward axis is -Z; 2 units/s for 0.5 s
	assert.InDelta(t, float64(before.Z())-1.0, float64(s.Light.Position.Z()), 1e-5)
	assert.InDelta(t, float64(before.X()), float64(s.Light.Position.X()), 1e-5)
	assert.InDelta(t, float64(before.Y()), float64(s.Light.Position.Y()), 1e-5)
}

func TestReleaseStopsMovement(t *testing.T) {
	d, s := newTestDispatcher()

	d.HandleKey(glfw.KeyD, glfw.Press, 0)
	d.Update(0.1)
	moved := s.Light.Position

	d.HandleKey(glfw.KeyD, glfw.Release, 0)
	d.Update(0.1)
	assert.Equal(t, moved, s.Light.Position)
}

func TestVerticalMovementIsWorldAligned(t *testing.T) {
	d, s := newTestDispatcher()
	s.Camera.Rotate(123, 45) // vertical movement must ignore the orbit
	before := s.Light.Position

	d.HandleKey(glfw.KeyUp, glfw.Press, 0)
	d.Update(0.25)

	assert.InDelta(t, float64(before.Y())+0.5, float64(s.Light.Position.Y()), 1e-5)
	assert.InDelta(t, float64(before.X()), float64(s.Light.Position.X()), 1e-5)
	assert.InDelta(t, float64(before.Z()), float64(s.Light.Position.Z()), 1e-5)
}

func TestIntensityHold(t *testing.T) {
	d, s := newTestDispatcher()
	start := s.Light.Intensity

	d.HandleKey(glfw.KeyQ, glfw.Press, 0)
	d.Update(1.0)
	assert.InDelta(t, float64(start)+0.5, float64(s.Light.Intensity), 1e-5)

	d.HandleKey(glfw.KeyQ, glfw.Release, 0)
	d.HandleKey(glfw.KeyE, glfw.Press, 0)
	for i := 0; i < 100; i++ {
		d.Update(1.0)
	}
	assert.Equal(t, float32(0), s.Light.Intensity)
}

func TestColorKeysStepChannels(t *testing.T) {
	d, s := newTestDispatcher()

	// Bare key darkens
	d.HandleKey(glfw.KeyR, glfw.Press, 0)
	assert.InDelta(t, 0.9, float64(s.Light.Color.X()), 1e-5)

	// Shift brightens, clamped at 1
	d.HandleKey(glfw.KeyR, glfw.Press, glfw.ModShift)
	d.HandleKey(glfw.KeyR, glfw.Press, glfw.ModShift)
	assert.Equal(t, float32(1), s.Light.Color.X())

	// Repeat events keep stepping; 20 of them pin the channel at zero
	for i := 0; i < 20; i++ {
		d.HandleKey(glfw.KeyG, glfw.Repeat, 0)
	}
	assert.Equal(t, float32(0), s.Light.Color.Y())
}

func TestHelpTogglesOnPressOnly(t *testing.T) {
	d, s := newTestDispatcher()
	initial := s.ShowHelp

	d.HandleKey(glfw.KeyH, glfw.Press, 0)
	assert.Equal(t, !initial, s.ShowHelp)

	// Key repeat must not flip the overlay
	d.HandleKey(glfw.KeyH, glfw.Repeat, 0)
	assert.Equal(t, !initial, s.ShowHelp)

	d.HandleKey(glfw.KeyH, glfw.Press, 0)
	assert.Equal(t, initial, s.ShowHelp)
}

func TestScrollClampsDistance(t *testing.T) {
	d, s := newTestDispatcher()

	for i := 0; i < 100; i++ {
		d.HandleScroll(-1) // scroll down zooms out
	}
	assert.Equal(t, float32(scene.MaxDistance), s.Camera.Distance)

	for i := 0; i < 100; i++ {
		d.HandleScroll(1)
	}
	assert.Equal(t, float32(scene.MinDistance), s.Camera.Distance)
}

func TestLeftDragRotates(t *testing.T) {
	d, s := newTestDispatcher()
	startYaw, startPitch := s.Camera.Yaw, s.Camera.Pitch

	d.HandleCursorPos(100, 100) // prime
	d.HandleMouseButton(glfw.MouseButtonLeft, glfw.Press)
	d.HandleCursorPos(110, 104)

	assert.InDelta(t, float64(startYaw)+5, float64(s.Camera.Yaw), 1e-5)
	assert.InDelta(t, float64(startPitch)+2, float64(s.Camera.Pitch), 1e-5)
}

func TestDragPitchStaysClamped(t *testing.T) {
	d, s := newTestDispatcher()

	d.HandleCursorPos(0, 0)
	d.HandleMouseButton(glfw.MouseButtonLeft, glfw.Press)
	for i := 0; i < 100; i++ {
		d.HandleCursorPos(0, float64(i*50))
	}
	assert.Equal(t, float32(scene.MaxPitch), s.Camera.Pitch)
}

func TestMiddleDragPans(t *testing.T) {
	d, s := newTestDispatcher()

	d.HandleCursorPos(50, 50)
	d.HandleMouseButton(glfw.MouseButtonMiddle, glfw.Press)
	d.HandleCursorPos(150, 50)

	assert.InDelta(t, 1.0, float64(s.Camera.Pan.X()), 1e-5)
	assert.InDelta(t, 0.0, float64(s.Camera.Pan.Y()), 1e-5)
}

func TestCursorMoveWithoutButtonDoesNothing(t *testing.T) {
	d, s := newTestDispatcher()
	before := s.Camera

	d.HandleCursorPos(10, 10)
	d.HandleCursorPos(500, 500)
	assert.Equal(t, before, s.Camera)
}

func TestFirstCursorSampleOnlyPrimes(t *testing.T) {
	d, s := newTestDispatcher()
	before := s.Camera

	d.HandleMouseButton(glfw.MouseButtonLeft, glfw.Press)
	d.HandleCursorPos(400, 300) // first sample ever: no delta yet
	assert.Equal(t, before, s.Camera)
}
