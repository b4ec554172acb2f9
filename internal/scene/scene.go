package scene

import (
	"fmt"
	"math"
	"time"
)

// Cube transparency oscillation: midpoint 0.7, amplitude 0.2, so the alpha
// sweeps [0.5, 0.9] once every alphaPeriod seconds.
const (
	alphaMid    = 0.7
	alphaAmp    = 0.2
	alphaPeriod = 4.0
)

// Scene aggregates all mutable demo state. One instance is created at
// startup and shared by reference between the input dispatcher (writer) and
// the renderer (reader); both run on the main thread, so no locking.
type Scene struct {
	Camera Camera
	Light  Light

	Cube   Material
	Sphere Material
	Torus  Material

	ShowHelp bool

	start time.Time
}

// New returns the startup scene state. The help overlay starts visible.
func New(now time.Time) *Scene {
	return &Scene{
		Camera:   NewCamera(),
		Light:    NewLight(),
		Cube:     CubeMaterial(),
		Sphere:   SphereMaterial(),
		Torus:    TorusMaterial(),
		ShowHelp: true,
		start:    now,
	}
}

// ToggleHelp flips the help overlay visibility.
func (s *Scene) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
}

// ElapsedSeconds returns the animation clock: wall time since startup.
func (s *Scene) ElapsedSeconds(now time.Time) float64 {
	return now.Sub(s.start).Seconds()
}

// CubeAlpha maps elapsed seconds to the cube's transparency. Time-based
// rather than frame-based, so the pulse speed is independent of frame rate.
func CubeAlpha(elapsed float64) float32 {
	return float32(alphaMid + alphaAmp*math.Sin(2*math.Pi*elapsed/alphaPeriod))
}

// StatusLines produces the HUD text: live values always, the control
// listing only while help is toggled on. alpha is the cube transparency of
// the current frame.
func (s *Scene) StatusLines(alpha float32) []string {
	lines := []string{
		fmt.Sprintf("Light position: (%.1f, %.1f, %.1f)",
			s.Light.Position.X(), s.Light.Position.Y(), s.Light.Position.Z()),
		fmt.Sprintf("Light intensity: %.2f", s.Light.Intensity),
		fmt.Sprintf("Light color: (%.2f, %.2f, %.2f)",
			s.Light.Color.X(), s.Light.Color.Y(), s.Light.Color.Z()),
		fmt.Sprintf("Camera distance: %.1f", s.Camera.Distance),
		fmt.Sprintf("Cube alpha: %.2f", alpha),
	}
	if s.ShowHelp {
		lines = append(lines,
			"",
			"Controls:",
			"H - Toggle help",
			"WASD - Move light horizontally",
			"Q/E - Raise/lower light intensity",
			"R/G/B - Darken color channel (with Shift: brighten)",
			"Arrow keys - Move light vertically",
			"Left drag - Rotate camera",
			"Middle drag - Pan camera",
			"Mouse wheel - Zoom",
		)
	}
	return lines
}
