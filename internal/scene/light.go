package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is the single point light illuminating the scene. All mutation goes
// through the methods below so the invariants (channels in [0,1], intensity
// never negative) hold no matter what sequence of input events arrives.
type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// NewLight returns the startup light: white, full intensity, above and in
// front of the objects.
func NewLight() Light {
	return Light{
		Position:  mgl32.Vec3{0, 2, 2},
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
	}
}

// Translate moves the light by delta in world space.
func (l *Light) Translate(delta mgl32.Vec3) {
	l.Position = l.Position.Add(delta)
}

// AdjustIntensity changes the light intensity by delta, flooring at zero.
// There is no upper bound; the scene just washes out if pushed far.
func (l *Light) AdjustIntensity(delta float32) {
	l.Intensity += delta
	if l.Intensity < 0 {
		l.Intensity = 0
	}
}

// AdjustChannel changes one RGB channel (0=red, 1=green, 2=blue) by delta,
// clamped to [0,1]. Adjusting past a bound is a no-op, not an error.
func (l *Light) AdjustChannel(channel int, delta float32) {
	if channel < 0 || channel > 2 {
		return
	}
	v := l.Color[channel] + delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	l.Color[channel] = v
}

// Radiance is the color the shaders receive: color scaled by intensity.
func (l *Light) Radiance() mgl32.Vec3 {
	return l.Color.Mul(l.Intensity)
}
