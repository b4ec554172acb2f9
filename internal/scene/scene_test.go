package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCubeAlphaStaysInRange(t *testing.T) {
	for tt := 0.0; tt < 20.0; tt += 0.01 {
		a := CubeAlpha(tt)
		assert.GreaterOrEqual(t, a, float32(0.5), "t=%v", tt)
		assert.LessOrEqual(t, a, float32(0.9), "t=%v", tt)
	}
}

func TestCubeAlphaMidpointAtStart(t *testing.T) {
	assert.InDelta(t, 0.7, float64(CubeAlpha(0)), 1e-6)
}

func TestCubeAlphaIsPeriodic(t *testing.T) {
	for _, tt := range []float64{0, 0.3, 1.1, 2.7, 3.9} {
		assert.InDelta(t, float64(CubeAlpha(tt)), float64(CubeAlpha(tt+alphaPeriod)), 1e-5)
	}
}

func TestCubeAlphaReachesExtremes(t *testing.T) {
	// Quarter period past start is the peak, three quarters the trough
	assert.InDelta(t, 0.9, float64(CubeAlpha(alphaPeriod/4)), 1e-5)
	assert.InDelta(t, 0.5, float64(CubeAlpha(3*alphaPeriod/4)), 1e-5)
}

func TestToggleHelpTwiceRestoresState(t *testing.T) {
	s := New(time.Now())
	initial := s.ShowHelp

	s.ToggleHelp()
	assert.Equal(t, !initial, s.ShowHelp)
	s.ToggleHelp()
	assert.Equal(t, initial, s.ShowHelp)
}

func TestElapsedSeconds(t *testing.T) {
	start := time.Now()
	s := New(start)
	assert.InDelta(t, 2.5, s.ElapsedSeconds(start.Add(2500*time.Millisecond)), 1e-9)
}

func TestStatusLinesAlwaysShowValues(t *testing.T) {
	s := New(time.Now())
	s.ShowHelp = false

	text := strings.Join(s.StatusLines(0.7), "\n")
	assert.Contains(t, text, "Light position:")
	assert.Contains(t, text, "Light intensity:")
	assert.Contains(t, text, "Light color:")
	assert.Contains(t, text, "Camera distance:")
	assert.Contains(t, text, "Cube alpha: 0.70")
	assert.NotContains(t, text, "Controls:")
}

func TestStatusLinesIncludeHelpWhenToggled(t *testing.T) {
	s := New(time.Now())
	s.ShowHelp = true

	text := strings.Join(s.StatusLines(0.7), "\n")
	assert.Contains(t, text, "Controls:")
	assert.Contains(t, text, "H - Toggle help")
	assert.Contains(t, text, "Mouse wheel - Zoom")
}
