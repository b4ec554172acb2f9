package renderer

import (
	"time"

	"material-scene/internal/graphics"
	"material-scene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters, fixed for the demo's non-resizable window.
const (
	fovDegrees = 45.0
	nearPlane  = 0.1
	farPlane   = 100.0
)

// Renderer orchestrates rendering via renderable features. Renderables are
// drawn in construction order, so callers list the transparent cube after
// the opaque objects and the HUD last.
type Renderer struct {
	renderables []Renderable
	projection  mgl32.Mat4
}

// New configures global GL state and initializes the given renderables.
func New(rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	// Face culling stays off: the transparent cube shows its back faces
	// through the front ones.

	r := &Renderer{
		renderables: rs,
		projection: mgl32.Perspective(
			mgl32.DegToRad(fovDegrees),
			float32(graphics.WinWidth)/float32(graphics.WinHeight),
			nearPlane, farPlane),
	}

	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Render draws one frame of the scene.
func (r *Renderer) Render(s *scene.Scene, now time.Time, dt float64) {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Scene: s,
		View:  s.Camera.ViewMatrix(),
		Proj:  r.projection,
		Eye:   s.Camera.Eye(),
		Alpha: scene.CubeAlpha(s.ElapsedSeconds(now)),
		DT:    dt,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
