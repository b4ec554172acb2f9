package renderer

import (
	"material-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables.
type RenderContext struct {
	Scene *scene.Scene
	View  mgl32.Mat4
	Proj  mgl32.Mat4
	Eye   mgl32.Vec3
	// Alpha is the cube transparency for this frame, derived from the
	// elapsed-time clock.
	Alpha float32
	DT    float64
}

// Renderable is the lifecycle every drawable feature implements.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
