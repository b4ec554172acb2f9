package lightmarker

import (
	"material-scene/internal/geometry"
	"material-scene/internal/graphics"
	renderer "material-scene/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	radius   = 0.1
	segments = 8
	rings    = 8
)

// LightMarker draws a small unlit sphere at the light's position, in the
// light's color, so the user can see what they are steering.
type LightMarker struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
}

func New() *LightMarker {
	return &LightMarker{}
}

func (m *LightMarker) Init() error {
	var err error
	m.shader, err = graphics.NewShader(graphics.ShaderPaths("flat"))
	if err != nil {
		return err
	}

	verts := geometry.Sphere(radius, segments, rings)
	m.count = int32(geometry.VertexCount(verts))
	m.vao, m.vbo = graphics.SetupMeshVAO(verts)
	return nil
}

func (m *LightMarker) Render(ctx renderer.RenderContext) {
	light := &ctx.Scene.Light

	m.shader.Use()
	model := mgl32.Translate3D(light.Position.X(), light.Position.Y(), light.Position.Z())
	mvp := ctx.Proj.Mul4(ctx.View).Mul4(model)
	m.shader.SetMatrix4("mvp", &mvp[0])
	m.shader.SetVector3("color", light.Color.X(), light.Color.Y(), light.Color.Z())

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *LightMarker) Dispose() {
	graphics.DeleteMesh(m.vao, m.vbo)
}
