package renderer

import (
	"material-scene/internal/graphics"
	"material-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// SetPhongUniforms binds the shared uniforms of the phong shader: matrices,
// the point light scaled by its intensity, the viewer position and the
// object's material terms. The caller sets useTexture and binds its texture
// unit separately when it has one.
func SetPhongUniforms(sh *graphics.Shader, ctx RenderContext, model mgl32.Mat4, mat scene.Material, alpha float32) {
	sh.SetMatrix4("model", &model[0])
	sh.SetMatrix4("view", &ctx.View[0])
	sh.SetMatrix4("proj", &ctx.Proj[0])

	radiance := ctx.Scene.Light.Radiance()
	sh.SetVector3("lightPos", ctx.Scene.Light.Position.X(), ctx.Scene.Light.Position.Y(), ctx.Scene.Light.Position.Z())
	sh.SetVector3("lightColor", radiance.X(), radiance.Y(), radiance.Z())
	sh.SetVector3("viewPos", ctx.Eye.X(), ctx.Eye.Y(), ctx.Eye.Z())

	sh.SetVector3("matAmbient", mat.Ambient.X(), mat.Ambient.Y(), mat.Ambient.Z())
	sh.SetVector3("matDiffuse", mat.Diffuse.X(), mat.Diffuse.Y(), mat.Diffuse.Z())
	sh.SetVector3("matSpecular", mat.Specular.X(), mat.Specular.Y(), mat.Specular.Z())
	sh.SetFloat("shininess", mat.Shininess)
	sh.SetFloat("alpha", alpha)
}
