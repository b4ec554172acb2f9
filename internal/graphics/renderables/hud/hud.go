package hud

import (
	"material-scene/internal/graphics"
	renderer "material-scene/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 14
	textX      = 10
	textY      = 22
	lineStep   = 18
)

// HUD draws the status and help text overlay in the top-left corner. The
// live values are always shown; the control listing follows the scene's
// ShowHelp flag.
type HUD struct {
	fontRenderer *graphics.FontRenderer
}

func New() *HUD {
	return &HUD{}
}

// Init bakes the font atlas and sets up the text renderer.
func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(graphics.FontPath, fontPixels)
	if err != nil {
		return err
	}
	h.fontRenderer, err = graphics.NewFontRenderer(atlas)
	return err
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	lines := ctx.Scene.StatusLines(ctx.Alpha)
	h.fontRenderer.RenderLines(lines, textX, textY, lineStep, 1.0, mgl32.Vec3{1, 1, 1})
}

func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}
