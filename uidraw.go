package uidraw

import (
	"fmt"

	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
	"github.com/gogpu/uidraw/text"
)

// FrameOutput is everything the GPU needs for one frame: the meshes to
// draw in order and the texture changes to apply before drawing. When
// Skipped is true the frame is identical to the previous one and
// nothing needs to be drawn.
type FrameOutput struct {
	Meshes        []render.ClippedMesh
	TexturesDelta render.TexturesDelta
	Skipped       bool
}

// Context is the drawing API for one window. Draw calls accumulate
// between BeginFrame and EndFrame; EndFrame turns them into meshes.
//
// A Context is not safe for concurrent use.
type Context struct {
	cfg    Config
	engine *text.Engine
	layers *render.Layers
	tess   *render.Tessellator

	screen geom.LogicalSize
	ppp    float32

	lastHash    uint64
	haveHash    bool
	forceRender bool

	pending     render.TexturesDelta
	nextTexture render.TextureID
}

// NewContext creates a context, loading and preloading the configured
// fonts.
func NewContext(cfg Config) (*Context, error) {
	engine := text.NewEngine(text.EngineConfig{
		MaxAtlasSide:        cfg.MaxAtlasSide,
		AtlasClearThreshold: cfg.AtlasClearThreshold,
	})
	for _, f := range cfg.Fonts {
		src, err := text.NewFontSourceFromFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("uidraw: load font %s: %w", f.Path, err)
		}
		engine.RegisterFontSource(f.Family, f.Weight, f.Italic, src)
	}
	return NewContextWith(cfg, engine), nil
}

// NewContextWith creates a context around an existing text engine.
func NewContextWith(cfg Config, engine *text.Engine) *Context {
	engine.PreloadASCII(cfg.FixedFamily, 0, cfg.PreloadSizes...)
	engine.PreloadASCII(cfg.VariableFamily, 0, cfg.PreloadSizes...)
	engine.PreloadASCII(cfg.VariableFamily, cfg.BoldWeight, cfg.PreloadSizes...)

	return &Context{
		cfg:    cfg,
		engine: engine,
		layers: render.NewLayers(),
		tess:   render.NewTessellator(),
		ppp:    1,
		// Texture 0 is the font atlas.
		nextTexture: 1,
	}
}

// Engine returns the text engine, for callers that manage fonts or
// layouts directly.
func (c *Context) Engine() *text.Engine { return c.engine }

// Layers returns the draw accumulator, for callers needing operations
// beyond the Context surface.
func (c *Context) Layers() *render.Layers { return c.layers }

// BeginFrame starts a frame. screen is the window size in logical
// pixels and pixelsPerPoint its display scale. Any primitives left
// over from a previous frame are discarded.
func (c *Context) BeginFrame(screen geom.LogicalSize, pixelsPerPoint float32) {
	c.screen = screen
	c.ppp = pixelsPerPoint
	c.engine.BeginFrame()
	c.layers.Reset()
	c.layers.SetViewportFromSize(screen)
}

// EndFrame tessellates the frame's primitives. A frame whose
// primitives hash identically to the previous frame's, with no texture
// changes pending, is skipped unless ForceRender was called.
func (c *Context) EndFrame() FrameOutput {
	hash := c.layers.Hash()

	var delta render.TexturesDelta
	delta.Append(&c.pending)
	if atlas := c.engine.AtlasDelta(); atlas != nil {
		delta.Set = append(delta.Set, render.TextureUpdate{
			ID:    render.FontTextureID,
			Delta: *atlas,
		})
	}

	if c.haveHash && hash == c.lastHash && delta.IsEmpty() && !c.forceRender {
		c.layers.Consume()
		slogger().Debug("frame unchanged, skipping")
		return FrameOutput{Skipped: true}
	}
	c.lastHash = hash
	c.haveHash = true
	c.forceRender = false

	meshes := c.tess.Convert(c.layers.Consume(), c.engine.Atlas().Size())
	return FrameOutput{Meshes: meshes, TexturesDelta: delta}
}

// ForceRender makes the next EndFrame produce output even when nothing
// changed, e.g. after the GPU surface was recreated.
func (c *Context) ForceRender() {
	c.forceRender = true
}

// SetViewport restricts and repositions subsequent draw calls: shapes
// are clipped to the viewport and positioned relative to its origin.
func (c *Context) SetViewport(viewport geom.LogicalRect) {
	c.layers.SetViewport(viewport)
}

// SetDrawLayer selects the layer and sublayer subsequent draws go to.
// Higher layers draw over lower ones regardless of call order.
func (c *Context) SetDrawLayer(layer, sublayer int32) {
	c.layers.SetDrawLayer(layer, sublayer)
}

// SetDrawSublayer changes the sublayer, keeping the current layer.
func (c *Context) SetDrawSublayer(sublayer int32) {
	c.layers.SetDrawSublayer(sublayer)
}

// SetDrawColor sets the color for subsequent rectangles, quads and
// uncolored text.
func (c *Context) SetDrawColor(color render.Color) {
	c.layers.SetDrawColor(color)
}

// DrawRect fills a rectangle with the current draw color.
func (c *Context) DrawRect(rect geom.LogicalRect) {
	c.layers.DrawRect(rect, nil)
}

// DrawQuad fills an arbitrary quadrilateral with the current draw
// color.
func (c *Context) DrawQuad(quad geom.LogicalQuad) {
	c.layers.DrawQuad(quad, nil)
}

// fullTexture samples an entire texture.
var fullTexture = geom.RectFromXYWH[float32](0, 0, 1, 1)

// DrawImage draws a texture into a rectangle, tinted by the current
// draw color. layer is the 1-based index into the texture's array
// layers; pass 1 for plain textures.
func (c *Context) DrawImage(id render.TextureID, rect geom.LogicalRect, layer uint32) {
	c.layers.DrawRect(rect, &render.RectTexture{
		ID:    id,
		UV:    fullTexture,
		Layer: arrayLayer(layer),
	})
}

// DrawImageQuad draws a texture into an arbitrary quadrilateral.
func (c *Context) DrawImageQuad(id render.TextureID, quad geom.LogicalQuad, layer uint32) {
	c.layers.DrawQuad(quad, &render.QuadTexture{
		ID:    id,
		UV:    geom.QuadFromRect(fullTexture),
		Layer: arrayLayer(layer),
	})
}

func arrayLayer(layer uint32) uint32 {
	if layer == 0 {
		return 0
	}
	return layer - 1
}

// DrawString draws text anchored at pos. align and font are selector
// strings: "LEFT", "CENTER", "RIGHT", "CENTER_X" or "RIGHT_X", and
// "FIXED", "VAR" or "VAR BOLD". The font size follows the line height.
//
// Text may carry color escape codes; the current draw color is updated
// to the last code in the string.
func (c *Context) DrawString(pos geom.LogicalPoint, align, font string, lineHeight float32, s string) error {
	a, err := ParseAlign(align)
	if err != nil {
		return err
	}
	job, err := c.makeJob(font, lineHeight, a.alignment(), s, true)
	if err != nil {
		return err
	}

	layout, err := c.engine.Layout(job, c.ppp)
	if err != nil {
		return err
	}

	switch a {
	case AlignCenter:
		pos.X += c.screen.W / 2
	case AlignRight:
		pos.X = c.screen.W - pos.X
	}
	c.layers.DrawText(pos, layout, a.screenRelative())
	return nil
}

// StringWidth returns the width the string would draw at, in logical
// pixels. Color escape codes do not count toward the width.
func (c *Context) StringWidth(font string, lineHeight float32, s string) (float32, error) {
	job, err := c.makeJob(font, lineHeight, text.AlignMin, s, false)
	if err != nil {
		return 0, err
	}
	return c.engine.TextWidth(job, c.ppp)
}

// StringCursorIndex returns the byte index of the character at cursor,
// measured from the string's anchor point. Escape codes are not
// counted; the index refers to the string with codes stripped.
func (c *Context) StringCursorIndex(font string, lineHeight float32, s string, cursor geom.LogicalPoint) (int, error) {
	job, err := c.makeJob(font, lineHeight, text.AlignMin, s, false)
	if err != nil {
		return 0, err
	}
	return c.engine.CursorIndex(job, cursor, c.ppp)
}

// makeJob builds the layout job for a selector pair and string. When
// recolor is set, escape codes in s advance the current draw color.
func (c *Context) makeJob(font string, lineHeight float32, align text.Alignment, s string, recolor bool) (text.LayoutJob, error) {
	ft, err := ParseFontType(font)
	if err != nil {
		return text.LayoutJob{}, err
	}

	family := c.cfg.VariableFamily
	var weight float32
	switch ft {
	case FontFixed:
		family = c.cfg.FixedFamily
	case FontVariableBold:
		weight = c.cfg.BoldWeight
	}

	job := text.NewLayoutJob(family, fontSizeForLineHeight(lineHeight), lineHeight, align)
	job.Weight = weight

	color := c.layers.DrawColor()
	for _, seg := range text.SplitColorEscapes(s) {
		if seg.HasColor {
			color = seg.Color
		}
		job.Append(seg.Text, color)
	}
	if recolor {
		c.layers.SetDrawColor(color)
	}
	return job, nil
}

// RegisterTexture allocates a texture ID and queues the image for
// upload at the next EndFrame.
func (c *Context) RegisterTexture(image render.ImageData, options render.TextureOptions) render.TextureID {
	id := c.nextTexture
	c.nextTexture++
	c.pending.Set = append(c.pending.Set, render.TextureUpdate{
		ID:    id,
		Delta: render.ImageDelta{Image: image, Options: options},
	})
	return id
}

// UpdateTexture queues a change to a registered texture.
func (c *Context) UpdateTexture(id render.TextureID, delta render.ImageDelta) {
	c.pending.Set = append(c.pending.Set, render.TextureUpdate{ID: id, Delta: delta})
}

// FreeTexture queues a texture for release after the next frame draws.
func (c *Context) FreeTexture(id render.TextureID) {
	c.pending.Free = append(c.pending.Free, id)
}
