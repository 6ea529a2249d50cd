package uidraw

import (
	"errors"
	"testing"

	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
	"github.com/gogpu/uidraw/text"
)

func newTestContext() *Context {
	cfg := DefaultConfig()
	engine := text.NewEngine(text.EngineConfig{
		MaxAtlasSide:        cfg.MaxAtlasSide,
		AtlasClearThreshold: cfg.AtlasClearThreshold,
	})
	return NewContextWith(cfg, engine)
}

func beginFrame(c *Context) {
	c.BeginFrame(geom.Sz[float32](800, 600), 1)
}

func TestContextFrameOutput(t *testing.T) {
	c := newTestContext()

	beginFrame(c)
	c.SetDrawColor(render.RGB(200, 10, 10))
	c.DrawRect(geom.RectFromXYWH[float32](10, 10, 50, 50))
	out := c.EndFrame()

	if out.Skipped {
		t.Fatal("first frame was skipped")
	}
	if len(out.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(out.Meshes))
	}
	mesh := out.Meshes[0]
	if len(mesh.Mesh.Vertices) != 4 || len(mesh.Mesh.Indices) != 6 {
		t.Errorf("mesh has %d vertices and %d indices, want 4 and 6",
			len(mesh.Mesh.Vertices), len(mesh.Mesh.Indices))
	}
	// The atlas upload rides along with the first frame.
	if len(out.TexturesDelta.Set) == 0 {
		t.Error("first frame carried no atlas upload")
	}
}

func TestContextFrameElision(t *testing.T) {
	c := newTestContext()

	drawFrame := func() FrameOutput {
		beginFrame(c)
		c.DrawRect(geom.RectFromXYWH[float32](0, 0, 10, 10))
		return c.EndFrame()
	}

	if out := drawFrame(); out.Skipped {
		t.Fatal("first frame was skipped")
	}
	if out := drawFrame(); !out.Skipped {
		t.Error("identical second frame was not skipped")
	}

	// A change in content renders again.
	beginFrame(c)
	c.DrawRect(geom.RectFromXYWH[float32](0, 0, 20, 10))
	if out := c.EndFrame(); out.Skipped {
		t.Error("changed frame was skipped")
	}
}

func TestContextForceRender(t *testing.T) {
	c := newTestContext()

	drawFrame := func() FrameOutput {
		beginFrame(c)
		c.DrawRect(geom.RectFromXYWH[float32](0, 0, 10, 10))
		return c.EndFrame()
	}

	drawFrame()
	c.ForceRender()
	if out := drawFrame(); out.Skipped {
		t.Error("frame after ForceRender was skipped")
	}
	if out := drawFrame(); !out.Skipped {
		t.Error("ForceRender leaked into the following frame")
	}
}

func TestContextTextureChangesPreventElision(t *testing.T) {
	c := newTestContext()

	drawFrame := func() FrameOutput {
		beginFrame(c)
		c.DrawRect(geom.RectFromXYWH[float32](0, 0, 10, 10))
		return c.EndFrame()
	}

	drawFrame()
	id := c.RegisterTexture(render.NewImageData(geom.Sz[int32](2, 2)), render.TextureOptions{})
	out := drawFrame()
	if out.Skipped {
		t.Fatal("frame with a pending texture upload was skipped")
	}

	found := false
	for _, set := range out.TexturesDelta.Set {
		if set.ID == id {
			found = set.Delta.IsWholeTexture()
		}
	}
	if !found {
		t.Error("registered texture missing from the frame's delta")
	}

	c.FreeTexture(id)
	if out := drawFrame(); out.Skipped {
		t.Error("frame with a pending texture free was skipped")
	} else if len(out.TexturesDelta.Free) != 1 {
		t.Errorf("frame carries %d frees, want 1", len(out.TexturesDelta.Free))
	}
}

func TestContextTextureIDs(t *testing.T) {
	c := newTestContext()

	a := c.RegisterTexture(render.NewImageData(geom.Sz[int32](1, 1)), render.TextureOptions{})
	b := c.RegisterTexture(render.NewImageData(geom.Sz[int32](1, 1)), render.TextureOptions{})
	if a == render.FontTextureID || b == render.FontTextureID {
		t.Error("registered texture collides with the font atlas ID")
	}
	if a == b {
		t.Error("two registered textures share an ID")
	}
}

func TestContextDrawImage(t *testing.T) {
	c := newTestContext()

	beginFrame(c)
	id := c.RegisterTexture(render.NewImageData(geom.Sz[int32](4, 4)), render.TextureOptions{})
	c.DrawImage(id, geom.RectFromXYWH[float32](0, 0, 32, 32), 1)
	out := c.EndFrame()

	var mesh *render.ClippedMesh
	for i := range out.Meshes {
		if out.Meshes[i].Mesh.TextureID == id {
			mesh = &out.Meshes[i]
		}
	}
	if mesh == nil {
		t.Fatal("no mesh sampling the registered texture")
	}
	v := mesh.Mesh.Vertices
	if v[0].UV != geom.Pt[float32](0, 0) || v[2].UV != geom.Pt[float32](1, 1) {
		t.Errorf("image UVs span (%v, %v), want the full texture", v[0].UV, v[2].UV)
	}
	if v[0].Layer != 0 {
		t.Errorf("array layer = %d, want 0 for image layer 1", v[0].Layer)
	}
}

func TestContextDrawStringUnknownSelector(t *testing.T) {
	c := newTestContext()
	beginFrame(c)

	err := c.DrawString(geom.Pt[float32](0, 0), "MIDDLE", "VAR", 20, "x")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("unknown alignment error = %v, want *ParseError", err)
	}

	err = c.DrawString(geom.Pt[float32](0, 0), "LEFT", "COMIC", 20, "x")
	if !errors.As(err, &perr) {
		t.Errorf("unknown font error = %v, want *ParseError", err)
	}
}

func TestContextDrawStringUnknownFamily(t *testing.T) {
	// No fonts registered: parsing succeeds but layout cannot resolve
	// the family.
	c := newTestContext()
	beginFrame(c)

	err := c.DrawString(geom.Pt[float32](0, 0), "LEFT", "VAR", 20, "x")
	if !errors.Is(err, text.ErrUnknownFamily) {
		t.Errorf("DrawString error = %v, want ErrUnknownFamily", err)
	}
}

func TestContextViewportClips(t *testing.T) {
	c := newTestContext()

	beginFrame(c)
	viewport := geom.RectFromXYWH[float32](100, 100, 200, 200)
	c.SetViewport(viewport)
	c.DrawRect(geom.RectFromXYWH[float32](0, 0, 50, 50))
	out := c.EndFrame()

	if len(out.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(out.Meshes))
	}
	if out.Meshes[0].ClipRect != viewport {
		t.Errorf("clip rect = %v, want the viewport %v", out.Meshes[0].ClipRect, viewport)
	}
	// Draw positions are relative to the viewport origin.
	if got := out.Meshes[0].Mesh.Vertices[0].Pos; got != geom.Pt[float32](100, 100) {
		t.Errorf("first vertex at %v, want (100, 100)", got)
	}
}
