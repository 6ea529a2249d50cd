package uidraw_test

import (
	"fmt"

	"github.com/gogpu/uidraw"
	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
	"github.com/gogpu/uidraw/text"
)

// Example shows the frame loop: accumulate draw calls between
// BeginFrame and EndFrame, then hand the meshes to a renderer.
func Example() {
	cfg := uidraw.DefaultConfig()
	engine := text.NewEngine(text.EngineConfig{
		MaxAtlasSide:        cfg.MaxAtlasSide,
		AtlasClearThreshold: cfg.AtlasClearThreshold,
	})
	ctx := uidraw.NewContextWith(cfg, engine)

	ctx.BeginFrame(geom.Sz[float32](800, 600), 1)
	ctx.SetDrawColor(render.RGB(40, 40, 40))
	ctx.DrawRect(geom.RectFromXYWH[float32](0, 0, 800, 600))
	ctx.SetDrawLayer(1, 0)
	ctx.SetDrawColor(uidraw.White)
	ctx.DrawRect(geom.RectFromXYWH[float32](10, 10, 100, 40))
	out := ctx.EndFrame()

	fmt.Println("skipped:", out.Skipped)
	fmt.Println("meshes:", len(out.Meshes))
	fmt.Println("vertices:", len(out.Meshes[0].Mesh.Vertices))

	// An identical frame is elided.
	ctx.BeginFrame(geom.Sz[float32](800, 600), 1)
	ctx.SetDrawColor(render.RGB(40, 40, 40))
	ctx.DrawRect(geom.RectFromXYWH[float32](0, 0, 800, 600))
	ctx.SetDrawLayer(1, 0)
	ctx.SetDrawColor(uidraw.White)
	ctx.DrawRect(geom.RectFromXYWH[float32](10, 10, 100, 40))
	out = ctx.EndFrame()
	fmt.Println("skipped:", out.Skipped)

	// Output:
	// skipped: false
	// meshes: 1
	// vertices: 8
	// skipped: true
}
