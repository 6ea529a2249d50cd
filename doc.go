// Package uidraw is the rendering core of an externally driven
// immediate-mode UI. Callers describe a frame with rectangles, images
// and strings; uidraw shapes and rasterizes the text, accumulates the
// primitives into ordered layers, and tessellates them into batched
// vertex and index buffers for a GPU renderer to draw.
//
// The typical frame loop:
//
//	ctx.BeginFrame(screenSize, scale)
//	ctx.SetDrawColor(uidraw.White)
//	ctx.DrawString(pos, "LEFT", "VAR", 20, "hello")
//	out := ctx.EndFrame()
//	if !out.Skipped {
//	    // apply out.TexturesDelta, then draw out.Meshes
//	}
//
// Frames whose content is identical to the previous frame are elided:
// EndFrame reports Skipped and the renderer can leave the surface
// untouched.
//
// The sub-packages can be used on their own: geom holds the geometry
// types, text the font atlas and layout engine, and render the layer
// accumulator and tessellator.
package uidraw

import "github.com/gogpu/uidraw/render"

// Re-exported colors for the common cases.
var (
	Black       = render.Black
	White       = render.White
	Transparent = render.Transparent
)
