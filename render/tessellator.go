// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/uidraw/geom"

// Tessellator converts draw primitives into clipped triangle meshes.
// Consecutive primitives sharing a clip rectangle and texture merge
// into a single mesh to keep the draw-call count low.
type Tessellator struct {
	lastMeshCount int
}

// NewTessellator returns a tessellator ready for its first frame.
func NewTessellator() *Tessellator {
	return &Tessellator{}
}

// Convert turns one frame's primitives, in drawing order, into meshes.
// atlasSize is the current glyph atlas size, used to normalize glyph
// coordinates.
func (t *Tessellator) Convert(primitives []ClippedPrimitive, atlasSize geom.PhysicalSize) []ClippedMesh {
	meshes := make([]ClippedMesh, 0, t.lastMeshCount)
	for _, p := range primitives {
		meshes = t.convertOne(p, atlasSize, meshes)
	}
	t.lastMeshCount = len(meshes)
	return meshes
}

func (t *Tessellator) convertOne(cp ClippedPrimitive, atlasSize geom.PhysicalSize, meshes []ClippedMesh) []ClippedMesh {
	if cp.ClipRect.IsEmpty() {
		return meshes
	}

	// Append to the previous mesh if clip rect and texture match,
	// otherwise start a new one.
	startNew := true
	if len(meshes) > 0 {
		last := &meshes[len(meshes)-1]
		startNew = last.ClipRect != cp.ClipRect || last.Mesh.TextureID != cp.Primitive.TextureID()
	}
	if startNew {
		meshes = append(meshes, ClippedMesh{ClipRect: cp.ClipRect})
	}

	out := &meshes[len(meshes)-1].Mesh
	switch p := cp.Primitive.(type) {
	case RectPrimitive:
		convertRect(p, out)
	case QuadPrimitive:
		convertQuad(p, out)
	case TextPrimitive:
		convertText(p, atlasSize, out)
	}

	// A new mesh stays empty when a text primitive adds no glyphs.
	// The renderer does not accept empty meshes, so drop it.
	if meshes[len(meshes)-1].Mesh.IsEmpty() {
		meshes = meshes[:len(meshes)-1]
	}
	return meshes
}

func convertRect(p RectPrimitive, out *Mesh) {
	id, uv, layer := FontTextureID, whiteUV, uint32(0)
	if p.Texture != nil {
		id, uv, layer = p.Texture.ID, p.Texture.UV, p.Texture.Layer
	}
	out.AddRect(p.Rect, uv, p.Color, layer)
	out.TextureID = id
}

func convertQuad(p QuadPrimitive, out *Mesh) {
	id, layer := FontTextureID, uint32(0)
	uv := geom.QuadFromRect(whiteUV)
	if p.Texture != nil {
		id, uv, layer = p.Texture.ID, p.Texture.UV, p.Texture.Layer
	}
	out.AddQuad(p.Quad, uv, p.Color, layer)
	out.TextureID = id
}

func convertText(p TextPrimitive, atlasSize geom.PhysicalSize, out *Mesh) {
	rows := p.Layout.GlyphRows()
	if len(rows) == 0 {
		return
	}

	quads := p.Layout.QuadCount()
	out.Vertices = growCap(out.Vertices, 4*quads)
	out.Indices = growCap(out.Indices, 6*quads)

	origin := geom.V(p.Pos.X, p.Pos.Y)
	for _, row := range rows {
		for _, glyph := range row.Glyphs {
			rect := glyph.Rect.Translate(origin)
			uv := geom.NormalizeUV(glyph.UV, atlasSize)
			out.AddRect(rect, uv, glyph.Color, 0)
		}
	}
	out.TextureID = FontTextureID
}

func growCap[T any](s []T, n int) []T {
	if cap(s)-len(s) >= n {
		return s
	}
	grown := make([]T, len(s), len(s)+n)
	copy(grown, s)
	return grown
}
