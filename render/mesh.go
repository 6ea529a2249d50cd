// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/uidraw/geom"
	"honnef.co/go/safeish"
)

// Vertex is one corner of a textured triangle as it is uploaded to the
// GPU: position in logical pixels, normalized texture coordinates, an
// RGBA8 color and the index into the bound texture array.
type Vertex struct {
	Pos   geom.LogicalPoint
	UV    geom.Point[float32]
	Color Color
	Layer uint32
}

// Mesh is a batch of triangles sampling a single texture.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	TextureID TextureID
}

// whiteUV addresses the opaque white pixel kept at the atlas origin, so
// untextured geometry can share the texture pipeline.
var whiteUV = geom.UVRect{}

// AddRect appends the two triangles covering rect. Vertices wind
// clockwise from the top-left corner.
func (m *Mesh) AddRect(rect geom.LogicalRect, uv geom.UVRect, color Color, layer uint32) {
	i := uint32(len(m.Vertices))
	m.Indices = append(m.Indices, i, i+1, i+3, i+1, i+2, i+3)

	m.Vertices = append(m.Vertices,
		Vertex{Pos: rect.Origin, UV: uv.Origin, Color: color, Layer: layer},
		Vertex{Pos: geom.Pt(rect.MaxX(), rect.MinY()), UV: geom.Pt(uv.MaxX(), uv.MinY()), Color: color, Layer: layer},
		Vertex{Pos: geom.Pt(rect.MaxX(), rect.MaxY()), UV: geom.Pt(uv.MaxX(), uv.MaxY()), Color: color, Layer: layer},
		Vertex{Pos: geom.Pt(rect.MinX(), rect.MaxY()), UV: geom.Pt(uv.MinX(), uv.MaxY()), Color: color, Layer: layer},
	)
}

// AddQuad appends the two triangles covering a free-form quadrilateral,
// mapping the UV quad corner to corner.
func (m *Mesh) AddQuad(quad geom.LogicalQuad, uv geom.Quad[float32], color Color, layer uint32) {
	i := uint32(len(m.Vertices))
	m.Indices = append(m.Indices, i, i+1, i+3, i+1, i+2, i+3)

	m.Vertices = append(m.Vertices,
		Vertex{Pos: quad.TopLeft, UV: uv.TopLeft, Color: color, Layer: layer},
		Vertex{Pos: quad.TopRight, UV: uv.TopRight, Color: color, Layer: layer},
		Vertex{Pos: quad.BottomRight, UV: uv.BottomRight, Color: color, Layer: layer},
		Vertex{Pos: quad.BottomLeft, UV: uv.BottomLeft, Color: color, Layer: layer},
	)
}

// IsEmpty reports whether the mesh holds no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 && len(m.Indices) == 0
}

// VertexBytes returns the vertex buffer as raw bytes, suitable for a
// buffer upload without copying.
func (m *Mesh) VertexBytes() []byte {
	return safeish.SliceCast[[]byte](m.Vertices)
}

// IndexBytes returns the index buffer as raw bytes.
func (m *Mesh) IndexBytes() []byte {
	return safeish.SliceCast[[]byte](m.Indices)
}

// ClippedMesh is a mesh plus the clip rectangle it must be scissored to.
type ClippedMesh struct {
	ClipRect geom.LogicalRect
	Mesh     Mesh
}
