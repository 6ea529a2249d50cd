// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/uidraw/geom"

// DrawPrimitive is a single accumulated draw command. Primitives are
// immutable values; Translate returns a shifted copy.
type DrawPrimitive interface {
	// TextureID returns the texture the primitive samples from,
	// FontTextureID for text and for untextured shapes.
	TextureID() TextureID

	// Translate returns the primitive shifted by v.
	Translate(v geom.LogicalVec) DrawPrimitive

	appendHash(h *hasher)
}

// ClippedPrimitive pairs a primitive with the clip rectangle that was
// active when it was recorded.
type ClippedPrimitive struct {
	ClipRect  geom.LogicalRect
	Primitive DrawPrimitive
}

func (c ClippedPrimitive) appendHash(h *hasher) {
	hashRect(h, c.ClipRect)
	c.Primitive.appendHash(h)
}

// RectTexture describes how a rectangle samples a texture: which
// texture, the normalized region within it, and the index within a
// texture array.
type RectTexture struct {
	ID    TextureID
	UV    geom.UVRect
	Layer uint32
}

// RectPrimitive fills an axis-aligned rectangle, optionally textured.
type RectPrimitive struct {
	Rect    geom.LogicalRect
	Color   Color
	Texture *RectTexture
}

func (p RectPrimitive) TextureID() TextureID {
	if p.Texture == nil {
		return FontTextureID
	}
	return p.Texture.ID
}

func (p RectPrimitive) Translate(v geom.LogicalVec) DrawPrimitive {
	p.Rect = p.Rect.Translate(v)
	return p
}

func (p RectPrimitive) appendHash(h *hasher) {
	h.writeUint32(1)
	hashRect(h, p.Rect)
	hashColor(h, p.Color)
	if p.Texture != nil {
		h.writeUint64(uint64(p.Texture.ID))
		hashRect(h, p.Texture.UV)
		h.writeUint32(p.Texture.Layer)
	}
}

// QuadTexture describes how a quadrilateral samples a texture. The UV
// quad maps corner to corner onto the positional quad.
type QuadTexture struct {
	ID    TextureID
	UV    geom.Quad[float32]
	Layer uint32
}

// QuadPrimitive fills a free-form quadrilateral, optionally textured.
type QuadPrimitive struct {
	Quad    geom.LogicalQuad
	Color   Color
	Texture *QuadTexture
}

func (p QuadPrimitive) TextureID() TextureID {
	if p.Texture == nil {
		return FontTextureID
	}
	return p.Texture.ID
}

func (p QuadPrimitive) Translate(v geom.LogicalVec) DrawPrimitive {
	p.Quad = p.Quad.Translate(v)
	return p
}

func (p QuadPrimitive) appendHash(h *hasher) {
	h.writeUint32(2)
	hashQuad(h, p.Quad)
	hashColor(h, p.Color)
	if p.Texture != nil {
		h.writeUint64(uint64(p.Texture.ID))
		hashQuad(h, p.Texture.UV)
		h.writeUint32(p.Texture.Layer)
	}
}

// PlacedGlyph is one rasterized glyph of a finished text layout: where
// it sits relative to the layout origin, which atlas region holds its
// pixels, and the color it tints with.
type PlacedGlyph struct {
	Rect  geom.LogicalRect
	UV    geom.PhysicalRect
	Color Color
}

// GlyphRow is one visual line of placed glyphs.
type GlyphRow struct {
	Glyphs []PlacedGlyph
}

// TextSource is a finished text layout as the tessellator consumes it.
// It is implemented by the text package's Layout.
type TextSource interface {
	// SourceHash identifies the layout's input (content, style and
	// scale), so two frames drawing the same text hash equal.
	SourceHash() uint64

	// GlyphRows returns the placed glyphs, one slice per line.
	GlyphRows() []GlyphRow

	// QuadCount returns the total number of glyph quads, used to
	// presize vertex buffers.
	QuadCount() int
}

// TextPrimitive draws a finished layout with its origin at Pos.
type TextPrimitive struct {
	Pos    geom.LogicalPoint
	Layout TextSource
}

func (p TextPrimitive) TextureID() TextureID {
	return FontTextureID
}

func (p TextPrimitive) Translate(v geom.LogicalVec) DrawPrimitive {
	p.Pos = p.Pos.Add(v)
	return p
}

func (p TextPrimitive) appendHash(h *hasher) {
	h.writeUint32(3)
	h.writeFloat32(p.Pos.X)
	h.writeFloat32(p.Pos.Y)
	h.writeUint64(p.Layout.SourceHash())
}

func hashColor(h *hasher, c Color) {
	h.writeUint32(c.Packed())
}

func hashRect[T geom.Scalar](h *hasher, r geom.Rect[T]) {
	h.writeFloat32(float32(r.MinX()))
	h.writeFloat32(float32(r.MinY()))
	h.writeFloat32(float32(r.MaxX()))
	h.writeFloat32(float32(r.MaxY()))
}

func hashQuad[T geom.Scalar](h *hasher, q geom.Quad[T]) {
	h.writeFloat32(float32(q.TopLeft.X))
	h.writeFloat32(float32(q.TopLeft.Y))
	h.writeFloat32(float32(q.TopRight.X))
	h.writeFloat32(float32(q.TopRight.Y))
	h.writeFloat32(float32(q.BottomRight.X))
	h.writeFloat32(float32(q.BottomRight.Y))
	h.writeFloat32(float32(q.BottomLeft.X))
	h.writeFloat32(float32(q.BottomLeft.Y))
}
