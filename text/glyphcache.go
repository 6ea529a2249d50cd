// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"math"

	"github.com/gogpu/uidraw/geom"
)

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// GlyphKey identifies one rasterized glyph bitmap: the glyph itself,
// its interned style, the horizontal subpixel bin it was rendered at
// and the display scale. The vertical position is not part of the key;
// glyphs at any y share the same bitmap and only the x fraction gets
// dedicated rasterizations.
type GlyphKey struct {
	GID     GlyphID
	Style   StyleID
	XBin    SubpixelBin
	pppBits uint32
}

// NewGlyphKey builds a key from a glyph's horizontal subpixel bin and
// the pixels-per-point scale it renders at.
func NewGlyphKey(gid GlyphID, style StyleID, xBin SubpixelBin, pixelsPerPoint float32) GlyphKey {
	return GlyphKey{GID: gid, Style: style, XBin: xBin, pppBits: math.Float32bits(pixelsPerPoint)}
}

// FractionalOffset returns the horizontal offset the glyph must be
// rasterized with to match its bin.
func (k GlyphKey) FractionalOffset() float32 {
	return k.XBin.Offset()
}

// CachedGlyph records where a rasterized glyph lives in the atlas and
// how its bitmap hangs off the baseline pen position.
type CachedGlyph struct {
	// UV is the absolute region within the font atlas.
	UV geom.PhysicalRect
	// BaselineOffset is the vector from the pen position to the
	// bitmap's top-left corner, in physical pixels. Y is negative for
	// glyphs that rise above the baseline.
	BaselineOffset geom.Vec[int32]
}

// GlyphCache remembers the atlas location of every glyph rasterized
// since the last clear. A glyph that rendered to nothing (whitespace)
// is cached as nil, which is distinct from not cached at all: the
// rasterizer is not asked again.
type GlyphCache struct {
	glyphs map[GlyphKey]*CachedGlyph
}

// NewGlyphCache returns an empty cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{glyphs: make(map[GlyphKey]*CachedGlyph)}
}

// Get returns the cached entry and whether one exists. The entry is
// nil for glyphs known to render nothing.
func (c *GlyphCache) Get(key GlyphKey) (*CachedGlyph, bool) {
	g, ok := c.glyphs[key]
	return g, ok
}

// Put stores an entry. Pass nil to record that the glyph renders
// nothing.
func (c *GlyphCache) Put(key GlyphKey, glyph *CachedGlyph) {
	c.glyphs[key] = glyph
}

// Len returns the number of cached entries, including nil ones.
func (c *GlyphCache) Len() int {
	return len(c.glyphs)
}

// Clear forgets all entries. Must be called whenever the atlas is
// cleared, since cached regions point into it.
func (c *GlyphCache) Clear() {
	clear(c.glyphs)
}
