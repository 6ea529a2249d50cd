// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
)

// fauxItalicSkewDeg is the slant applied when an italic face is
// requested but the family only has upright ones.
const fauxItalicSkewDeg = 14

// EngineConfig sizes the text engine's caches.
type EngineConfig struct {
	// MaxAtlasSide limits the glyph atlas texture to this many pixels
	// per side.
	MaxAtlasSide int32

	// AtlasClearThreshold is the fill fraction above which the atlas
	// and everything referencing it are rebuilt at the next frame
	// boundary.
	AtlasClearThreshold float32
}

// DefaultEngineConfig returns the standard configuration: a 1024px
// atlas rebuilt when over 90% full.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxAtlasSide:        1024,
		AtlasClearThreshold: 0.9,
	}
}

// faceEntry is one registered face of a family.
type faceEntry struct {
	src    *FontSource
	weight float32
	italic bool
}

// Engine owns the font atlas and the caches between it and the caller:
// rasterized glyphs keyed by subpixel position, and finished layouts
// keyed by job hash. All methods must be called from a single
// goroutine.
type Engine struct {
	cfg      EngineConfig
	shaper   Shaper
	rast     Rasterizer
	atlas    *FontAtlas
	glyphs   *GlyphCache
	styles   *styleInterner
	layouts  *layoutCache
	families map[string][]faceEntry
}

// NewEngine creates an engine with the standard shaper and rasterizer.
func NewEngine(cfg EngineConfig) *Engine {
	return NewEngineWith(cfg, NewGoTextShaper(), NewOutlineRasterizer())
}

// NewEngineWith creates an engine with explicit shaping and
// rasterization backends. Tests use this to substitute deterministic
// fakes.
func NewEngineWith(cfg EngineConfig, shaper Shaper, rast Rasterizer) *Engine {
	if cfg.MaxAtlasSide <= 0 {
		cfg.MaxAtlasSide = DefaultEngineConfig().MaxAtlasSide
	}
	if cfg.AtlasClearThreshold <= 0 {
		cfg.AtlasClearThreshold = DefaultEngineConfig().AtlasClearThreshold
	}
	return &Engine{
		cfg:      cfg,
		shaper:   shaper,
		rast:     rast,
		atlas:    NewFontAtlas(cfg.MaxAtlasSide),
		glyphs:   NewGlyphCache(),
		styles:   newStyleInterner(),
		layouts:  newLayoutCache(),
		families: make(map[string][]faceEntry),
	}
}

// RegisterFont parses font data and registers it under a family name.
func (e *Engine) RegisterFont(family string, weight float32, italic bool, data []byte) error {
	src, err := NewFontSource(data)
	if err != nil {
		return fmt.Errorf("register %q: %w", family, err)
	}
	e.RegisterFontSource(family, weight, italic, src)
	return nil
}

// RegisterFontSource registers an already loaded font under a family
// name. Multiple weights and styles may share a family.
func (e *Engine) RegisterFontSource(family string, weight float32, italic bool, src *FontSource) {
	if weight == 0 {
		weight = 400
	}
	e.families[family] = append(e.families[family], faceEntry{src: src, weight: weight, italic: italic})
}

// resolve picks the registered face closest to the request. When an
// italic face is requested but none exists, the upright face is used
// with a synthetic slant.
func (e *Engine) resolve(family string, weight float32, italic bool) (*FontSource, int8, error) {
	entries := e.families[family]
	if len(entries) == 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	if weight == 0 {
		weight = 400
	}

	best := -1
	bestScore := float32(math.Inf(1))
	for i, entry := range entries {
		score := float32(math.Abs(float64(entry.weight - weight)))
		if entry.italic != italic {
			// A style mismatch outweighs any weight distance.
			score += 10000
		}
		if score < bestScore {
			bestScore = score
			best = i
		}
	}

	entry := entries[best]
	var skew int8
	if italic && !entry.italic {
		skew = fauxItalicSkewDeg
	}
	return entry.src, skew, nil
}

// BeginFrame must be called at the start of every frame. It sweeps the
// layout cache and rebuilds the atlas once it runs too full, so glyph
// UVs handed out during a frame stay valid for the whole frame.
func (e *Engine) BeginFrame() {
	if e.atlas.Capacity() > e.cfg.AtlasClearThreshold {
		e.clearAtlas()
	}
	e.layouts.flush()
}

// clearAtlas empties the atlas and invalidates every cache that holds
// positions into it.
func (e *Engine) clearAtlas() {
	slogger().Debug("rebuilding font atlas",
		"capacity", e.atlas.Capacity(),
		"cachedGlyphs", e.glyphs.Len(),
		"cachedLayouts", e.layouts.len())
	e.atlas.Clear()
	e.glyphs.Clear()
	e.styles.clear()
	e.layouts.clear()
}

// AtlasDelta returns the pending atlas texture change, if any.
func (e *Engine) AtlasDelta() *render.ImageDelta {
	return e.atlas.TakeDelta()
}

// Atlas exposes the glyph atlas, mainly so the tessellator can read
// its current size.
func (e *Engine) Atlas() *FontAtlas {
	return e.atlas
}

// Layout shapes, places and rasterizes a job at the given display
// scale, or returns the cached result of an equal job.
func (e *Engine) Layout(job LayoutJob, pixelsPerPoint float32) (*Layout, error) {
	hash := job.Hash(pixelsPerPoint)
	if cached := e.layouts.get(hash); cached != nil {
		if cached.sourceHash != hash {
			panic("text: layout cache returned layout for wrong key")
		}
		return cached, nil
	}

	src, skew, err := e.resolve(job.Family, job.Weight, job.Italic)
	if err != nil {
		return nil, err
	}

	layout := e.buildLayout(job, src, skew, pixelsPerPoint)
	layout.sourceHash = hash
	e.layouts.insert(hash, layout)
	return layout, nil
}

// linePiece is a segment fragment on a single line.
type linePiece struct {
	run     ShapedRun
	color   render.Color
	byteOff int // offset of the fragment in the job's full text
}

func (e *Engine) buildLayout(job LayoutJob, src *FontSource, skew int8, ppp float32) *Layout {
	// Shaping happens in logical pixels; everything scales by ppp at
	// rasterization time.
	lines, textLen := e.shapeLines(job, src)

	layout := &Layout{
		lineHeight: job.LineHeight,
		textLen:    textLen,
	}

	for _, line := range lines {
		var advance float32
		for _, piece := range line {
			advance += piece.run.Advance
		}
		layout.width = max(layout.width, advance)
	}

	var offsetX float32
	switch job.Alignment {
	case AlignCenter:
		offsetX = -layout.width / 2
	case AlignMax:
		offsetX = -layout.width
	}

	sizePx := job.FontSize * ppp
	styleID := e.styles.intern(src.id, sizePx, skew)

	for lineIdx, line := range lines {
		ascent := job.FontSize // fallback for fakes that report none
		for _, piece := range line {
			if piece.run.Ascent > 0 {
				ascent = piece.run.Ascent
				break
			}
		}
		baseline := float32(lineIdx)*job.LineHeight + ascent

		var row render.GlyphRow
		var lline layoutLine
		var penX float32
		for _, piece := range line {
			for _, g := range piece.run.Glyphs {
				gx := offsetX + penX + g.X
				gy := baseline + g.Y

				appendCluster(&lline, gx, g, piece)

				placed, ok := e.placeGlyph(src, g.GID, styleID, sizePx, skew, gx, gy, ppp, piece.color)
				if ok {
					row.Glyphs = append(row.Glyphs, placed)
					layout.quadCount++
				}
			}
			penX += piece.run.Advance
		}

		layout.lines = append(layout.lines, lline)
		if len(row.Glyphs) > 0 {
			layout.rows = append(layout.rows, row)
		}
	}

	return layout
}

// appendCluster folds glyph g into the line's cluster list, merging
// glyphs that came from the same character.
func appendCluster(line *layoutLine, gx float32, g ShapedGlyph, piece linePiece) {
	index := piece.byteOff + g.Cluster
	n := len(line.clusters)
	if n > 0 && line.clusters[n-1].index == index {
		line.clusters[n-1].advance += g.XAdvance
		return
	}
	line.clusters = append(line.clusters, clusterPos{
		x:       gx,
		advance: g.XAdvance,
		index:   index,
		end:     index + clusterByteLen(piece, g.Cluster),
	})
}

// clusterByteLen measures the bytes of the character at cluster within
// the piece's text.
func clusterByteLen(piece linePiece, cluster int) int {
	// The run does not retain its text, so measure from the offsets of
	// neighboring clusters when possible.
	for _, g := range piece.run.Glyphs {
		if g.Cluster > cluster {
			return g.Cluster - cluster
		}
	}
	return 1
}

// shapeLines splits the job's segments on newlines and shapes each
// fragment. Byte offsets index into the concatenation of all segment
// texts.
func (e *Engine) shapeLines(job LayoutJob, src *FontSource) ([][]linePiece, int) {
	lines := [][]linePiece{nil}
	byteOff := 0
	for _, seg := range job.Segments {
		rest := seg.Text
		for {
			nl := strings.IndexByte(rest, '\n')
			chunk := rest
			if nl >= 0 {
				chunk = rest[:nl]
			}
			if chunk != "" {
				lines[len(lines)-1] = append(lines[len(lines)-1], linePiece{
					run:     e.shaper.Shape(chunk, src, job.FontSize),
					color:   seg.Color,
					byteOff: byteOff,
				})
			}
			byteOff += len(chunk)
			if nl < 0 {
				break
			}
			byteOff++ // the newline itself
			rest = rest[nl+1:]
			lines = append(lines, nil)
		}
	}
	return lines, byteOff
}

// placeGlyph returns the placed quad for one glyph, rasterizing it
// into the atlas on first sight. ok is false for glyphs that cover no
// pixels.
func (e *Engine) placeGlyph(src *FontSource, gid GlyphID, styleID StyleID, sizePx float32, skew int8, x, y, ppp float32, color render.Color) (render.PlacedGlyph, bool) {
	intX, bin := Quantize(x * ppp)
	intY := int32(math.Round(float64(y * ppp)))

	cached := e.ensureGlyph(src, gid, styleID, sizePx, skew, bin, ppp)
	if cached == nil {
		return render.PlacedGlyph{}, false
	}

	physRect := geom.RectFromOriginSize(
		geom.Pt(intX+cached.BaselineOffset.X, intY+cached.BaselineOffset.Y),
		cached.UV.Size,
	)
	return render.PlacedGlyph{
		Rect:  geom.ToLogicalRect(physRect, ppp),
		UV:    cached.UV,
		Color: color,
	}, true
}

// ensureGlyph returns the cached atlas entry for a glyph, rasterizing
// and uploading it on a miss. A nil return means the glyph renders
// nothing; that outcome is cached too.
func (e *Engine) ensureGlyph(src *FontSource, gid GlyphID, styleID StyleID, sizePx float32, skew int8, bin SubpixelBin, ppp float32) *CachedGlyph {
	key := NewGlyphKey(gid, styleID, bin, ppp)
	if cached, ok := e.glyphs.Get(key); ok {
		return cached
	}

	mask, err := e.rast.Rasterize(src, gid, sizePx, skew, bin.Offset())
	if err != nil {
		slogger().Warn("glyph rasterization failed", "gid", gid, "err", err)
		mask = nil
	}
	if mask == nil {
		e.glyphs.Put(key, nil)
		return nil
	}

	size := geom.Sz(int32(mask.Mask.Bounds().Dx()), int32(mask.Mask.Bounds().Dy()))
	region := e.atlas.Allocate(size)
	e.atlas.WriteMask(region, mask.Mask)

	cached := &CachedGlyph{UV: region, BaselineOffset: mask.Offset}
	e.glyphs.Put(key, cached)
	return cached
}

// TextWidth lays out the job and returns the widest line's advance in
// logical pixels.
func (e *Engine) TextWidth(job LayoutJob, pixelsPerPoint float32) (float32, error) {
	layout, err := e.Layout(job, pixelsPerPoint)
	if err != nil {
		return 0, err
	}
	return layout.Width(), nil
}

// CursorIndex lays out the job and returns the byte index of the
// character under cursor, in layout-local coordinates.
func (e *Engine) CursorIndex(job LayoutJob, cursor geom.LogicalPoint, pixelsPerPoint float32) (int, error) {
	layout, err := e.Layout(job, pixelsPerPoint)
	if err != nil {
		return 0, err
	}
	return layout.CursorIndex(cursor), nil
}

// PreloadASCII rasterizes the printable ASCII range at every subpixel
// bin for the given sizes, so common text never pays rasterization
// cost mid-frame. Unknown families are skipped.
func (e *Engine) PreloadASCII(family string, weight float32, sizes ...float32) {
	src, skew, err := e.resolve(family, weight, false)
	if err != nil {
		return
	}

	var sb strings.Builder
	for c := byte(32); c <= 126; c++ {
		sb.WriteByte(c)
	}
	text := sb.String()

	for _, size := range sizes {
		run := e.shaper.Shape(text, src, size)
		styleID := e.styles.intern(src.id, size, skew)
		for bin := SubpixelBin(0); bin < SubpixelBins; bin++ {
			for _, g := range run.Glyphs {
				e.ensureGlyph(src, g.GID, styleID, size, skew, bin, 1)
			}
		}
	}
}
