// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// ShapedGlyph is one glyph positioned relative to the start of its
// run, with the baseline at y=0 and y growing down.
type ShapedGlyph struct {
	GID GlyphID
	// Cluster is the byte offset into the shaped text of the character
	// this glyph belongs to.
	Cluster  int
	X, Y     float32
	XAdvance float32
}

// ShapedRun is the result of shaping one string with a single style.
type ShapedRun struct {
	Glyphs  []ShapedGlyph
	Advance float32
	// Ascent and Descent are both positive distances from the baseline.
	Ascent  float32
	Descent float32
}

// Shaper converts text into positioned glyphs. sizePx is the font size
// in physical pixels.
type Shaper interface {
	Shape(text string, src *FontSource, sizePx float32) ShapedRun
}

// goTextShaper shapes with go-text/typesetting's HarfBuzz port. Text
// is split into bidirectional runs first, so mixed LTR/RTL strings
// come out in visual order.
type goTextShaper struct {
	// HarfbuzzShaper keeps internal scratch state, so instances are
	// pooled rather than shared.
	pool sync.Pool

	// font.Face wraps the thread-safe *font.Font with per-face glyph
	// caches; one cached face per source is enough on a single
	// goroutine.
	faces map[*FontSource]*gtfont.Face
}

// NewGoTextShaper returns the standard HarfBuzz-backed shaper.
func NewGoTextShaper() Shaper {
	return &goTextShaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		faces: make(map[*FontSource]*gtfont.Face),
	}
}

func (s *goTextShaper) face(src *FontSource) *gtfont.Face {
	if f, ok := s.faces[src]; ok {
		return f
	}
	f := gtfont.NewFace(src.shaping)
	s.faces[src] = f
	return f
}

func (s *goTextShaper) Shape(text string, src *FontSource, sizePx float32) ShapedRun {
	if text == "" || src == nil {
		return ShapedRun{}
	}

	runes := []rune(text)
	byteOffsets := runeByteOffsets(text, len(runes))
	face := s.face(src)

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	var out ShapedRun
	var penX float32
	for _, run := range bidiRuns(text, len(runes)) {
		input := shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: run.direction,
			Face:      face,
			Size:      fixed.Int26_6(sizePx * 64),
			Script:    runScript(runes[run.start:run.end]),
			Language:  language.NewLanguage("en"),
		}
		output := hb.Shape(input)

		out.Ascent = max(out.Ascent, fixedToFloat(output.LineBounds.Ascent))
		out.Descent = max(out.Descent, -fixedToFloat(output.LineBounds.Descent))

		for _, g := range output.Glyphs {
			// Offsets are fine positioning adjustments on top of the
			// pen position; HarfBuzz reports them with y growing up.
			out.Glyphs = append(out.Glyphs, ShapedGlyph{
				GID:      GlyphID(g.GlyphID),
				Cluster:  byteOffsets[g.TextIndex()],
				X:        penX + fixedToFloat(g.XOffset),
				Y:        -fixedToFloat(g.YOffset),
				XAdvance: fixedToFloat(g.XAdvance),
			})
			penX += fixedToFloat(g.XAdvance)
		}
	}
	out.Advance = penX
	return out
}

type bidiRun struct {
	start, end int // rune indices
	direction  di.Direction
}

// bidiRuns splits the text into direction runs in visual order. Plain
// LTR text yields a single run.
func bidiRuns(text string, runeLen int) []bidiRun {
	var p bidi.Paragraph
	p.SetString(text)
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() <= 1 {
		return []bidiRun{{start: 0, end: runeLen, direction: di.DirectionLTR}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, bidiRun{start: start, end: end + 1, direction: dir})
	}
	return runs
}

// runScript picks the script of the first non-space rune of a run.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// runeByteOffsets maps rune indices to byte offsets within text.
func runeByteOffsets(text string, runeLen int) []int {
	offsets := make([]int, 0, runeLen)
	for i := range text {
		offsets = append(offsets, i)
	}
	return offsets
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
