// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
)

// Alignment positions laid out text horizontally relative to the
// anchor point it is drawn at.
type Alignment uint8

const (
	// AlignMin anchors the left edge of the text.
	AlignMin Alignment = iota
	// AlignCenter anchors the midpoint: glyphs shift left by half the
	// text width.
	AlignCenter
	// AlignMax anchors the right edge: glyphs shift left by the full
	// text width.
	AlignMax
)

// Segment is a run of text with the color it is tinted with.
type Segment struct {
	Text  string
	Color render.Color
}

// LayoutJob describes one piece of text to lay out. Jobs are hashed
// together with the display scale to key the layout cache, so equal
// jobs laid out twice in a frame cost one shaping pass.
type LayoutJob struct {
	Segments []Segment
	// Family is the font family name the text resolves against.
	Family string
	// FontSize is the text size in logical pixels.
	FontSize float32
	// LineHeight is the distance between line tops in logical pixels.
	LineHeight float32
	Alignment  Alignment
	// Weight selects a registered face; zero means regular (400).
	Weight float32
	// Italic requests an italic face, synthesized by slanting when the
	// family has no true italic.
	Italic bool
}

// NewLayoutJob creates an empty job with the given style.
func NewLayoutJob(family string, fontSize, lineHeight float32, alignment Alignment) LayoutJob {
	return LayoutJob{
		Family:     family,
		FontSize:   fontSize,
		LineHeight: lineHeight,
		Alignment:  alignment,
	}
}

// Append adds a segment.
func (j *LayoutJob) Append(text string, color render.Color) {
	j.Segments = append(j.Segments, Segment{Text: text, Color: color})
}

// Hash digests the job together with the display scale. This is the
// layout cache key.
func (j *LayoutJob) Hash(pixelsPerPoint float32) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	write := func(b []byte) {
		for _, c := range b {
			h ^= uint64(c)
			h *= prime64
		}
	}
	var buf [8]byte
	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:4], v)
		write(buf[:4])
	}

	for _, seg := range j.Segments {
		writeU32(uint32(len(seg.Text)))
		write([]byte(seg.Text))
		writeU32(seg.Color.Packed())
	}
	write([]byte(j.Family))
	writeU32(math.Float32bits(j.FontSize))
	writeU32(math.Float32bits(j.LineHeight))
	flags := uint32(j.Alignment)
	if j.Italic {
		flags |= 1 << 8
	}
	writeU32(flags)
	writeU32(math.Float32bits(j.Weight))
	writeU32(math.Float32bits(pixelsPerPoint))
	return h
}

// clusterPos records where one shaped cluster sits on its line, for
// cursor hit testing.
type clusterPos struct {
	x       float32
	advance float32
	index   int // byte index of the cluster's first byte
	end     int // byte index one past the cluster
}

// layoutLine is one visual line of a finished layout.
type layoutLine struct {
	clusters []clusterPos
}

// Layout is one job's text, shaped, rasterized into the atlas, and
// ready to tessellate. Layouts are immutable once built and shared
// through the layout cache; they stay valid until the atlas they
// reference is cleared.
type Layout struct {
	sourceHash uint64
	rows       []render.GlyphRow
	quadCount  int
	width      float32
	lineHeight float32
	lines      []layoutLine
	textLen    int
}

// SourceHash identifies the job and scale this layout was built from.
func (l *Layout) SourceHash() uint64 { return l.sourceHash }

// GlyphRows returns the placed glyphs, one slice per line that has any.
func (l *Layout) GlyphRows() []render.GlyphRow { return l.rows }

// QuadCount returns the number of glyph quads in the layout.
func (l *Layout) QuadCount() int { return l.quadCount }

// Width returns the widest line's advance in logical pixels.
func (l *Layout) Width() float32 { return l.width }

// CursorIndex returns the byte index of the character under the given
// point, in layout-local coordinates. Points left of a line map to its
// first character, points right of it (or below the last line) to the
// end of the text.
func (l *Layout) CursorIndex(cursor geom.LogicalPoint) int {
	if len(l.lines) == 0 {
		return 0
	}

	row := 0
	if l.lineHeight > 0 {
		row = int(math.Floor(float64(cursor.Y / l.lineHeight)))
	}
	if row < 0 {
		row = 0
	}
	if row >= len(l.lines) {
		return l.textLen
	}

	line := l.lines[row]
	if len(line.clusters) == 0 {
		return l.textLen
	}
	for _, c := range line.clusters {
		if cursor.X < c.x+c.advance {
			return c.index
		}
	}
	return line.clusters[len(line.clusters)-1].end
}

var _ render.TextSource = (*Layout)(nil)
