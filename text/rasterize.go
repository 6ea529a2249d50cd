// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/uidraw/geom"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphMask is a rasterized glyph: an alpha coverage bitmap plus the
// vector from the pen position (on the baseline) to the bitmap's
// top-left corner.
type GlyphMask struct {
	Mask   *image.Alpha
	Offset geom.Vec[int32]
}

// Rasterizer turns a single glyph into an alpha mask. fracOffset in
// [0, 1) shifts the outline right before sampling, which is how
// subpixel positioning is realized. skewDeg applies a faux-italic
// slant in degrees; zero means upright.
//
// A nil mask with a nil error means the glyph covers no pixels.
type Rasterizer interface {
	Rasterize(src *FontSource, gid GlyphID, sizePx float32, skewDeg int8, fracOffset float32) (*GlyphMask, error)
}

// outlineRasterizer renders glyph outlines loaded with x/image's sfnt
// parser using the x/image scanline rasterizer. It reuses its buffers
// across calls and is not safe for concurrent use.
type outlineRasterizer struct {
	buf  sfnt.Buffer
	rast vector.Rasterizer
}

// NewOutlineRasterizer returns the standard glyph rasterizer.
func NewOutlineRasterizer() Rasterizer {
	return &outlineRasterizer{}
}

func (r *outlineRasterizer) Rasterize(src *FontSource, gid GlyphID, sizePx float32, skewDeg int8, fracOffset float32) (*GlyphMask, error) {
	ppem := fixed.Int26_6(sizePx * 64)
	segments, err := src.outline.LoadGlyph(&r.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}

	// Outline coordinates are 26.6 fixed point with y growing down.
	// Apply the italic skew and the subpixel shift while converting to
	// floats, tracking the transformed bounds.
	skew := float32(math.Tan(float64(skewDeg) * math.Pi / 180))
	transform := func(p fixed.Point26_6) (float32, float32) {
		x := float32(p.X) / 64
		y := float32(p.Y) / 64
		return x - skew*y + fracOffset, y
	}

	minX := float32(math.Inf(1))
	minY := float32(math.Inf(1))
	maxX := float32(math.Inf(-1))
	maxY := float32(math.Inf(-1))
	hasCurve := false
	for _, seg := range segments {
		if seg.Op != sfnt.SegmentOpMoveTo {
			hasCurve = true
		}
		args := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			args = 2
		case sfnt.SegmentOpCubeTo:
			args = 3
		}
		for i := 0; i < args; i++ {
			x, y := transform(seg.Args[i])
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if !hasCurve {
		return nil, nil
	}

	left := int32(math.Floor(float64(minX)))
	top := int32(math.Floor(float64(minY)))
	width := int(math.Ceil(float64(maxX))) - int(left)
	height := int(math.Ceil(float64(maxY))) - int(top)
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	r.rast.Reset(width, height)
	r.rast.DrawOp = draw.Src
	shift := func(p fixed.Point26_6) (float32, float32) {
		x, y := transform(p)
		return x - float32(left), y - float32(top)
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := shift(seg.Args[0])
			r.rast.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := shift(seg.Args[0])
			r.rast.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := shift(seg.Args[0])
			x, y := shift(seg.Args[1])
			r.rast.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := shift(seg.Args[0])
			c2x, c2y := shift(seg.Args[1])
			x, y := shift(seg.Args[2])
			r.rast.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	r.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &GlyphMask{
		Mask:   mask,
		Offset: geom.V(left, top),
	}, nil
}
