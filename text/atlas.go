// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"image"

	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
)

const (
	// atlasPadding is the gap in pixels between allocated regions, so
	// linear sampling never bleeds into a neighbor.
	atlasPadding = 1

	// atlasInitialHeight is the height the atlas starts at. The width
	// is always the maximum texture side; only the height grows.
	atlasInitialHeight = 256
)

// FontAtlas packs rasterized glyph bitmaps into a single RGBA texture
// using simple row-based packing. Pixel (0, 0) always holds an opaque
// white pixel so solid shapes can sample the same texture.
//
// The atlas starts short and doubles its height as rows fill up, never
// exceeding the maximum texture side given at creation. When even that
// is not enough, allocation wraps around to a third of the current
// height and starts overwriting old glyphs; the overflowed state makes
// [FontAtlas.Capacity] report full so the owner recreates the atlas at
// the next frame boundary.
type FontAtlas struct {
	maxSide   int32
	size      geom.PhysicalSize
	pixels    []byte // RGBA, row-major
	cursor    geom.PhysicalPoint
	rowHeight int32
	// dirty marks that the texture must be reuploaded to the GPU.
	dirty      bool
	overflowed bool
}

// NewFontAtlas creates an atlas limited to maxSide pixels in either
// dimension.
func NewFontAtlas(maxSide int32) *FontAtlas {
	height := min(atlasInitialHeight, maxSide)
	a := &FontAtlas{
		maxSide: maxSide,
		size:    geom.Sz(maxSide, height),
		pixels:  make([]byte, 4*int(maxSide)*int(height)),
	}
	a.initialize()
	return a
}

// initialize puts the white pixel at (0, 0). Rendering a solid color
// shape is done by setting the texture to the font atlas and sampling
// the white pixel at (0, 0).
func (a *FontAtlas) initialize() {
	region := a.Allocate(geom.Sz[int32](1, 1))
	a.putPixel(region.Origin.X, region.Origin.Y, 255, 255, 255, 255)
}

// Allocate reserves a region of the given size and returns it. The
// caller fills it with WriteMask. Allocation never fails; when the
// atlas is exhausted it wraps around and overwrites old content until
// the owner notices via Capacity and clears it.
func (a *FontAtlas) Allocate(size geom.PhysicalSize) geom.PhysicalRect {
	if a.cursor.X+size.W > a.size.W {
		a.cursor.X = 0
		a.cursor.Y += a.rowHeight + atlasPadding
		a.rowHeight = 0
	}

	a.rowHeight = max(a.rowHeight, size.H)

	required := a.cursor.Y + a.rowHeight
	if required > a.maxSide {
		slogger().Warn("font atlas overflowed", "maxSide", a.maxSide)
		// Start overwriting old glyphs. The overflowed flag causes the
		// atlas to be recreated next frame.
		a.cursor = geom.Pt(int32(0), a.size.H/3)
		a.overflowed = true
	} else if required > a.size.H {
		newHeight := a.size.H
		for newHeight < required {
			newHeight *= 2
		}
		a.growHeight(newHeight)
	}

	pos := a.cursor
	a.cursor.X += size.W + atlasPadding
	a.dirty = true

	return geom.RectFromOriginSize(pos, size)
}

func (a *FontAtlas) growHeight(newHeight int32) {
	grown := make([]byte, 4*int(a.size.W)*int(newHeight))
	copy(grown, a.pixels)
	a.pixels = grown
	a.size.H = newHeight
}

// WriteMask fills an allocated region from an alpha mask: every pixel
// becomes white with the mask's coverage as alpha. The mask must have
// the same size as the region.
func (a *FontAtlas) WriteMask(region geom.PhysicalRect, mask *image.Alpha) {
	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, alpha := range row {
			a.putPixel(region.Origin.X+int32(x), region.Origin.Y+int32(y), 255, 255, 255, alpha)
		}
	}
}

func (a *FontAtlas) putPixel(x, y int32, r, g, b, alpha uint8) {
	i := 4 * (int(y)*int(a.size.W) + int(x))
	a.pixels[i] = r
	a.pixels[i+1] = g
	a.pixels[i+2] = b
	a.pixels[i+3] = alpha
}

// TakeDelta returns the pending texture upload if the atlas changed
// since the last call, and resets the dirty flag.
func (a *FontAtlas) TakeDelta() *render.ImageDelta {
	if !a.dirty {
		return nil
	}
	a.dirty = false

	pixels := make([]byte, len(a.pixels))
	copy(pixels, a.pixels)
	return &render.ImageDelta{
		Image: render.ImageData{Size: a.size, Pixels: pixels},
		Options: render.TextureOptions{
			Magnification: render.FilterLinear,
			Minification:  render.FilterLinear,
		},
	}
}

// Capacity reports how full the atlas is as a fraction of the maximum
// texture side, or 1 after an overflow.
func (a *FontAtlas) Capacity() float32 {
	if a.overflowed {
		return 1
	}
	return float32(a.cursor.Y+a.rowHeight) / float32(a.maxSide)
}

// Clear empties the atlas back to its current size and restores the
// white pixel. Regions returned by earlier Allocate calls are invalid
// afterwards.
func (a *FontAtlas) Clear() {
	clear(a.pixels)
	a.cursor = geom.PhysicalPoint{}
	a.rowHeight = 0
	a.dirty = false
	a.overflowed = false
	a.initialize()
}

// Size returns the current atlas texture size.
func (a *FontAtlas) Size() geom.PhysicalSize {
	return a.size
}

// Pixel returns the RGBA value at (x, y), mainly for tests.
func (a *FontAtlas) Pixel(x, y int32) (r, g, b, alpha uint8) {
	i := 4 * (int(y)*int(a.size.W) + int(x))
	return a.pixels[i], a.pixels[i+1], a.pixels[i+2], a.pixels[i+3]
}
