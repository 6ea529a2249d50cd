// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"image"
	"testing"

	"github.com/gogpu/uidraw/geom"
	"github.com/gogpu/uidraw/render"
)

func TestFontAtlasWhitePixel(t *testing.T) {
	a := NewFontAtlas(256)
	r, g, b, alpha := a.Pixel(0, 0)
	if r != 255 || g != 255 || b != 255 || alpha != 255 {
		t.Errorf("Pixel(0, 0) = (%d, %d, %d, %d), want (255, 255, 255, 255)", r, g, b, alpha)
	}
}

func TestFontAtlasAllocate(t *testing.T) {
	a := NewFontAtlas(256)

	first := a.Allocate(geom.Sz[int32](10, 12))
	second := a.Allocate(geom.Sz[int32](8, 6))

	if first.Origin.Y != second.Origin.Y {
		t.Errorf("allocations in the same row at y %d and %d", first.Origin.Y, second.Origin.Y)
	}
	if got, want := second.Origin.X, first.MaxX()+atlasPadding; got != want {
		t.Errorf("second allocation at x %d, want %d", got, want)
	}
}

func TestFontAtlasRowWrap(t *testing.T) {
	a := NewFontAtlas(64)

	tall := a.Allocate(geom.Sz[int32](30, 20))
	a.Allocate(geom.Sz[int32](30, 10))
	wrapped := a.Allocate(geom.Sz[int32](30, 10))

	if wrapped.Origin.X != 0 {
		t.Errorf("wrapped allocation at x = %d, want 0", wrapped.Origin.X)
	}
	// The new row starts below the tallest allocation of the full row.
	if got, want := wrapped.Origin.Y, tall.MaxY()+atlasPadding; got != want {
		t.Errorf("wrapped allocation at y = %d, want %d", got, want)
	}
}

func TestFontAtlasGrowsHeight(t *testing.T) {
	a := NewFontAtlas(1024)
	if got := a.Size().H; got != atlasInitialHeight {
		t.Fatalf("initial height = %d, want %d", got, atlasInitialHeight)
	}

	for i := 0; i < 10; i++ {
		a.Allocate(geom.Sz[int32](1000, 30))
	}
	if got := a.Size().H; got <= atlasInitialHeight {
		t.Errorf("height after filling = %d, want > %d", got, atlasInitialHeight)
	}
	if got := a.Size().W; got != 1024 {
		t.Errorf("width changed to %d, want 1024", got)
	}
}

func TestFontAtlasOverflow(t *testing.T) {
	a := NewFontAtlas(64)

	for i := 0; i < 200; i++ {
		a.Allocate(geom.Sz[int32](60, 10))
	}
	if got := a.Capacity(); got != 1.0 {
		t.Errorf("Capacity() after overflow = %v, want 1.0", got)
	}

	// Overflow wraps back to a third of the height and keeps going.
	region := a.Allocate(geom.Sz[int32](60, 10))
	if region.Origin.Y >= 64 {
		t.Errorf("allocation after overflow at y = %d, beyond the atlas", region.Origin.Y)
	}
}

func TestFontAtlasClear(t *testing.T) {
	a := NewFontAtlas(64)
	for i := 0; i < 200; i++ {
		a.Allocate(geom.Sz[int32](60, 10))
	}

	a.Clear()
	if got := a.Capacity(); got >= 0.5 {
		t.Errorf("Capacity() after clear = %v, want small", got)
	}
	r, g, b, alpha := a.Pixel(0, 0)
	if r != 255 || g != 255 || b != 255 || alpha != 255 {
		t.Errorf("white pixel lost after clear: (%d, %d, %d, %d)", r, g, b, alpha)
	}
}

func TestFontAtlasWriteMask(t *testing.T) {
	a := NewFontAtlas(256)

	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.Pix[0] = 0x80
	mask.Pix[1] = 0xFF

	region := a.Allocate(geom.Sz[int32](2, 1))
	a.WriteMask(region, mask)

	r, _, _, alpha := a.Pixel(region.Origin.X, region.Origin.Y)
	if r != 255 || alpha != 0x80 {
		t.Errorf("first mask pixel = (r %d, a %d), want (255, 128)", r, alpha)
	}
	_, _, _, alpha = a.Pixel(region.Origin.X+1, region.Origin.Y)
	if alpha != 0xFF {
		t.Errorf("second mask pixel alpha = %d, want 255", alpha)
	}
}

func TestFontAtlasTakeDelta(t *testing.T) {
	a := NewFontAtlas(128)

	delta := a.TakeDelta()
	if delta == nil {
		t.Fatal("TakeDelta() = nil right after creation, want initial upload")
	}
	if !delta.IsWholeTexture() {
		t.Error("initial delta is not a whole-texture update")
	}
	if delta.Options.Minification != render.FilterLinear {
		t.Errorf("delta minification = %v, want FilterLinear", delta.Options.Minification)
	}
	if got, want := len(delta.Image.Pixels), 4*128*int(a.Size().H); got != want {
		t.Errorf("delta pixel length = %d, want %d", got, want)
	}

	if again := a.TakeDelta(); again != nil {
		t.Error("TakeDelta() twice in a row returned a second delta")
	}

	a.Allocate(geom.Sz[int32](4, 4))
	if delta = a.TakeDelta(); delta == nil {
		t.Error("TakeDelta() after an allocation = nil, want a delta")
	}
}
