// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/uidraw/geom"

// TextureID identifies a texture owned by the rendering backend.
type TextureID uint64

// FontTextureID is the reserved identifier of the glyph atlas texture.
// User textures start above it.
const FontTextureID TextureID = 0

// TextureFilter selects how a texture is sampled when scaled.
type TextureFilter uint8

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

// TextureOptions control how a texture is sampled.
type TextureOptions struct {
	Magnification TextureFilter
	Minification  TextureFilter
}

// ImageData is a rectangle of RGBA8 pixels in row-major order.
// Pixels holds exactly 4*Size.W*Size.H bytes.
type ImageData struct {
	Size   geom.PhysicalSize
	Pixels []byte
}

// NewImageData allocates a zeroed pixel rectangle.
func NewImageData(size geom.PhysicalSize) ImageData {
	return ImageData{
		Size:   size,
		Pixels: make([]byte, 4*int(size.W)*int(size.H)),
	}
}

// ImageDelta describes a change to a texture. When Pos is nil the image
// replaces the whole texture, which may resize it; otherwise the image
// patches the region at *Pos.
type ImageDelta struct {
	Image   ImageData
	Pos     *geom.PhysicalPoint
	Options TextureOptions
}

// IsWholeTexture reports whether the delta replaces the entire texture.
func (d *ImageDelta) IsWholeTexture() bool {
	return d.Pos == nil
}

// TextureUpdate pairs a texture with a pending change to it.
type TextureUpdate struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta collects the texture changes produced during one frame,
// in the order they must be applied: sets before the frame draws, frees
// after it.
type TexturesDelta struct {
	Set  []TextureUpdate
	Free []TextureID
}

// IsEmpty reports whether the frame requires no texture work.
func (d *TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// Append moves all changes from other into d, leaving other empty.
func (d *TexturesDelta) Append(other *TexturesDelta) {
	d.Set = append(d.Set, other.Set...)
	d.Free = append(d.Free, other.Free...)
	other.Set = nil
	other.Free = nil
}
