// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sort"

	"github.com/gogpu/uidraw/geom"
)

// LayerKey orders draw layers: primitives draw in ascending (Layer,
// Sublayer) order, insertion order within a key.
type LayerKey struct {
	Layer    int32
	Sublayer int32
}

// Less reports whether k orders before o.
func (k LayerKey) Less(o LayerKey) bool {
	if k.Layer != o.Layer {
		return k.Layer < o.Layer
	}
	return k.Sublayer < o.Sublayer
}

// Layers accumulates the draw primitives of one frame, grouped by draw
// layer.
//
// Adding a primitive places it in the currently set layer. Positions
// are interpreted as being relative to the current viewport; they are
// translated into absolute (screen) positions and clipped by the
// viewport. Layers is not safe for concurrent use.
type Layers struct {
	layers       map[LayerKey][]ClippedPrimitive
	sortedKeys   []LayerKey
	keysSorted   bool
	currentLayer LayerKey
	viewport     geom.LogicalRect
	drawColor    Color
}

// NewLayers returns an empty accumulator.
func NewLayers() *Layers {
	return &Layers{layers: make(map[LayerKey][]ClippedPrimitive)}
}

// Reset drops all primitives and restores the default layer and draw
// color, keeping the viewport.
func (l *Layers) Reset() {
	l.currentLayer = LayerKey{}
	clear(l.layers)
	l.sortedKeys = l.sortedKeys[:0]
	l.keysSorted = false
	l.drawColor = Transparent
}

// SetViewport sets the clip rectangle and translation origin for
// subsequently added primitives.
func (l *Layers) SetViewport(viewport geom.LogicalRect) {
	l.viewport = viewport
}

// SetViewportFromSize sets the viewport to cover a surface of the given
// size.
func (l *Layers) SetViewportFromSize(size geom.LogicalSize) {
	l.SetViewport(geom.LogicalRect{Size: size})
}

// Viewport returns the current viewport.
func (l *Layers) Viewport() geom.LogicalRect {
	return l.viewport
}

// SetDrawLayer selects the layer and sublayer new primitives go to.
func (l *Layers) SetDrawLayer(layer, sublayer int32) {
	l.currentLayer = LayerKey{Layer: layer, Sublayer: sublayer}
}

// SetDrawSublayer changes the sublayer, keeping the main layer.
func (l *Layers) SetDrawSublayer(sublayer int32) {
	l.currentLayer.Sublayer = sublayer
}

// SetDrawColor sets the color new primitives are filled or tinted with.
func (l *Layers) SetDrawColor(color Color) {
	l.drawColor = color
}

// DrawColor returns the current draw color.
func (l *Layers) DrawColor() Color {
	return l.drawColor
}

// DrawRect records a rectangle in the current layer. A nil texture
// draws a solid fill in the current draw color.
func (l *Layers) DrawRect(rect geom.LogicalRect, texture *RectTexture) {
	l.AddRect(RectPrimitive{Rect: rect, Color: l.drawColor, Texture: texture})
}

// DrawQuad records a quadrilateral in the current layer. A nil texture
// draws a solid fill in the current draw color.
func (l *Layers) DrawQuad(quad geom.LogicalQuad, texture *QuadTexture) {
	l.AddQuad(QuadPrimitive{Quad: quad, Color: l.drawColor, Texture: texture})
}

// DrawText records a finished layout at position. When absolute is
// true the position is already in screen coordinates and skips the
// viewport translation; the viewport still clips.
func (l *Layers) DrawText(position geom.LogicalPoint, layout TextSource, absolute bool) {
	l.AddText(TextPrimitive{Pos: position, Layout: layout}, absolute)
}

// AddRect records a fully specified rectangle primitive.
func (l *Layers) AddRect(rect RectPrimitive) {
	p := rect.Translate(l.originVec())
	l.push(ClippedPrimitive{ClipRect: l.viewport, Primitive: p})
}

// AddQuad records a fully specified quadrilateral primitive.
func (l *Layers) AddQuad(quad QuadPrimitive) {
	p := quad.Translate(l.originVec())
	l.push(ClippedPrimitive{ClipRect: l.viewport, Primitive: p})
}

// AddText records a fully specified text primitive.
func (l *Layers) AddText(text TextPrimitive, absolute bool) {
	var p DrawPrimitive = text
	if !absolute {
		p = text.Translate(l.originVec())
	}
	l.push(ClippedPrimitive{ClipRect: l.viewport, Primitive: p})
}

func (l *Layers) originVec() geom.LogicalVec {
	return geom.V(l.viewport.Origin.X, l.viewport.Origin.Y)
}

func (l *Layers) push(c ClippedPrimitive) {
	key := l.currentLayer
	if _, ok := l.layers[key]; !ok {
		l.sortedKeys = append(l.sortedKeys, key)
		l.keysSorted = false
	}
	l.layers[key] = append(l.layers[key], c)
}

func (l *Layers) orderedKeys() []LayerKey {
	if !l.keysSorted {
		sort.Slice(l.sortedKeys, func(i, j int) bool {
			return l.sortedKeys[i].Less(l.sortedKeys[j])
		})
		l.keysSorted = true
	}
	return l.sortedKeys
}

// Consume returns all primitives in drawing order and leaves the
// accumulator empty.
func (l *Layers) Consume() []ClippedPrimitive {
	var out []ClippedPrimitive
	for _, key := range l.orderedKeys() {
		out = append(out, l.layers[key]...)
		delete(l.layers, key)
	}
	l.sortedKeys = l.sortedKeys[:0]
	l.keysSorted = false
	return out
}

// Hash digests the accumulated primitives in drawing order. Two frames
// that would draw identically hash equal, which is what frame elision
// keys on.
func (l *Layers) Hash() uint64 {
	h := newHasher()
	for _, key := range l.orderedKeys() {
		h.writeInt32(key.Layer)
		h.writeInt32(key.Sublayer)
		for _, c := range l.layers[key] {
			c.appendHash(h)
		}
	}
	return h.sum()
}
