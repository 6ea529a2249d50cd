// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"os"
	"sync/atomic"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// nextSourceID hands out unique identifiers for loaded font blobs.
var nextSourceID atomic.Uint64

// FontSource is a loaded font file (TTF or OTF). It is parsed once for
// shaping and once for rasterization; both views share the same data.
// One FontSource serves any number of sizes and is shared across the
// application.
type FontSource struct {
	id   uint64
	data []byte
	name string

	shaping *gtfont.Font
	outline *sfnt.Font
}

// NewFontSource parses font data. The data slice is copied internally
// and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	shaped, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	outline, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font for rasterization: %w", err)
	}

	s := &FontSource{
		id:      nextSourceID.Add(1),
		data:    dataCopy,
		shaping: shaped.Font,
		outline: outline,
	}
	s.name = extractFontName(outline)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data)
}

// ID returns the unique identifier of this font blob. It participates
// in glyph cache keys.
func (s *FontSource) ID() uint64 { return s.id }

// Name returns the font family name.
func (s *FontSource) Name() string { return s.name }

func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
