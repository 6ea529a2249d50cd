// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text turns strings into atlas-backed glyph geometry.
//
// The [Engine] is the entry point. It owns a dynamically packed
// [FontAtlas], a glyph rasterization cache keyed by subpixel position,
// and a per-frame layout cache, so that text which repeats across
// frames costs a hash lookup instead of a shaping pass.
//
// Shaping is done with github.com/go-text/typesetting and glyph
// rasterization with golang.org/x/image; both sit behind small
// interfaces so tests can substitute deterministic fakes.
//
// The Engine and everything it owns are single-threaded: all calls
// must come from the frame-driving goroutine.
package text
