// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"regexp"

	"github.com/gogpu/uidraw/render"
)

// Strings may carry inline color escape codes that recolor the text
// that follows: "^" plus a palette digit (0-9), or "^x"/"^X" plus six
// hex digits, e.g. "^7white ^xFF0000red".

var escapeRE = regexp.MustCompile(`\^([0-9])|\^[xX]([0-9A-Fa-f]{6})`)

// escapePalette maps the palette digits '0'..'9'.
var escapePalette = [10]render.Color{
	render.RGB(0, 0, 0),       // black
	render.RGB(255, 0, 0),     // red
	render.RGB(0, 255, 0),     // green
	render.RGB(0, 0, 255),     // blue
	render.RGB(255, 255, 0),   // yellow
	render.RGB(255, 0, 255),   // purple
	render.RGB(0, 255, 255),   // aqua
	render.RGB(255, 255, 255), // white
	render.RGB(178, 178, 178), // gray
	render.RGB(102, 102, 102), // dark gray
}

// ColoredSegment is a run of text together with the color its escape
// code selected. The first segment of a string that does not begin
// with an escape code has HasColor false and keeps the caller's color.
type ColoredSegment struct {
	Text     string
	Color    render.Color
	HasColor bool
}

// EscapeColor decodes a single escape code. Unrecognized input yields
// white, matching the forgiving behavior expected from user strings.
func EscapeColor(code string) render.Color {
	m := escapeRE.FindStringSubmatch(code)
	if m == nil {
		return render.White
	}
	if m[1] != "" {
		return escapePalette[m[1][0]-'0']
	}
	return render.Hex(m[2])
}

// SplitColorEscapes cuts a string into colored segments at its escape
// codes. The codes themselves are removed. A string without codes
// comes back as one uncolored segment; segments between consecutive
// codes may be empty.
func SplitColorEscapes(s string) []ColoredSegment {
	matches := escapeRE.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return []ColoredSegment{{Text: s}}
	}

	var segments []ColoredSegment
	if matches[0][0] > 0 {
		segments = append(segments, ColoredSegment{Text: s[:matches[0][0]]})
	}
	for i, m := range matches {
		end := len(s)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		segments = append(segments, ColoredSegment{
			Text:     s[m[1]:end],
			Color:    EscapeColor(s[m[0]:m[1]]),
			HasColor: true,
		})
	}
	return segments
}

// StripColorEscapes removes all escape codes, keeping the text.
func StripColorEscapes(s string) string {
	return escapeRE.ReplaceAllString(s, "")
}
