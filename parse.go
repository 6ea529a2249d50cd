package uidraw

import (
	"fmt"

	"github.com/gogpu/uidraw/text"
)

// ParseError reports a draw call argument that could not be
// interpreted, such as an unknown alignment or font selector.
type ParseError struct {
	What  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uidraw: unknown %s %q", e.What, e.Value)
}

// Align selects how text is positioned relative to its anchor point.
type Align uint8

const (
	// AlignLeft puts the anchor at the left edge of the text.
	AlignLeft Align = iota
	// AlignCenter centers the text on the vertical screen midline; the
	// anchor's x becomes an offset from that midline.
	AlignCenter
	// AlignRight measures the anchor's x from the right edge of the
	// screen and puts it at the right edge of the text.
	AlignRight
	// AlignCenterX centers the text on the anchor point itself.
	AlignCenterX
	// AlignRightX puts the anchor at the right edge of the text.
	AlignRightX
)

// ParseAlign interprets an alignment selector string.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "LEFT":
		return AlignLeft, nil
	case "CENTER":
		return AlignCenter, nil
	case "RIGHT":
		return AlignRight, nil
	case "CENTER_X":
		return AlignCenterX, nil
	case "RIGHT_X":
		return AlignRightX, nil
	}
	return 0, &ParseError{What: "alignment", Value: s}
}

// alignment maps the selector to the layout-level alignment.
func (a Align) alignment() text.Alignment {
	switch a {
	case AlignCenter, AlignCenterX:
		return text.AlignCenter
	case AlignRight, AlignRightX:
		return text.AlignMax
	}
	return text.AlignMin
}

// screenRelative reports whether the selector positions against the
// screen edges rather than the current viewport.
func (a Align) screenRelative() bool {
	return a == AlignCenter || a == AlignRight
}

// FontType selects one of the configured UI fonts.
type FontType uint8

const (
	// FontFixed is the monospaced font.
	FontFixed FontType = iota
	// FontVariable is the proportional font.
	FontVariable
	// FontVariableBold is the proportional font at bold weight.
	FontVariableBold
)

// ParseFontType interprets a font selector string.
func ParseFontType(s string) (FontType, error) {
	switch s {
	case "FIXED":
		return FontFixed, nil
	case "VAR":
		return FontVariable, nil
	case "VAR BOLD":
		return FontVariableBold, nil
	}
	return 0, &ParseError{What: "font", Value: s}
}

// fontSizeForLineHeight derives the font size from a requested line
// height, keeping it in a readable range.
func fontSizeForLineHeight(lineHeight float32) float32 {
	size := lineHeight - 2
	if size < 11 {
		size = 11
	}
	if size > 32 {
		size = 32
	}
	return size
}
