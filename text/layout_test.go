// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"testing"

	"github.com/gogpu/uidraw/render"
)

func TestLayoutJobHashStable(t *testing.T) {
	a := NewLayoutJob("sans", 16, 20, AlignMin)
	a.Append("hello", render.White)
	b := NewLayoutJob("sans", 16, 20, AlignMin)
	b.Append("hello", render.White)

	if a.Hash(1) != b.Hash(1) {
		t.Error("equal jobs hash differently")
	}
}

func TestLayoutJobHashSensitivity(t *testing.T) {
	base := NewLayoutJob("sans", 16, 20, AlignMin)
	base.Append("hello", render.White)
	baseHash := base.Hash(1)

	variants := map[string]func(j *LayoutJob){
		"text":       func(j *LayoutJob) { j.Segments[0].Text = "hellp" },
		"color":      func(j *LayoutJob) { j.Segments[0].Color = render.RGB(255, 0, 0) },
		"family":     func(j *LayoutJob) { j.Family = "mono" },
		"fontSize":   func(j *LayoutJob) { j.FontSize = 17 },
		"lineHeight": func(j *LayoutJob) { j.LineHeight = 21 },
		"alignment":  func(j *LayoutJob) { j.Alignment = AlignCenter },
		"weight":     func(j *LayoutJob) { j.Weight = 700 },
		"italic":     func(j *LayoutJob) { j.Italic = true },
		"segment":    func(j *LayoutJob) { j.Append("", render.White) },
	}
	for name, mutate := range variants {
		j := NewLayoutJob("sans", 16, 20, AlignMin)
		j.Append("hello", render.White)
		mutate(&j)
		if j.Hash(1) == baseHash {
			t.Errorf("changing %s did not change the hash", name)
		}
	}

	if base.Hash(2) == baseHash {
		t.Error("changing the display scale did not change the hash")
	}
}

func TestLayoutJobSegmentBoundaries(t *testing.T) {
	// The segment split position must be part of the hash: "ab"+"c"
	// and "a"+"bc" are different jobs.
	a := NewLayoutJob("sans", 16, 20, AlignMin)
	a.Append("ab", render.White)
	a.Append("c", render.White)
	b := NewLayoutJob("sans", 16, 20, AlignMin)
	b.Append("a", render.White)
	b.Append("bc", render.White)

	if a.Hash(1) == b.Hash(1) {
		t.Error("different segment boundaries hash the same")
	}
}
