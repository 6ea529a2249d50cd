// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/uidraw/geom"
)

func TestMeshAddRect(t *testing.T) {
	var m Mesh
	m.AddRect(geom.RectFromXYWH[float32](10, 20, 30, 40), whiteUV, White, 0)

	if got := len(m.Vertices); got != 4 {
		t.Fatalf("len(Vertices) = %d, want 4", got)
	}
	wantIndices := []uint32{0, 1, 3, 1, 2, 3}
	for i, idx := range wantIndices {
		if m.Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], idx)
		}
	}

	wantPos := []geom.LogicalPoint{
		geom.Pt[float32](10, 20),
		geom.Pt[float32](40, 20),
		geom.Pt[float32](40, 60),
		geom.Pt[float32](10, 60),
	}
	for i, want := range wantPos {
		if m.Vertices[i].Pos != want {
			t.Errorf("Vertices[%d].Pos = %v, want %v", i, m.Vertices[i].Pos, want)
		}
	}
}

func TestMeshIndicesOffset(t *testing.T) {
	var m Mesh
	m.AddRect(geom.RectFromXYWH[float32](0, 0, 1, 1), whiteUV, White, 0)
	m.AddRect(geom.RectFromXYWH[float32](2, 2, 1, 1), whiteUV, White, 0)

	if got := len(m.Indices); got != 12 {
		t.Fatalf("len(Indices) = %d, want 12", got)
	}
	wantSecond := []uint32{4, 5, 7, 5, 6, 7}
	for i, idx := range wantSecond {
		if m.Indices[6+i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", 6+i, m.Indices[6+i], idx)
		}
	}
}

func TestMeshByteViews(t *testing.T) {
	var m Mesh
	m.AddRect(geom.RectFromXYWH[float32](0, 0, 1, 1), whiteUV, White, 0)

	if got, want := len(m.VertexBytes()), 4*24; got != want {
		t.Errorf("len(VertexBytes()) = %d, want %d", got, want)
	}
	if got, want := len(m.IndexBytes()), 6*4; got != want {
		t.Errorf("len(IndexBytes()) = %d, want %d", got, want)
	}
}

func TestMeshIsEmpty(t *testing.T) {
	var m Mesh
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false for a new mesh")
	}
	m.AddQuad(geom.QuadFromRect(geom.RectFromXYWH[float32](0, 0, 1, 1)), geom.QuadFromRect(whiteUV), White, 0)
	if m.IsEmpty() {
		t.Error("IsEmpty() = true after AddQuad")
	}
}
