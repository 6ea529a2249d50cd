// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "testing"

func TestQuantize(t *testing.T) {
	tests := []struct {
		pos     float32
		wantInt int32
		wantBin SubpixelBin
	}{
		{0, 0, 0},
		{0.11, 0, 0},
		{0.24, 0, 1},
		{0.5, 0, 2},
		{0.99, 1, 0},
		{3.14, 3, 1},
		{-0.8, -1, 1},
		{-1.0, -1, 0},
	}
	for _, tt := range tests {
		gotInt, gotBin := Quantize(tt.pos)
		if gotInt != tt.wantInt || gotBin != tt.wantBin {
			t.Errorf("Quantize(%v) = (%d, %d), want (%d, %d)",
				tt.pos, gotInt, gotBin, tt.wantInt, tt.wantBin)
		}
	}
}

func TestQuantizeTwoBins(t *testing.T) {
	tests := []struct {
		pos     float32
		wantInt int32
		wantBin SubpixelBin
	}{
		{0.24, 0, 0},
		{0.26, 0, 1},
		{0.76, 1, 0},
		{-0.76, -1, 0},
		{-0.25, 0, 0},
	}
	for _, tt := range tests {
		gotInt, gotBin := quantize(tt.pos, 2)
		if gotInt != tt.wantInt || gotBin != tt.wantBin {
			t.Errorf("quantize(%v, 2) = (%d, %d), want (%d, %d)",
				tt.pos, gotInt, gotBin, tt.wantInt, tt.wantBin)
		}
	}
}

func TestBinOffsets(t *testing.T) {
	offsets := BinOffsets()
	want := [SubpixelBins]float32{0, 0.25, 0.5, 0.75}
	if offsets != want {
		t.Errorf("BinOffsets() = %v, want %v", offsets, want)
	}
}

func TestQuantizeRoundTrip(t *testing.T) {
	// The quantized position plus the bin offset stays within half a
	// bin of the input.
	for _, pos := range []float32{0, 0.3, 1.7, -2.4, 12.126, 99.49} {
		intPos, bin := Quantize(pos)
		got := float32(intPos) + bin.Offset()
		if diff := got - pos; diff > 0.126 || diff < -0.126 {
			t.Errorf("Quantize(%v) reconstructs to %v, off by %v", pos, got, diff)
		}
	}
}
