// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "math"

// SubpixelBins is the number of horizontal subpixel positions a glyph
// may be rasterized at. Bins have width 1/SubpixelBins and are centered
// on i/SubpixelBins.
const SubpixelBins = 4

// SubpixelBin is a quantized horizontal fraction of a pixel, in
// [0, SubpixelBins).
type SubpixelBin uint8

// Quantize splits a position into an integer pixel and the subpixel bin
// nearest to its fractional part. The integer part is chosen so that
// intPos + bin.Offset() is within half a bin of the input.
func Quantize(pos float32) (intPos int32, bin SubpixelBin) {
	return quantize(pos, SubpixelBins)
}

func quantize(pos float32, bins int) (int32, SubpixelBin) {
	halfBinWidth := 1.0 / float64(bins*2)
	intPos := int32(math.Floor(float64(pos) + halfBinWidth))

	frac := float64(pos) - math.Floor(float64(pos))
	scaled := int(math.Round(frac * float64(bins)))
	bin := SubpixelBin(((scaled % bins) + bins) % bins)
	return intPos, bin
}

// Offset returns the fractional offset the bin stands for.
func (b SubpixelBin) Offset() float32 {
	return float32(b) / SubpixelBins
}

// BinOffsets lists the fractional offset of every bin, in order. Glyph
// preloading rasterizes each glyph at all of them.
func BinOffsets() [SubpixelBins]float32 {
	var out [SubpixelBins]float32
	for i := range out {
		out[i] = float32(i) / SubpixelBins
	}
	return out
}
