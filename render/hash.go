// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
)

// hasher accumulates a 64-bit FNV-1a digest over primitive fields
// without allocating. Float values hash by their bit pattern.
type hasher struct {
	buf [8]byte
	h   uint64
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func newHasher() *hasher {
	return &hasher{h: fnvOffset64}
}

func (h *hasher) writeBytes(b []byte) {
	d := h.h
	for _, c := range b {
		d ^= uint64(c)
		d *= fnvPrime64
	}
	h.h = d
}

func (h *hasher) writeUint32(v uint32) {
	binary.LittleEndian.PutUint32(h.buf[:4], v)
	h.writeBytes(h.buf[:4])
}

func (h *hasher) writeUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:8], v)
	h.writeBytes(h.buf[:8])
}

func (h *hasher) writeInt32(v int32) {
	h.writeUint32(uint32(v))
}

func (h *hasher) writeFloat32(v float32) {
	h.writeUint32(math.Float32bits(v))
}

func (h *hasher) sum() uint64 {
	return h.h
}
