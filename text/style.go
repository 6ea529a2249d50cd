// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"encoding/binary"
	"math"
	"strings"

	"honnef.co/go/safeish"
)

// StyleID is a compact handle for a (font, size, skew) combination.
// Style properties are the same for every glyph of a shaped run and do
// not need to repeat in each glyph cache key; instead each style is
// interned once and the key carries this ID.
type StyleID uint32

// styleInterner assigns StyleIDs. Keys are serialized into a byte
// buffer and looked up through an unsafe string view to avoid
// allocating on the hit path; only inserts clone the key.
type styleInterner struct {
	ids  map[string]StyleID
	next StyleID
	key  []byte
}

func newStyleInterner() *styleInterner {
	return &styleInterner{ids: make(map[string]StyleID)}
}

// intern returns the StyleID for the combination, creating one on
// first sight. sizePx is the font size in physical pixels; skewDeg is
// the faux-italic skew angle in whole degrees.
func (si *styleInterner) intern(fontID uint64, sizePx float32, skewDeg int8) StyleID {
	key := si.key[:0]
	key = binary.LittleEndian.AppendUint64(key, fontID)
	key = binary.LittleEndian.AppendUint32(key, math.Float32bits(sizePx))
	key = append(key, byte(skewDeg))
	si.key = key[:0]

	keyStr := safeish.Cast[string](key)
	if id, ok := si.ids[keyStr]; ok {
		return id
	}
	id := si.next
	si.next++
	si.ids[strings.Clone(keyStr)] = id
	return id
}

func (si *styleInterner) clear() {
	clear(si.ids)
	si.next = 0
}
