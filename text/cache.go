// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

// layoutCache keeps finished layouts across frames. Entries are swept
// by generation: a layout not touched between two Flush calls is
// dropped, so the cache tracks the working set of the UI without a
// size limit.
type layoutCache struct {
	generation uint32
	entries    map[uint64]*cachedLayout
}

type cachedLayout struct {
	generation uint32
	layout     *Layout
}

func newLayoutCache() *layoutCache {
	return &layoutCache{entries: make(map[uint64]*cachedLayout)}
}

// get returns the layout for hash, marking it used this generation.
func (c *layoutCache) get(hash uint64) *Layout {
	entry, ok := c.entries[hash]
	if !ok {
		return nil
	}
	entry.generation = c.generation
	return entry.layout
}

func (c *layoutCache) insert(hash uint64, layout *Layout) {
	c.entries[hash] = &cachedLayout{generation: c.generation, layout: layout}
}

// flush removes layouts unused since the previous flush and opens a
// new generation.
func (c *layoutCache) flush() {
	for hash, entry := range c.entries {
		if entry.generation != c.generation {
			delete(c.entries, hash)
		}
	}
	c.generation++
}

func (c *layoutCache) clear() {
	clear(c.entries)
}

func (c *layoutCache) len() int {
	return len(c.entries)
}
