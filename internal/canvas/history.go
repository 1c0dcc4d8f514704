package canvas

import "image"

// DefaultUndoLimit is the number of snapshots kept when no limit is given.
const DefaultUndoLimit = 3

// History is a bounded stack of raster snapshots. Pushing onto a full history
// drops the oldest entry.
type History struct {
	limit   int
	entries []*image.RGBA
}

// NewHistory returns an empty history holding at most limit snapshots.
// Limits below one are raised to one.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit, entries: make([]*image.RGBA, 0, limit)}
}

// Push records snap as the most recent entry.
func (h *History) Push(snap *image.RGBA) {
	if len(h.entries) >= h.limit {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = nil
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, snap)
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (*image.RGBA, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len reports how many snapshots are stored.
func (h *History) Len() int { return len(h.entries) }

// Cap reports the maximum number of snapshots.
func (h *History) Cap() int { return h.limit }

// Clear drops every snapshot.
func (h *History) Clear() {
	for i := range h.entries {
		h.entries[i] = nil
	}
	h.entries = h.entries[:0]
}
