package dice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryCapacity is the ring size used when none is configured.
const DefaultHistoryCapacity = 100

// HistoryEntry is one audited roll.
type HistoryEntry struct {
	ID       string
	Result   RollResult
	RolledAt time.Time
}

// History is a bounded ring buffer of recent rolls kept for auditing.
// It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []HistoryEntry
	start   int
	size    int
	now     func() time.Time
}

// NewHistory returns an empty History holding at most capacity entries.
// A capacity <= 0 selects DefaultHistoryCapacity.
//
// Postcondition: Cap() > 0 and Len() == 0.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		entries: make([]HistoryEntry, capacity),
		now:     time.Now,
	}
}

// Record appends r, evicting the oldest entry when full.
//
// Postcondition: Len() <= Cap(); the returned entry is the newest in Entries().
func (h *History) Record(r RollResult) HistoryEntry {
	e := HistoryEntry{
		ID:       uuid.New().String(),
		Result:   r,
		RolledAt: h.now(),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	idx := (h.start + h.size) % len(h.entries)
	h.entries[idx] = e
	if h.size < len(h.entries) {
		h.size++
	} else {
		h.start = (h.start + 1) % len(h.entries)
	}
	return e
}

// Entries returns a copy of the buffered entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.entries[(h.start+i)%len(h.entries)]
	}
	return out
}

// Len returns the number of buffered entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

// Cap returns the maximum number of entries retained.
func (h *History) Cap() int {
	return len(h.entries)
}
