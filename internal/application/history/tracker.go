// Package history records submitted lines and recalls them on arrow-key navigation.
package history

import (
	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/ports"
)

// Options tunes recall behaviour.
type Options struct {
	// Clamp keeps the recall cursor inside [0, len). Without it the cursor
	// keeps walking past either end and every lookup out there misses.
	Clamp bool
}

// Tracker is an unbounded, in-memory command history with a recall cursor.
type Tracker struct {
	entries []string
	cursor  int
	active  bool
	clamp   bool
}

// NewTracker creates an empty tracker.
func NewTracker(opts Options) *Tracker {
	return &Tracker{clamp: opts.Clamp}
}

// Record appends raw in submission order and ends any active recall.
// Empty strings and duplicates are kept.
func (t *Tracker) Record(raw string) {
	t.entries = append(t.entries, raw)
	t.active = false
	t.cursor = 0
}

// Recall moves the cursor one step in dir and returns the entry found there.
// It reports false when history is empty or the cursor lands out of range.
func (t *Tracker) Recall(dir domain.Direction) (string, bool) {
	if len(t.entries) == 0 {
		return "", false
	}

	var target int
	switch {
	case !t.active && dir == domain.DirectionPrevious:
		target = len(t.entries) - 1
	case !t.active:
		// An unset cursor jumps to the oldest entry on "next".
		target = 0
	case dir == domain.DirectionPrevious:
		target = t.cursor - 1
	default:
		target = t.cursor + 1
	}

	if t.clamp {
		target = clampIndex(target, len(t.entries))
	}

	t.cursor = target
	t.active = true

	if target < 0 || target >= len(t.entries) {
		return "", false
	}
	return t.entries[target], true
}

// Cursor returns the current recall position and whether a recall is active.
func (t *Tracker) Cursor() (int, bool) {
	return t.cursor, t.active
}

// Len returns the number of recorded entries.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the recorded lines, oldest first.
func (t *Tracker) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

var _ ports.HistoryTracker = (*Tracker)(nil)
