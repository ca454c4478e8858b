package aggregators

import "time"

// CutoverTracker keeps the latest historical timestamp seen. Live rows at or
// before it are already covered by the archive.
type CutoverTracker struct {
	cutover  time.Time
	observed bool
}

func NewCutoverTracker() *CutoverTracker {
	return &CutoverTracker{}
}

// Observe records ts. Timestamps may arrive in any order.
func (t *CutoverTracker) Observe(ts time.Time) {
	if !t.observed || ts.After(t.cutover) {
		t.cutover = ts
		t.observed = true
	}
}

// Cutover returns the maximum observed timestamp, or false when nothing was observed.
func (t *CutoverTracker) Cutover() (time.Time, bool) {
	return t.cutover, t.observed
}
