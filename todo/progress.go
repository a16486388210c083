package todo

// ProgressTracker detects the transition into a fully completed list.
//
// The all-complete event is edge-triggered: it fires once when the completed
// count reaches the total (with a non-empty list) having previously been
// below it, and never while the list merely remains fully complete.
type ProgressTracker struct {
	prevCompleted int
}

// NewProgressTracker seeds the tracker with the current completed count so
// that an already-complete list does not fire on the first observation.
func NewProgressTracker(completed int) *ProgressTracker {
	return &ProgressTracker{prevCompleted: completed}
}

// Observe records the current counts and reports whether the list just
// became fully complete.
func (tr *ProgressTracker) Observe(completed, total int) bool {
	fired := completed > 0 && completed == total && completed > tr.prevCompleted
	tr.prevCompleted = completed
	return fired
}
