package reveal

// ChangeDetector holds the accepted LineSet and filters out candidates that
// would not change the rendered partition.
type ChangeDetector struct {
	current  LineSet
	accepted bool
}

// Offer accepts candidate when nothing has been accepted yet or when it
// differs structurally from the current set. It reports whether the candidate
// became current.
func (d *ChangeDetector) Offer(candidate LineSet) bool {
	if d.accepted && d.current.Equal(candidate) {
		return false
	}
	d.current = candidate
	d.accepted = true
	return true
}

// Current returns the accepted LineSet, or nil before the first acceptance.
func (d *ChangeDetector) Current() LineSet {
	return d.current
}

// Reset forgets the accepted set so the next offer is always accepted.
func (d *ChangeDetector) Reset() {
	d.current = nil
	d.accepted = false
}
