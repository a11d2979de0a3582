package vote

import "github.com/vrr-project/vrr-go/pkg/rate"

// Snapshot is one display's complete vote set for a single arbitration
// cycle: a sparse mapping from priority tier to the tier's acceptable
// range. Snapshots replace, never accumulate — each cycle sees the full
// current vote set.
//
// The zero value is ready to use. A nil Snapshot reads as empty.
type Snapshot map[Priority]rate.Range

// NewSnapshot creates an empty vote snapshot.
func NewSnapshot() Snapshot {
	return make(Snapshot)
}

// Set records the vote range for a tier, replacing any previous vote at
// that tier. Invalid tiers are ignored.
func (s Snapshot) Set(p Priority, r rate.Range) {
	if !p.IsValid() {
		return
	}
	s[p] = r
}

// Clear removes the vote at a tier, if any.
func (s Snapshot) Clear(p Priority) {
	delete(s, p)
}

// Get returns the vote range at a tier and whether one is present.
func (s Snapshot) Get(p Priority) (rate.Range, bool) {
	r, ok := s[p]
	return r, ok
}

// Len returns the number of tiers with a vote present.
func (s Snapshot) Len() int {
	return len(s)
}

// Clone returns an independent copy of the snapshot. Cloning a nil
// snapshot returns nil.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	c := make(Snapshot, len(s))
	for p, r := range s {
		c[p] = r
	}
	return c
}

// Descending visits present votes from MaxPriority down to MinPriority,
// skipping absent tiers. Iteration order depends only on tier values,
// never on insertion order. It stops early if fn returns false.
func (s Snapshot) Descending(fn func(Vote) bool) {
	for p := MaxPriority; p >= MinPriority; p-- {
		r, ok := s[p]
		if !ok {
			continue
		}
		if !fn(Vote{Priority: p, Range: r}) {
			return
		}
	}
}
