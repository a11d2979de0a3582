package arbiter

import (
	"fmt"

	"github.com/vrr-project/vrr-go/pkg/display"
	"github.com/vrr-project/vrr-go/pkg/rate"
	"github.com/vrr-project/vrr-go/pkg/vote"
)

// DesiredSpec is the arbitration result for one display: the preferred
// base mode and the resolved achievable refresh-rate interval. The range
// is never empty; with no votes present it spans (0, +Inf).
type DesiredSpec struct {
	// BaseModeID is the chosen catalog mode. Its rate lies within
	// RefreshRateRange, or it is the catalog default when no supported
	// mode qualifies.
	BaseModeID int32

	// RefreshRateRange is the final resolved achievable interval.
	RefreshRateRange rate.Range
}

func (s DesiredSpec) String() string {
	return fmt.Sprintf("base mode %d, range (%g, %g)", s.BaseModeID, s.RefreshRateRange.Min, s.RefreshRateRange.Max)
}

// Equal reports whether two specs agree: same base mode and
// tolerance-equal ranges.
func (s DesiredSpec) Equal(other DesiredSpec) bool {
	return s.BaseModeID == other.BaseModeID && s.RefreshRateRange.ApproxEqual(other.RefreshRateRange)
}

// Resolve arbitrates one display's vote snapshot against its mode
// catalog.
//
// Tiers are visited in strictly descending priority. Each present vote's
// range is intersected with the running result; if the intersection is
// satisfiable (within rate.Tolerance) it becomes the new running result,
// otherwise the vote conflicts with strictly higher tiers and its effect
// is discarded outright — lower tiers may still narrow the interval as
// long as they stay compatible with every decision above them. A vote
// whose own range is inverted is unsatisfiable by construction and is
// likewise discarded without aborting the cycle.
//
// The base mode is the first mode in ascending-rate order whose nominal
// rate lies inside the resolved interval (equal rates break ties by
// lowest mode ID); when no mode qualifies, or the catalog is empty, the
// catalog's default mode is chosen.
func Resolve(votes vote.Snapshot, catalog *display.Catalog) DesiredSpec {
	current := rate.Unbounded()

	votes.Descending(func(v vote.Vote) bool {
		candidate := current.Intersect(v.Range)
		if !candidate.IsEmpty() {
			current = candidate
		}
		return true
	})

	baseModeID := catalog.DefaultModeID()
	for _, m := range catalog.ByAscendingRate() {
		if current.Contains(m.RefreshRate) {
			baseModeID = m.ID
			break
		}
	}

	return DesiredSpec{
		BaseModeID:       baseModeID,
		RefreshRateRange: current,
	}
}
