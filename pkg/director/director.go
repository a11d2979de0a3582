package director

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vrr-project/vrr-go/pkg/arbiter"
	"github.com/vrr-project/vrr-go/pkg/display"
	"github.com/vrr-project/vrr-go/pkg/log"
	"github.com/vrr-project/vrr-go/pkg/rate"
	"github.com/vrr-project/vrr-go/pkg/vote"
)

// Director arbitrates refresh-rate votes for a set of managed displays.
// All methods are safe for concurrent use.
type Director struct {
	mu sync.Mutex

	votes    map[display.ID]vote.Snapshot
	catalogs map[display.ID]*display.Catalog
	specs    map[display.ID]arbiter.DesiredSpec

	events log.Logger

	// onChange is called after a resolution whose outcome differs from
	// the display's previous desired spec. Invoked outside the director
	// lock.
	onChange func(display.ID, arbiter.DesiredSpec)
}

// New creates a Director with event capture disabled.
func New() *Director {
	return NewWithLogger(log.NoopLogger{})
}

// NewWithLogger creates a Director that records arbitration events to the
// given logger. A nil logger disables capture.
func NewWithLogger(events log.Logger) *Director {
	if events == nil {
		events = log.NoopLogger{}
	}
	return &Director{
		votes:    make(map[display.ID]vote.Snapshot),
		catalogs: make(map[display.ID]*display.Catalog),
		specs:    make(map[display.ID]arbiter.DesiredSpec),
		events:   events,
	}
}

// OnDesiredSpecChanged registers the change callback. The hardware-timing
// collaborator applies the spec it receives on the next safe frame
// boundary. Only one callback is supported; later registrations replace
// earlier ones.
func (d *Director) OnDesiredSpecChanged(fn func(display.ID, arbiter.DesiredSpec)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onChange = fn
}

// SetCatalog installs or replaces a display's mode catalog and
// re-arbitrates the display against its current votes.
func (d *Director) SetCatalog(id display.ID, catalog *display.Catalog) {
	if catalog == nil {
		return
	}

	d.mu.Lock()
	cycleID := uuid.NewString()
	d.catalogs[id] = catalog
	d.events.Log(log.Event{
		Timestamp: time.Now(),
		CycleID:   cycleID,
		DisplayID: int32(id),
		Category:  log.CategoryCatalogUpdated,
		Catalog: &log.CatalogEvent{
			ModeCount:     catalog.Len(),
			DefaultModeID: catalog.DefaultModeID(),
		},
	})
	spec, changed := d.resolveLocked(id, cycleID)
	cb := d.onChange
	d.mu.Unlock()

	if changed && cb != nil {
		cb(id, spec)
	}
}

// RemoveDisplay drops a display's catalog, votes and last resolution,
// e.g. on hot-unplug.
func (d *Director) RemoveDisplay(id display.ID) {
	d.mu.Lock()
	delete(d.catalogs, id)
	delete(d.votes, id)
	delete(d.specs, id)
	d.events.Log(log.Event{
		Timestamp: time.Now(),
		CycleID:   uuid.NewString(),
		DisplayID: int32(id),
		Category:  log.CategoryDisplayRemoved,
	})
	d.mu.Unlock()
}

// SetVote records one policy source's vote for a display, replacing any
// previous vote at the same tier, and re-arbitrates. Votes at invalid
// tiers are ignored.
func (d *Director) SetVote(id display.ID, p vote.Priority, r rate.Range) {
	if !p.IsValid() {
		return
	}

	d.mu.Lock()
	cycleID := uuid.NewString()
	snap, ok := d.votes[id]
	if !ok {
		snap = vote.NewSnapshot()
		d.votes[id] = snap
	}
	snap.Set(p, r)
	d.events.Log(log.Event{
		Timestamp: time.Now(),
		CycleID:   cycleID,
		DisplayID: int32(id),
		Category:  log.CategoryVoteSet,
		Vote: &log.VoteEvent{
			Priority:     int(p),
			PriorityName: p.String(),
			Min:          r.Min,
			Max:          r.Max,
		},
	})
	spec, changed := d.resolveLocked(id, cycleID)
	cb := d.onChange
	d.mu.Unlock()

	if changed && cb != nil {
		cb(id, spec)
	}
}

// ClearVote removes the vote at a tier, if any, and re-arbitrates.
func (d *Director) ClearVote(id display.ID, p vote.Priority) {
	d.mu.Lock()
	cycleID := uuid.NewString()
	if snap, ok := d.votes[id]; ok {
		snap.Clear(p)
	}
	d.events.Log(log.Event{
		Timestamp: time.Now(),
		CycleID:   cycleID,
		DisplayID: int32(id),
		Category:  log.CategoryVoteCleared,
		Vote: &log.VoteEvent{
			Priority:     int(p),
			PriorityName: p.String(),
		},
	})
	spec, changed := d.resolveLocked(id, cycleID)
	cb := d.onChange
	d.mu.Unlock()

	if changed && cb != nil {
		cb(id, spec)
	}
}

// InjectVotes replaces a display's whole vote snapshot and re-arbitrates.
// The snapshot is copied on the way in; the caller keeps ownership of its
// map.
func (d *Director) InjectVotes(id display.ID, snapshot vote.Snapshot) {
	d.mu.Lock()
	cycleID := uuid.NewString()
	d.votes[id] = snapshot.Clone()
	spec, changed := d.resolveLocked(id, cycleID)
	cb := d.onChange
	d.mu.Unlock()

	if changed && cb != nil {
		cb(id, spec)
	}
}

// Votes returns a copy of a display's current vote snapshot.
func (d *Director) Votes(id display.ID) vote.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.votes[id].Clone()
}

// Catalog returns a display's current catalog, or nil if none installed.
func (d *Director) Catalog(id display.ID) *display.Catalog {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.catalogs[id]
}

// DesiredSpec returns the display's current desired spec. The second
// return is false until a catalog has been installed for the display.
func (d *Director) DesiredSpec(id display.ID) (arbiter.DesiredSpec, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	spec, ok := d.specs[id]
	return spec, ok
}

// Displays returns the IDs of all displays with an installed catalog, in
// ascending order.
func (d *Director) Displays() []display.ID {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]display.ID, 0, len(d.catalogs))
	for id := range d.catalogs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// resolveLocked runs one arbitration cycle for a display. Must be called
// with mu held. Returns the resolved spec and whether it differs from the
// previous one. Displays without a catalog are skipped.
func (d *Director) resolveLocked(id display.ID, cycleID string) (arbiter.DesiredSpec, bool) {
	catalog, ok := d.catalogs[id]
	if !ok {
		return arbiter.DesiredSpec{}, false
	}

	spec := arbiter.Resolve(d.votes[id], catalog)
	prev, hadPrev := d.specs[id]
	changed := !hadPrev || !spec.Equal(prev)
	d.specs[id] = spec

	d.events.Log(log.Event{
		Timestamp: time.Now(),
		CycleID:   cycleID,
		DisplayID: int32(id),
		Category:  log.CategoryResolved,
		Resolution: &log.ResolutionEvent{
			BaseModeID: spec.BaseModeID,
			RangeMin:   spec.RefreshRateRange.Min,
			RangeMax:   spec.RefreshRateRange.Max,
			VoteCount:  d.votes[id].Len(),
			Changed:    changed,
		},
	})

	return spec, changed
}
