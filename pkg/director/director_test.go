package director

import (
	"io"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vrr-project/vrr-go/pkg/arbiter"
	"github.com/vrr-project/vrr-go/pkg/display"
	"github.com/vrr-project/vrr-go/pkg/log"
	"github.com/vrr-project/vrr-go/pkg/rate"
	"github.com/vrr-project/vrr-go/pkg/vote"
)

func newDirectorWithFpsRange(t *testing.T, id display.ID, minFps, maxFps int) *Director {
	t.Helper()

	var modes []display.Mode
	for i := minFps; i <= maxFps; i++ {
		modes = append(modes, display.Mode{
			ID:          int32(i),
			Width:       1000,
			Height:      1000,
			RefreshRate: float32(i),
		})
	}
	catalog, err := display.NewCatalog(modes, int32(minFps))
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	d := New()
	d.SetCatalog(id, catalog)
	return d
}

func TestDesiredSpecWithoutVotes(t *testing.T) {
	const id display.ID = 0
	d := newDirectorWithFpsRange(t, id, 60, 90)

	spec, ok := d.DesiredSpec(id)
	if !ok {
		t.Fatal("expected a spec once the catalog is installed")
	}
	if spec.BaseModeID != 60 {
		t.Fatalf("expected base mode 60, got %d", spec.BaseModeID)
	}
	if spec.RefreshRateRange.Min != 0 || !math.IsInf(float64(spec.RefreshRateRange.Max), 1) {
		t.Fatalf("expected unrestricted range, got %v", spec.RefreshRateRange)
	}

	if _, ok := d.DesiredSpec(7); ok {
		t.Fatal("unknown display should have no spec")
	}
}

func TestVoteMutationsReArbitrate(t *testing.T) {
	const id display.ID = 0
	d := newDirectorWithFpsRange(t, id, 60, 90)

	d.SetVote(id, vote.MaxPriority, vote.ForRefreshRates(65, 85))
	d.SetVote(id, vote.MinPriority, vote.ForRefreshRates(70, 80))

	spec, _ := d.DesiredSpec(id)
	if spec.BaseModeID != 70 || !spec.RefreshRateRange.ApproxEqual(rate.New(70, 80)) {
		t.Fatalf("expected base 70 range (70,80), got %v", spec)
	}

	d.ClearVote(id, vote.MinPriority)
	spec, _ = d.DesiredSpec(id)
	if spec.BaseModeID != 65 || !spec.RefreshRateRange.ApproxEqual(rate.New(65, 85)) {
		t.Fatalf("expected base 65 range (65,85) after clear, got %v", spec)
	}

	// Invalid tiers are ignored outright.
	d.SetVote(id, vote.MaxPriority+1, vote.ForRefreshRates(10, 20))
	spec, _ = d.DesiredSpec(id)
	if spec.BaseModeID != 65 {
		t.Fatalf("invalid tier changed the result: %v", spec)
	}
}

func TestInjectVotesCopiesSnapshot(t *testing.T) {
	const id display.ID = 0
	d := newDirectorWithFpsRange(t, id, 60, 90)

	snap := vote.NewSnapshot()
	snap.Set(vote.MaxPriority, vote.ForRefreshRates(66, 84))
	d.InjectVotes(id, snap)

	// Mutating the caller's snapshot afterwards must not leak in.
	snap.Set(vote.MaxPriority, vote.ForRefreshRates(90, 90))

	spec, _ := d.DesiredSpec(id)
	if spec.BaseModeID != 66 || !spec.RefreshRateRange.ApproxEqual(rate.New(66, 84)) {
		t.Fatalf("expected base 66 range (66,84), got %v", spec)
	}

	got := d.Votes(id)
	if r, _ := got.Get(vote.MaxPriority); r.Min != 66 {
		t.Fatalf("stored snapshot mutated externally: %v", r)
	}
}

func TestChangeCallbackFiresOnlyOnChange(t *testing.T) {
	const id display.ID = 0
	d := newDirectorWithFpsRange(t, id, 60, 90)

	var mu sync.Mutex
	var calls []arbiter.DesiredSpec
	d.OnDesiredSpecChanged(func(_ display.ID, spec arbiter.DesiredSpec) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, spec)
	})

	d.SetVote(id, vote.MaxPriority, vote.ForRefreshRates(65, 85))
	// A discarded (disjoint) lower vote leaves the result unchanged and
	// must not fire the callback.
	d.SetVote(id, vote.MinPriority, vote.ForRefreshRates(10, 20))
	d.SetVote(id, vote.PriorityAppRequestSize, vote.ForRefreshRates(70, 80))

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 {
		t.Fatalf("expected 2 change callbacks, got %d", len(calls))
	}
	if calls[0].BaseModeID != 65 || calls[1].BaseModeID != 70 {
		t.Fatalf("unexpected callback sequence: %v", calls)
	}
}

func TestRemoveDisplay(t *testing.T) {
	const id display.ID = 0
	d := newDirectorWithFpsRange(t, id, 60, 90)
	d.SetVote(id, vote.MaxPriority, vote.ForRefreshRates(65, 85))

	d.RemoveDisplay(id)

	if _, ok := d.DesiredSpec(id); ok {
		t.Fatal("removed display should have no spec")
	}
	if got := d.Votes(id); got != nil {
		t.Fatalf("removed display should have no votes, got %v", got)
	}
	if ids := d.Displays(); len(ids) != 0 {
		t.Fatalf("expected no displays, got %v", ids)
	}
}

func TestDisplaysSorted(t *testing.T) {
	d := New()
	for _, id := range []display.ID{5, 1, 3} {
		catalog, err := display.NewCatalog([]display.Mode{{ID: 1, RefreshRate: 60}}, 1)
		if err != nil {
			t.Fatalf("building catalog: %v", err)
		}
		d.SetCatalog(id, catalog)
	}

	ids := d.Displays()
	want := []display.ID{1, 3, 5}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestVotesBeforeCatalogResolveOnceCatalogArrives(t *testing.T) {
	const id display.ID = 0
	d := New()

	d.SetVote(id, vote.MaxPriority, vote.ForRefreshRates(70, 80))
	if _, ok := d.DesiredSpec(id); ok {
		t.Fatal("no spec expected before a catalog is installed")
	}

	catalog, err := display.NewCatalog([]display.Mode{
		{ID: 1, RefreshRate: 60},
		{ID: 2, RefreshRate: 75},
	}, 1)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	d.SetCatalog(id, catalog)

	spec, ok := d.DesiredSpec(id)
	if !ok || spec.BaseModeID != 2 {
		t.Fatalf("expected pending votes applied on catalog install, got %v ok=%v", spec, ok)
	}
}

func TestConcurrentMutationsStayConsistent(t *testing.T) {
	const id display.ID = 0
	d := newDirectorWithFpsRange(t, id, 60, 90)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			p := vote.MinPriority + vote.Priority(n%int(vote.MaxPriority+1))
			for j := 0; j < 50; j++ {
				d.SetVote(id, p, vote.ForRefreshRates(60, 90))
				d.ClearVote(id, p)
			}
		}(i)
	}
	wg.Wait()

	// All votes cleared: back to the unconstrained result.
	spec, ok := d.DesiredSpec(id)
	if !ok || spec.BaseModeID != 60 || spec.RefreshRateRange.Min != 0 {
		t.Fatalf("expected unconstrained result after churn, got %v", spec)
	}
	if d.Votes(id).Len() != 0 {
		t.Fatal("expected empty snapshot after churn")
	}
}

func TestEventCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "director.vlog")
	fl, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const id display.ID = 0
	catalog, err := display.NewCatalog([]display.Mode{{ID: 60, RefreshRate: 60}}, 60)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	d := NewWithLogger(fl)
	d.SetCatalog(id, catalog)
	d.SetVote(id, vote.MaxPriority, vote.ForRefreshRates(0, 60))
	fl.Close()

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var categories []log.Category
	cycles := make(map[string][]log.Category)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read error: %v", err)
		}
		categories = append(categories, event.Category)
		cycles[event.CycleID] = append(cycles[event.CycleID], event.Category)
	}

	want := []log.Category{
		log.CategoryCatalogUpdated, log.CategoryResolved,
		log.CategoryVoteSet, log.CategoryResolved,
	}
	if len(categories) != len(want) {
		t.Fatalf("expected %d events, got %d (%v)", len(want), len(categories), categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], categories[i])
		}
	}

	// Each mutation shares its cycle ID with the resolution it triggered.
	if len(cycles) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(cycles))
	}
	for cycleID, cats := range cycles {
		if len(cats) != 2 || cats[1] != log.CategoryResolved {
			t.Fatalf("cycle %s: expected mutation followed by resolution, got %v", cycleID, cats)
		}
	}
}
