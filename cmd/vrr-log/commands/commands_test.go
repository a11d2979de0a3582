package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vrr-project/vrr-go/pkg/log"
)

func writeSampleLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.vlog")

	fl, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer fl.Close()

	now := time.Now()
	fl.Log(log.Event{
		Timestamp: now,
		CycleID:   "aaaaaaaa-1111-2222-3333-444444444444",
		DisplayID: 0,
		Category:  log.CategoryVoteSet,
		Vote:      &log.VoteEvent{Priority: 5, PriorityName: "LOW_POWER_MODE", Min: 0, Max: 60},
	})
	fl.Log(log.Event{
		Timestamp: now.Add(time.Millisecond),
		CycleID:   "aaaaaaaa-1111-2222-3333-444444444444",
		DisplayID: 0,
		Category:  log.CategoryResolved,
		Resolution: &log.ResolutionEvent{
			BaseModeID: 60, RangeMin: 0, RangeMax: 60, VoteCount: 1, Changed: true,
		},
	})
	fl.Log(log.Event{
		Timestamp: now.Add(2 * time.Millisecond),
		CycleID:   "bbbbbbbb-1111-2222-3333-444444444444",
		DisplayID: 1,
		Category:  log.CategoryResolved,
		Resolution: &log.ResolutionEvent{
			BaseModeID: 90, RangeMin: 90, RangeMax: 90, VoteCount: 1, Changed: false,
		},
	})
	return path
}

func TestRunViewFormatsEvents(t *testing.T) {
	path := writeSampleLog(t)

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[cycle:aaaaaaaa]",
		"LOW_POWER_MODE: (0, 60) Hz",
		"base mode 60, range (0, 60) Hz, 1 votes (changed)",
		"display 1 RESOLVED",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("view output missing %q:\n%s", want, out)
		}
	}
}

func TestRunViewFilters(t *testing.T) {
	path := writeSampleLog(t)

	category := log.CategoryResolved
	displayID := int32(1)
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &category, DisplayID: &displayID}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "display 0") {
		t.Fatalf("filter leaked display 0 events:\n%s", out)
	}
	if !strings.Contains(out, "base mode 90") {
		t.Fatalf("expected display 1 resolution in output:\n%s", out)
	}
}

func TestParseCategoryFlag(t *testing.T) {
	c, err := ParseCategoryFlag("resolved")
	if err != nil || c != log.CategoryResolved {
		t.Fatalf("expected CategoryResolved, got %v err=%v", c, err)
	}
	if _, err := ParseCategoryFlag("bogus"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestRunStats(t *testing.T) {
	path := writeSampleLog(t)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Total events: 3",
		"Events by category:",
		"display 0: 2 events, 1 resolutions (1 changed), last base mode 60",
		"display 1: 1 events, 1 resolutions (0 changed), last base mode 90",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output missing %q:\n%s", want, out)
		}
	}
}
