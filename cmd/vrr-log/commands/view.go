// Package commands implements the vrr-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"math"

	"github.com/vrr-project/vrr-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	DisplayID *int32
	CycleID   string
}

// ParseCategoryFlag maps a CLI category name to a log.Category.
func ParseCategoryFlag(name string) (log.Category, error) {
	switch name {
	case "vote-set":
		return log.CategoryVoteSet, nil
	case "vote-cleared":
		return log.CategoryVoteCleared, nil
	case "catalog":
		return log.CategoryCatalogUpdated, nil
	case "removed":
		return log.CategoryDisplayRemoved, nil
	case "resolved":
		return log.CategoryResolved, nil
	default:
		return 0, fmt.Errorf("unknown category %q", name)
	}
}

// RunView reads the log file and prints matching events to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		CycleID:   filter.CycleID,
		DisplayID: filter.DisplayID,
		Category:  filter.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [cycle:%s] display %d %s\n", ts, shortenCycleID(event.CycleID), event.DisplayID, event.Category)

	switch {
	case event.Vote != nil:
		if event.Category == log.CategoryVoteSet {
			fmt.Fprintf(w, "  %s: (%s, %s) Hz\n", event.Vote.PriorityName, formatRate(event.Vote.Min), formatRate(event.Vote.Max))
		} else {
			fmt.Fprintf(w, "  %s\n", event.Vote.PriorityName)
		}
	case event.Catalog != nil:
		fmt.Fprintf(w, "  %d modes, default mode %d\n", event.Catalog.ModeCount, event.Catalog.DefaultModeID)
	case event.Resolution != nil:
		changed := ""
		if event.Resolution.Changed {
			changed = " (changed)"
		}
		fmt.Fprintf(w, "  base mode %d, range (%s, %s) Hz, %d votes%s\n",
			event.Resolution.BaseModeID,
			formatRate(event.Resolution.RangeMin), formatRate(event.Resolution.RangeMax),
			event.Resolution.VoteCount, changed)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenCycleID returns the first 8 characters of the cycle ID.
func shortenCycleID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatRate(v float32) string {
	if math.IsInf(float64(v), 1) {
		return "inf"
	}
	return fmt.Sprintf("%g", v)
}
