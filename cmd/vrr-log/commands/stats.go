package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/vrr-project/vrr-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Displays         map[int32]*DisplayStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// DisplayStats holds statistics for a single display.
type DisplayStats struct {
	Events      int
	Resolutions int
	Changes     int
	LastBase    int32
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Displays:         make(map[int32]*DisplayStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ds, ok := stats.Displays[event.DisplayID]
		if !ok {
			ds = &DisplayStats{}
			stats.Displays[event.DisplayID] = ds
		}
		ds.Events++
		if event.Resolution != nil {
			ds.Resolutions++
			ds.LastBase = event.Resolution.BaseModeID
			if event.Resolution.Changed {
				ds.Changes++
			}
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return
	}

	fmt.Fprintf(w, "Time range:   %s - %s (%s)\n",
		stats.TimeRange.Start.UTC().Format(time.RFC3339),
		stats.TimeRange.End.UTC().Format(time.RFC3339),
		stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))

	fmt.Fprintln(w, "\nEvents by category:")
	categories := make([]log.Category, 0, len(stats.EventsByCategory))
	for c := range stats.EventsByCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, c := range categories {
		fmt.Fprintf(w, "  %-16s %d\n", c, stats.EventsByCategory[c])
	}

	fmt.Fprintln(w, "\nDisplays:")
	ids := make([]int32, 0, len(stats.Displays))
	for id := range stats.Displays {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		ds := stats.Displays[id]
		fmt.Fprintf(w, "  display %d: %d events, %d resolutions (%d changed), last base mode %d\n",
			id, ds.Events, ds.Resolutions, ds.Changes, ds.LastBase)
	}
}
