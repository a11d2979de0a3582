package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes arbitration events to an slog.Logger.
// Useful for development when you want to see decisions in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("cycle_id", event.CycleID),
		slog.Int("display", int(event.DisplayID)),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.Vote != nil:
		attrs = append(attrs, slog.String("priority", event.Vote.PriorityName))
		if event.Category == CategoryVoteSet {
			attrs = append(attrs,
				slog.Float64("min", float64(event.Vote.Min)),
				slog.Float64("max", float64(event.Vote.Max)),
			)
		}
	case event.Catalog != nil:
		attrs = append(attrs,
			slog.Int("modes", event.Catalog.ModeCount),
			slog.Int("default_mode", int(event.Catalog.DefaultModeID)),
		)
	case event.Resolution != nil:
		attrs = append(attrs,
			slog.Int("base_mode", int(event.Resolution.BaseModeID)),
			slog.Float64("range_min", float64(event.Resolution.RangeMin)),
			slog.Float64("range_max", float64(event.Resolution.RangeMax)),
			slog.Int("votes", event.Resolution.VoteCount),
			slog.Bool("changed", event.Resolution.Changed),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "arbitration event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
