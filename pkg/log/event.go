package log

import (
	"fmt"
	"time"
)

// Event represents one arbitration event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// CycleID identifies the arbitration cycle the event belongs to
	// (UUID). Mutation events share the cycle ID of the resolution they
	// triggered.
	CycleID string `cbor:"2,keyasint"`

	// DisplayID is the managed display the event concerns.
	DisplayID int32 `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Vote       *VoteEvent       `cbor:"5,keyasint,omitempty"` // Vote set or cleared
	Catalog    *CatalogEvent    `cbor:"6,keyasint,omitempty"` // Catalog updated
	Resolution *ResolutionEvent `cbor:"7,keyasint,omitempty"` // Cycle outcome
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryVoteSet records a vote being set or replaced at a tier.
	CategoryVoteSet Category = 0
	// CategoryVoteCleared records a vote being removed from a tier.
	CategoryVoteCleared Category = 1
	// CategoryCatalogUpdated records a display's mode catalog changing.
	CategoryCatalogUpdated Category = 2
	// CategoryDisplayRemoved records a display leaving management.
	CategoryDisplayRemoved Category = 3
	// CategoryResolved records an arbitration cycle's outcome.
	CategoryResolved Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryVoteSet:
		return "VOTE_SET"
	case CategoryVoteCleared:
		return "VOTE_CLEARED"
	case CategoryCatalogUpdated:
		return "CATALOG_UPDATED"
	case CategoryDisplayRemoved:
		return "DISPLAY_REMOVED"
	case CategoryResolved:
		return "RESOLVED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(c))
	}
}

// VoteEvent carries the details of a vote mutation.
type VoteEvent struct {
	// Priority is the numeric tier the vote occupies.
	Priority int `cbor:"1,keyasint"`

	// PriorityName is the tier's symbolic name.
	PriorityName string `cbor:"2,keyasint,omitempty"`

	// Min and Max are the vote's range bounds. Unset for clears.
	Min float32 `cbor:"3,keyasint,omitempty"`
	Max float32 `cbor:"4,keyasint,omitempty"`
}

// CatalogEvent carries the details of a catalog update.
type CatalogEvent struct {
	// ModeCount is the number of supported modes in the new catalog.
	ModeCount int `cbor:"1,keyasint"`

	// DefaultModeID is the new catalog's designated default mode.
	DefaultModeID int32 `cbor:"2,keyasint"`
}

// ResolutionEvent carries an arbitration cycle's outcome.
type ResolutionEvent struct {
	// BaseModeID is the chosen base mode.
	BaseModeID int32 `cbor:"1,keyasint"`

	// RangeMin and RangeMax are the resolved interval's bounds.
	RangeMin float32 `cbor:"2,keyasint"`
	RangeMax float32 `cbor:"3,keyasint"`

	// VoteCount is the number of votes present in the cycle's snapshot.
	VoteCount int `cbor:"4,keyasint"`

	// Changed reports whether the outcome differs from the display's
	// previous desired spec.
	Changed bool `cbor:"5,keyasint"`
}
