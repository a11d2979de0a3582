package display

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog errors.
var (
	ErrDuplicateModeID = errors.New("duplicate mode id")
	ErrUnknownDefault  = errors.New("default mode not in catalog")
)

// ID identifies a managed display.
type ID int32

// Mode is a discrete supported operating point of a display.
type Mode struct {
	// ID uniquely identifies the mode within its display's catalog.
	ID int32

	// Width and Height are the mode's resolution in pixels.
	Width  int32
	Height int32

	// RefreshRate is the mode's nominal refresh rate in Hz.
	RefreshRate float32
}

func (m Mode) String() string {
	return fmt.Sprintf("mode %d (%dx%d@%gHz)", m.ID, m.Width, m.Height, m.RefreshRate)
}

// Catalog is a display's immutable set of supported modes plus its
// designated default mode. The default is the fallback operating point
// when no supported mode satisfies a resolved range; the discovery
// collaborator guarantees one always exists.
type Catalog struct {
	modes         []Mode
	byRate        []Mode
	defaultModeID int32
}

// NewCatalog builds a catalog from the supported mode list and the ID of
// the default mode. Mode IDs must be unique, and a non-empty mode list
// must contain the default. An empty mode list is legal; the default ID
// then refers to a mode known only to the discovery collaborator.
func NewCatalog(modes []Mode, defaultModeID int32) (*Catalog, error) {
	seen := make(map[int32]struct{}, len(modes))
	hasDefault := false
	for _, m := range modes {
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateModeID, m.ID)
		}
		seen[m.ID] = struct{}{}
		if m.ID == defaultModeID {
			hasDefault = true
		}
	}
	if len(modes) > 0 && !hasDefault {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDefault, defaultModeID)
	}

	c := &Catalog{
		modes:         append([]Mode(nil), modes...),
		defaultModeID: defaultModeID,
	}

	// Stable scan order for arbitration: ascending rate, ties broken by
	// lowest mode ID so tolerance-equal rates resolve deterministically.
	c.byRate = append([]Mode(nil), c.modes...)
	sort.SliceStable(c.byRate, func(i, j int) bool {
		if c.byRate[i].RefreshRate != c.byRate[j].RefreshRate {
			return c.byRate[i].RefreshRate < c.byRate[j].RefreshRate
		}
		return c.byRate[i].ID < c.byRate[j].ID
	})

	return c, nil
}

// Modes returns the supported modes in their supplied order.
func (c *Catalog) Modes() []Mode {
	return append([]Mode(nil), c.modes...)
}

// ByAscendingRate returns the supported modes sorted by ascending refresh
// rate, equal rates ordered by ascending mode ID.
func (c *Catalog) ByAscendingRate() []Mode {
	return append([]Mode(nil), c.byRate...)
}

// DefaultModeID returns the designated default mode's ID.
func (c *Catalog) DefaultModeID() int32 {
	return c.defaultModeID
}

// Mode looks up a mode by ID.
func (c *Catalog) Mode(id int32) (Mode, bool) {
	for _, m := range c.modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// Len returns the number of supported modes.
func (c *Catalog) Len() int {
	return len(c.modes)
}
