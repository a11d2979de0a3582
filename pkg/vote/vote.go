package vote

import (
	"fmt"

	"github.com/vrr-project/vrr-go/pkg/rate"
)

// Priority is a vote's precedence tier. Higher values override lower
// values on direct conflict.
type Priority int

// Priority tiers, lowest precedence first. A display's resolved range is
// narrowed tier by tier from MaxPriority down to MinPriority; a vote that
// conflicts with decisions made by strictly higher tiers is discarded.
const (
	// PriorityUserSettingRefreshRate is the user's preferred default
	// refresh rate setting.
	PriorityUserSettingRefreshRate Priority = iota

	// PriorityAppRequestRefreshRate is an explicit per-app refresh rate
	// request.
	PriorityAppRequestRefreshRate

	// PriorityAppRequestSize is a refresh rate derived from an app's
	// requested display size.
	PriorityAppRequestSize

	// PriorityUserSettingPeakRefreshRate caps rates at the user's
	// configured peak.
	PriorityUserSettingPeakRefreshRate

	// PriorityFlickerReduction restricts rates for flicker-sensitive
	// accessibility settings.
	PriorityFlickerReduction

	// PriorityLowPowerMode restricts rates while battery saver is active.
	PriorityLowPowerMode

	// PriorityProximityOverride forces a rate while the proximity sensor
	// has the display in a restricted state.
	PriorityProximityOverride

	numPriorities
)

// MinPriority and MaxPriority bound the valid tier values.
const (
	MinPriority = PriorityUserSettingRefreshRate
	MaxPriority = numPriorities - 1
)

// IsValid reports whether p is within the known tier bounds.
func (p Priority) IsValid() bool {
	return p >= MinPriority && p <= MaxPriority
}

// String returns the tier name.
func (p Priority) String() string {
	switch p {
	case PriorityUserSettingRefreshRate:
		return "USER_SETTING_REFRESH_RATE"
	case PriorityAppRequestRefreshRate:
		return "APP_REQUEST_REFRESH_RATE"
	case PriorityAppRequestSize:
		return "APP_REQUEST_SIZE"
	case PriorityUserSettingPeakRefreshRate:
		return "USER_SETTING_PEAK_REFRESH_RATE"
	case PriorityFlickerReduction:
		return "FLICKER_REDUCTION"
	case PriorityLowPowerMode:
		return "LOW_POWER_MODE"
	case PriorityProximityOverride:
		return "PROXIMITY_OVERRIDE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(p))
	}
}

// ParsePriority resolves a tier name as produced by Priority.String.
// Matching is exact; unknown names return false.
func ParsePriority(name string) (Priority, bool) {
	for p := MinPriority; p <= MaxPriority; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// Vote is one policy source's acceptable refresh-rate range.
type Vote struct {
	// Priority is the tier the producing policy source owns.
	Priority Priority

	// Range is the acceptable refresh-rate band. A range with
	// Min > Max is legal and simply never satisfiable.
	Range rate.Range
}

// ForRefreshRates creates a vote range spanning [min, max] Hz.
func ForRefreshRates(min, max float32) rate.Range {
	return rate.New(min, max)
}
