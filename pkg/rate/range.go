package rate

import "math"

// Tolerance is the fixed comparison tolerance, in Hz. Two rates closer
// than this are considered equal for intersection, containment and
// emptiness checks.
const Tolerance = 0.01

// Range is a closed interval of refresh rates in Hz.
//
// A Range with Min > Max (beyond Tolerance) is empty: it represents an
// unsatisfiable constraint and must never be used as a resolved result.
type Range struct {
	// Min is the lowest acceptable refresh rate.
	Min float32

	// Max is the highest acceptable refresh rate.
	Max float32
}

// New creates a Range spanning [min, max]. It does not validate the
// bounds; a min > max range is legal input and simply empty.
func New(min, max float32) Range {
	return Range{Min: min, Max: max}
}

// Unbounded returns the identity range (0, +Inf): no constraint at all.
func Unbounded() Range {
	return Range{Min: 0, Max: float32(math.Inf(1))}
}

// Intersect returns the componentwise intersection of r and other.
// The result may be empty; callers must check IsEmpty before using it
// as a resolved range.
func (r Range) Intersect(other Range) Range {
	return Range{
		Min: max32(r.Min, other.Min),
		Max: min32(r.Max, other.Max),
	}
}

// IsEmpty reports whether the range is unsatisfiable, i.e. Min exceeds
// Max by more than Tolerance.
func (r Range) IsEmpty() bool {
	return r.Min > r.Max+Tolerance
}

// Contains reports whether value lies inside the range, allowing
// Tolerance slack on both bounds.
func (r Range) Contains(value float32) bool {
	return value >= r.Min-Tolerance && value <= r.Max+Tolerance
}

// ApproxEqual reports whether both bounds of r and other agree within
// Tolerance.
func (r Range) ApproxEqual(other Range) bool {
	return approx(r.Min, other.Min) && approx(r.Max, other.Max)
}

func approx(a, b float32) bool {
	if math.IsInf(float64(a), 1) && math.IsInf(float64(b), 1) {
		return true
	}
	return abs32(a-b) <= Tolerance
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
