// Package arbiter collapses a display's vote snapshot into a single
// desired operating target.
//
// Resolution is a pure function of its inputs: it visits priority tiers
// from highest to lowest, narrowing an achievable refresh-rate interval
// with every compatible vote and discarding votes that conflict with
// decisions already made by strictly higher tiers. The winning interval
// then selects the lowest-rate catalog mode it contains, falling back to
// the catalog's default mode when none qualifies. The arbiter keeps no
// state between calls and never fails: every input degrades to a valid
// DesiredSpec.
package arbiter
