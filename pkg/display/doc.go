// Package display describes the discrete operating points of a managed
// display: its supported mode catalog and designated default mode.
//
// Catalogs are supplied by an external mode-discovery collaborator and
// are read-only here; arbitration consumes them as immutable snapshots.
package display
