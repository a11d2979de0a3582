// Package director tracks vote snapshots and mode catalogs per managed
// display and re-arbitrates whenever either changes.
//
// The director serializes arbitration: every mutation takes the director
// lock, mutates the affected display's snapshot, and resolves it against
// the display's catalog in one critical section, so a resolution is
// always derived from one consistent snapshot and the latest mutation
// always wins. Change callbacks fire outside the lock, only when the
// resolved spec actually changed.
//
// Producers inject vote snapshots and catalogs directly; the director
// itself performs no discovery and programs no hardware. A
// hardware-timing collaborator registers OnDesiredSpecChanged and applies
// the chosen mode on its next safe frame boundary.
package director
