// Package log provides structured arbitration-event capture.
//
// This package defines the Logger interface and Event types for recording
// what the director and arbiter decided and why: vote mutations, catalog
// updates, and resolution outcomes. It is separate from operational
// logging (slog) — event capture produces a complete machine-readable
// trace suitable for replaying and debugging timing decisions.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	dir := director.New(director.WithEventLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/vrr/arbitration.vlog")
//
//	// Both: use MultiLogger
//	log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Log files use CBOR encoding with .vlog extension. The vrr-log CLI tool
// provides viewing and summarizing capabilities.
package log
