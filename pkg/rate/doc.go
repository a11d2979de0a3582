// Package rate provides the closed refresh-rate interval type used
// throughout vote arbitration.
//
// Ranges are compared with a fixed tolerance (Tolerance) so that repeated
// intersections of values produced independently by different policy
// sources do not reject near-equal bounds over floating-point drift.
package rate
