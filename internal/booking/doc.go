// Package booking holds the booking screen's state and the pure updates
// applied to it.
//
// Allowed here:
// - form fields, recent searches, tab and modal flags
// - value-returning update methods (no I/O, no errors)
//
// Not allowed here:
// - rendering, key handling, station lookups
package booking
