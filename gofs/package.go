// Package gofs provides os style helpers on top of a
// timebridge.Bridge, exchanging timestamps as time.Time.
//
// Like os.Chtimes, a zero time.Time leaves the corresponding
// timestamp unchanged, while time.Unix(0, 0) really sets it
// to the epoch. Times before the epoch are rejected instead
// of being wrapped around.
package gofs
