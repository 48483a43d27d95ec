// Package filetime provides support for converting a
// portable (seconds, nanoseconds) timestamp into the
// host's native file timestamp and back.
//
// The native timestamp must fit in with a uint64 number
// of nanoseconds since the unix epoch, so that we can
// pass a single integer instead of a concrete structure
// until the very last moment of the host call.
package filetime
