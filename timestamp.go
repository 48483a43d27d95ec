package timebridge

import (
	"time"

	"github.com/pkg/errors"

	"github.com/aegistudio/go-timebridge/filetime"
)

// Timestamp is a point in time anchored to the unix epoch,
// with Nanos always less than a second.
//
// The zero Timestamp is the epoch itself. Absence of a
// timestamp is expressed with a nil *Timestamp instead.
type Timestamp struct {
	Seconds int64
	Nanos   uint32
}

// FromNative decodes the host's nanoseconds since epoch.
func FromNative(native uint64) Timestamp {
	seconds, nanos := filetime.Split(native)
	return Timestamp{Seconds: seconds, Nanos: nanos}
}

// FromDuration converts a duration since the epoch.
func FromDuration(d time.Duration) (Timestamp, error) {
	if d < 0 {
		return Timestamp{}, errors.Wrapf(
			ErrBeforeEpoch, "duration %v", d)
	}
	return Timestamp{
		Seconds: int64(d / time.Second),
		Nanos:   uint32(d % time.Second),
	}, nil
}

// FromTime converts a wall clock time.
//
// time.Duration cannot hold more than 292 years, so the
// seconds are taken from the time directly.
func FromTime(t time.Time) (Timestamp, error) {
	seconds := t.Unix()
	if seconds < 0 {
		return Timestamp{}, errors.Wrapf(
			ErrBeforeEpoch, "time %v", t)
	}
	return Timestamp{
		Seconds: seconds,
		Nanos:   uint32(t.Nanosecond()),
	}, nil
}

// Native encodes the timestamp for the host.
func (t Timestamp) Native() (uint64, error) {
	return filetime.Native(t.Seconds, t.Nanos)
}

// Time returns the timestamp as a local time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos))
}

// IsZero reports whether t is the epoch.
func (t Timestamp) IsZero() bool {
	return t.Seconds == 0 && t.Nanos == 0
}

// Before reports whether t is earlier than u.
func (t Timestamp) Before(u Timestamp) bool {
	if t.Seconds != u.Seconds {
		return t.Seconds < u.Seconds
	}
	return t.Nanos < u.Nanos
}

// Equal reports whether t and u denote the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return t == u
}

// Ptr returns a pointer to a copy of t, handy for the
// optional arguments of SetFileHandleTimes.
func (t Timestamp) Ptr() *Timestamp {
	return &t
}
