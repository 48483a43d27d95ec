package filetime

import (
	"math"

	"github.com/pkg/errors"
)

// NanosPerSecond is the scale between the seconds part
// and the native nanosecond encoding.
const NanosPerSecond = 1000000000

// ErrOutOfRange is returned when a timestamp cannot be
// represented as unsigned nanoseconds since epoch.
var ErrOutOfRange = errors.New("timestamp out of native range")

// Native combines the seconds and the nanoseconds into the
// native encoding.
//
// Pre-epoch seconds, nanoseconds not less than a second and
// values beyond year 2554 are rejected rather than wrapped.
func Native(seconds int64, nanos uint32) (uint64, error) {
	if seconds < 0 {
		return 0, errors.Wrapf(ErrOutOfRange,
			"negative seconds %d", seconds)
	}
	if nanos >= NanosPerSecond {
		return 0, errors.Wrapf(ErrOutOfRange,
			"nanoseconds %d exceed a second", nanos)
	}
	limit := (math.MaxUint64 - uint64(nanos)) / NanosPerSecond
	if uint64(seconds) > limit {
		return 0, errors.Wrapf(ErrOutOfRange,
			"seconds %d overflow", seconds)
	}
	return uint64(seconds)*NanosPerSecond + uint64(nanos), nil
}

// Split is the inverse of Native.
func Split(native uint64) (int64, uint32) {
	return int64(native / NanosPerSecond),
		uint32(native % NanosPerSecond)
}
