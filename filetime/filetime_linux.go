package filetime

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// timespecField matches the width of unix.Timespec
// fields, which are 32 bits wide on some platforms.
type timespecField interface {
	~int32 | ~int64
}

// assign reports false when value does not survive the
// conversion into the field's width.
func assign[T timespecField](field *T, value int64) bool {
	*field = T(value)
	return int64(*field) == value
}

// Timespec converts the native timestamp into the
// structure consumed by utimensat.
//
// Seconds beyond 2038 are rejected on platforms whose
// timespec is 32 bits wide.
func Timespec(native uint64) (unix.Timespec, error) {
	sec, nsec := Split(native)
	var ts unix.Timespec
	if !assign(&ts.Sec, sec) {
		return unix.Timespec{}, errors.Wrapf(ErrOutOfRange,
			"seconds %d overflow timespec", sec)
	}
	assign(&ts.Nsec, int64(nsec))
	return ts, nil
}

// Omit is the timespec instructing the host to leave
// the corresponding field untouched.
func Omit() unix.Timespec {
	return unix.Timespec{Nsec: unix.UTIME_OMIT}
}

// Now is the timespec instructing the host to set the
// corresponding field to its current time.
func Now() unix.Timespec {
	return unix.Timespec{Nsec: unix.UTIME_NOW}
}
