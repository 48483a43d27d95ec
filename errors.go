package timebridge

import (
	"github.com/pkg/errors"

	"github.com/aegistudio/go-timebridge/filetime"
)

var (
	// ErrUnavailable is reported by a Metadata when the host
	// does not track the requested field.
	ErrUnavailable = errors.New("time field unavailable")

	// ErrBeforeEpoch is reported when a host time precedes
	// the unix epoch.
	ErrBeforeEpoch = errors.New("time before unix epoch")

	// ErrOutOfRange is reported when a timestamp does not fit
	// the native encoding.
	ErrOutOfRange = filetime.ErrOutOfRange

	// ErrInvalidPath is reported for paths which cannot be
	// passed to the host.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidHandle is reported for closed or otherwise
	// unusable file handles.
	ErrInvalidHandle = errors.New("invalid file handle")

	// ErrInvalidFlags is reported for unknown or conflicting
	// Fstflags.
	ErrInvalidFlags = errors.New("invalid timestamp flags")
)

// ClockError is returned when a host reported time cannot be
// expressed as a duration since the unix epoch.
type ClockError struct {
	Field string
	Err   error
}

func (e *ClockError) Error() string {
	return e.Field + " time: " + e.Err.Error()
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// IOError is returned when the host rejects an operation.
//
// The message carries the host diagnostic, while Err keeps
// the underlying errno for callers willing to inspect it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
