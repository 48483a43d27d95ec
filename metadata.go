package timebridge

import (
	"time"

	"github.com/pkg/errors"
)

// Metadata is the time related view of a filesystem entry's
// metadata. Fields the host does not track are reported by
// returning an error wrapping ErrUnavailable.
type Metadata interface {
	Modified() (time.Time, error)
	Accessed() (time.Time, error)
	Created() (time.Time, error)
}

func fromMetadata(field string, t time.Time, err error) (Timestamp, error) {
	if err != nil {
		return Timestamp{}, &ClockError{Field: field, Err: err}
	}
	result, err := FromTime(t)
	if err != nil {
		return Timestamp{}, &ClockError{Field: field, Err: err}
	}
	return result, nil
}

// ModificationTime returns the last modification time.
func ModificationTime(m Metadata) (Timestamp, error) {
	t, err := m.Modified()
	return fromMetadata("modification", t, err)
}

// AccessTime returns the last access time.
func AccessTime(m Metadata) (Timestamp, error) {
	t, err := m.Accessed()
	return fromMetadata("access", t, err)
}

// CreationTime returns the creation time, or nil when the
// host does not track it. A nil result means unknown, never
// the epoch.
func CreationTime(m Metadata) (*Timestamp, error) {
	t, err := m.Created()
	if errors.Is(err, ErrUnavailable) {
		return nil, nil
	}
	result, err := fromMetadata("creation", t, err)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
