package timebridge

import (
	"strings"
)

// Lookupflags controls how a path is resolved.
type Lookupflags uint32

const (
	// LookupSymlinkFollow resolves a trailing symbolic link
	// to its target, otherwise the link itself is used.
	LookupSymlinkFollow Lookupflags = 1 << iota
)

// Fstflags selects which timestamps are updated.
type Fstflags uint16

const (
	// FstATIM sets the access time to the given timestamp.
	FstATIM Fstflags = 1 << iota

	// FstATIMNow sets the access time to the current time.
	FstATIMNow

	// FstMTIM sets the modification time to the given timestamp.
	FstMTIM

	// FstMTIMNow sets the modification time to the current time.
	FstMTIMNow
)

const fstMask = FstATIM | FstATIMNow | FstMTIM | FstMTIMNow

// valid reports whether the combination is acceptable, a
// field must not be set to both a value and the current time.
func (f Fstflags) valid() bool {
	if f&^fstMask != 0 {
		return false
	}
	if f&FstATIM != 0 && f&FstATIMNow != 0 {
		return false
	}
	return f&FstMTIM == 0 || f&FstMTIMNow == 0
}

func (f Fstflags) String() string {
	var names []string
	for _, flag := range []struct {
		bit  Fstflags
		name string
	}{
		{FstATIM, "ATIM"},
		{FstATIMNow, "ATIM_NOW"},
		{FstMTIM, "MTIM"},
		{FstMTIMNow, "MTIM_NOW"},
	} {
		if f&flag.bit != 0 {
			names = append(names, flag.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

func (l Lookupflags) String() string {
	if l&LookupSymlinkFollow != 0 {
		return "SYMLINK_FOLLOW"
	}
	return "0"
}
