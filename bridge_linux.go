package timebridge

import (
	"os"

	golog "github.com/fclairamb/go-log"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/aegistudio/go-timebridge/filetime"
)

// Handle is an open file or directory exposing its native
// descriptor, such as *os.File.
type Handle interface {
	Fd() uintptr
}

// Bridge performs timestamp operations relative to a base
// directory handle.
//
// The bridge is never mutated after New or Open, it is safe
// to be used from multiple goroutines. Concurrent updates to
// the same entry are ordered by the host only. Close must not
// race with other calls, since it releases the base directory.
type Bridge struct {
	dir        Handle
	owned      *os.File
	logger     golog.Logger
	strictUTF8 bool
}

// New creates a bridge resolving paths relative to dir.
//
// The bridge does not take the ownership of dir. A nil dir
// is allowed when only handle operations are to be used.
func New(dir Handle, opts ...Option) *Bridge {
	option := newOption()
	Options(opts...)(option)
	return &Bridge{
		dir:        dir,
		logger:     option.logger,
		strictUTF8: option.strictUTF8,
	}
}

// Open opens the directory at path and creates a bridge on
// top of it, the directory is released by Close.
func Open(path string, opts ...Option) (*Bridge, error) {
	dir, err := os.OpenFile(path, os.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "open base directory")
	}
	bridge := New(dir, opts...)
	bridge.owned = dir
	return bridge, nil
}

// Close releases the base directory if it was opened by Open.
func (b *Bridge) Close() error {
	if b.owned == nil {
		return nil
	}
	return b.owned.Close()
}

// timespec selects what the host receives for one field.
func timespec(
	t Timestamp, fst, value, now Fstflags,
) (unix.Timespec, error) {
	switch {
	case fst&value != 0:
		native, err := t.Native()
		if err != nil {
			return unix.Timespec{}, err
		}
		return filetime.Timespec(native)
	case fst&now != 0:
		return filetime.Now(), nil
	default:
		return filetime.Omit(), nil
	}
}

// timespecs converts the pair, each timestamp with its own
// seconds and nanoseconds.
func timespecs(
	atime, mtime Timestamp, fst Fstflags,
) (*[2]unix.Timespec, error) {
	if !fst.valid() {
		return nil, errors.Wrapf(ErrInvalidFlags, "fstflags %#x", uint16(fst))
	}
	var times [2]unix.Timespec
	var err error
	if times[0], err = timespec(atime, fst, FstATIM, FstATIMNow); err != nil {
		return nil, errors.Wrap(err, "access time")
	}
	if times[1], err = timespec(mtime, fst, FstMTIM, FstMTIMNow); err != nil {
		return nil, errors.Wrap(err, "modification time")
	}
	return &times, nil
}

// SetPathTimes updates the timestamps selected by fst of the
// entry at path, which is resolved relative to the base
// directory. Fields not selected are left untouched.
func (b *Bridge) SetPathTimes(
	path string, atime, mtime Timestamp,
	lookup Lookupflags, fst Fstflags,
) error {
	if lookup&^LookupSymlinkFollow != 0 {
		return errors.Wrapf(ErrInvalidFlags, "lookupflags %#x", uint32(lookup))
	}
	times, err := timespecs(atime, mtime, fst)
	if err != nil {
		return err
	}
	pathPtr, err := checkPath(path, b.strictUTF8)
	if err != nil {
		return err
	}
	dirfd, err := checkFd(b.dir)
	if err != nil {
		return errors.Wrap(err, "base directory")
	}
	flags := 0
	if lookup&LookupSymlinkFollow == 0 {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}
	b.logger.Debug("Set path times",
		"path", path, "lookup", lookup.String(), "fst", fst.String())
	if err := utimensat(dirfd, pathPtr, times, flags); err != nil {
		b.logger.Warn("Set path times failed", "path", path, "err", err)
		return &IOError{Op: "utimensat", Path: path, Err: err}
	}
	return nil
}

// SetFileTimes sets both times, following symbolic links.
func (b *Bridge) SetFileTimes(path string, atime, mtime Timestamp) error {
	return b.SetPathTimes(path, atime, mtime,
		LookupSymlinkFollow, FstATIM|FstMTIM)
}

// SetSymlinkFileTimes sets both times of the symbolic link
// itself instead of its target.
func (b *Bridge) SetSymlinkFileTimes(path string, atime, mtime Timestamp) error {
	return b.SetPathTimes(path, atime, mtime, 0, FstATIM|FstMTIM)
}

// SetFileMtime sets only the modification time.
func (b *Bridge) SetFileMtime(path string, mtime Timestamp) error {
	return b.SetPathTimes(path, Timestamp{}, mtime,
		LookupSymlinkFollow, FstMTIM)
}

// SetFileAtime sets only the access time.
func (b *Bridge) SetFileAtime(path string, atime Timestamp) error {
	return b.SetPathTimes(path, atime, Timestamp{},
		LookupSymlinkFollow, FstATIM)
}

// SetHandleTimes updates the timestamps selected by fst of
// the entry referred by the open handle.
func (b *Bridge) SetHandleTimes(
	h Handle, atime, mtime Timestamp, fst Fstflags,
) error {
	times, err := timespecs(atime, mtime, fst)
	if err != nil {
		return err
	}
	fd, err := checkFd(h)
	if err != nil {
		return err
	}
	if fst == 0 {
		return nil
	}
	b.logger.Debug("Set handle times", "fd", fd, "fst", fst.String())
	if err := utimensat(fd, nil, times, 0); err != nil {
		b.logger.Warn("Set handle times failed", "fd", fd, "err", err)
		return &IOError{Op: "futimens", Err: err}
	}
	return nil
}

// SetFileHandleTimes updates the times of the entry referred
// by the open handle. Only non-nil timestamps are applied, so
// a pointer to the zero Timestamp sets the time to the epoch.
func (b *Bridge) SetFileHandleTimes(h Handle, atime, mtime *Timestamp) error {
	var fst Fstflags
	var at, mt Timestamp
	if atime != nil {
		fst |= FstATIM
		at = *atime
	}
	if mtime != nil {
		fst |= FstMTIM
		mt = *mtime
	}
	return b.SetHandleTimes(h, at, mt, fst)
}

// withWorkingDir runs fn with a bridge on a fresh reference
// to the working directory, released once fn returns.
func withWorkingDir(fn func(*Bridge) error) error {
	bridge, err := Open(".")
	if err != nil {
		return err
	}
	defer func() { _ = bridge.Close() }()
	return fn(bridge)
}

// SetPathTimes is Bridge.SetPathTimes relative to the
// working directory.
func SetPathTimes(
	path string, atime, mtime Timestamp,
	lookup Lookupflags, fst Fstflags,
) error {
	return withWorkingDir(func(b *Bridge) error {
		return b.SetPathTimes(path, atime, mtime, lookup, fst)
	})
}

// SetFileTimes is Bridge.SetFileTimes relative to the
// working directory.
func SetFileTimes(path string, atime, mtime Timestamp) error {
	return withWorkingDir(func(b *Bridge) error {
		return b.SetFileTimes(path, atime, mtime)
	})
}

// SetSymlinkFileTimes is Bridge.SetSymlinkFileTimes relative
// to the working directory.
func SetSymlinkFileTimes(path string, atime, mtime Timestamp) error {
	return withWorkingDir(func(b *Bridge) error {
		return b.SetSymlinkFileTimes(path, atime, mtime)
	})
}

// SetFileMtime is Bridge.SetFileMtime relative to the
// working directory.
func SetFileMtime(path string, mtime Timestamp) error {
	return withWorkingDir(func(b *Bridge) error {
		return b.SetFileMtime(path, mtime)
	})
}

// SetFileAtime is Bridge.SetFileAtime relative to the
// working directory.
func SetFileAtime(path string, atime Timestamp) error {
	return withWorkingDir(func(b *Bridge) error {
		return b.SetFileAtime(path, atime)
	})
}

// SetFileHandleTimes is Bridge.SetFileHandleTimes without a
// base directory.
func SetFileHandleTimes(h Handle, atime, mtime *Timestamp) error {
	return New(nil).SetFileHandleTimes(h, atime, mtime)
}
