package timebridge

import (
	"os"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type fileInfoMetadata struct {
	info os.FileInfo
}

// FileInfoMetadata adapts the result of os.Stat or os.Lstat.
//
// The stat structure carries no creation time on linux, so
// Created always reports ErrUnavailable.
func FileInfoMetadata(info os.FileInfo) Metadata {
	return fileInfoMetadata{info: info}
}

func (m fileInfoMetadata) Modified() (time.Time, error) {
	return m.info.ModTime(), nil
}

func (m fileInfoMetadata) Accessed() (time.Time, error) {
	stat, ok := m.info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, errors.Wrap(ErrUnavailable, "no stat data")
	}
	return time.Unix(stat.Atim.Unix()), nil
}

func (m fileInfoMetadata) Created() (time.Time, error) {
	return time.Time{}, errors.Wrap(ErrUnavailable, "stat has no birth time")
}

const statxMask = unix.STATX_ATIME | unix.STATX_MTIME | unix.STATX_BTIME

type statxMetadata struct {
	stx unix.Statx_t
}

func statxTime(
	stx *unix.Statx_t, mask int, ts unix.StatxTimestamp,
) (time.Time, error) {
	if stx.Mask&uint32(mask) == 0 {
		return time.Time{}, errors.Wrap(ErrUnavailable, "not reported by statx")
	}
	return time.Unix(ts.Sec, int64(ts.Nsec)), nil
}

func (m *statxMetadata) Modified() (time.Time, error) {
	return statxTime(&m.stx, unix.STATX_MTIME, m.stx.Mtime)
}

func (m *statxMetadata) Accessed() (time.Time, error) {
	return statxTime(&m.stx, unix.STATX_ATIME, m.stx.Atime)
}

func (m *statxMetadata) Created() (time.Time, error) {
	return statxTime(&m.stx, unix.STATX_BTIME, m.stx.Btime)
}

// Stat queries the metadata of the entry at path relative to
// the base directory. The creation time is available when
// the host filesystem records it.
func (b *Bridge) Stat(path string, lookup Lookupflags) (Metadata, error) {
	if lookup&^LookupSymlinkFollow != 0 {
		return nil, errors.Wrapf(ErrInvalidFlags, "lookupflags %#x", uint32(lookup))
	}
	if _, err := checkPath(path, b.strictUTF8); err != nil {
		return nil, err
	}
	dirfd, err := checkFd(b.dir)
	if err != nil {
		return nil, errors.Wrap(err, "base directory")
	}
	flags := unix.AT_STATX_SYNC_AS_STAT
	if lookup&LookupSymlinkFollow == 0 {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}
	result := &statxMetadata{}
	b.logger.Debug("Stat path", "path", path, "lookup", lookup.String())
	if err := unix.Statx(dirfd, path, flags, statxMask, &result.stx); err != nil {
		b.logger.Warn("Stat path failed", "path", path, "err", err)
		return nil, &IOError{Op: "statx", Path: path, Err: err}
	}
	return result, nil
}

// StatHandle queries the metadata of the entry referred by
// the open handle.
func (b *Bridge) StatHandle(h Handle) (Metadata, error) {
	fd, err := checkFd(h)
	if err != nil {
		return nil, err
	}
	result := &statxMetadata{}
	b.logger.Debug("Stat handle", "fd", fd)
	if err := unix.Statx(fd, "", unix.AT_EMPTY_PATH,
		statxMask, &result.stx); err != nil {
		b.logger.Warn("Stat handle failed", "fd", fd, "err", err)
		return nil, &IOError{Op: "statx", Err: err}
	}
	return result, nil
}

// Stat is Bridge.Stat relative to the working directory.
func Stat(path string, lookup Lookupflags) (Metadata, error) {
	var result Metadata
	err := withWorkingDir(func(b *Bridge) error {
		var err error
		result, err = b.Stat(path, lookup)
		return err
	})
	return result, err
}
