package timebridge

import (
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// checkPath validates the path and converts it into the
// NUL terminated form expected by the host.
func checkPath(path string, strictUTF8 bool) (*byte, error) {
	if path == "" {
		return nil, errors.Wrap(ErrInvalidPath, "empty path")
	}
	if strictUTF8 && !utf8.ValidString(path) {
		return nil, errors.Wrapf(ErrInvalidPath,
			"path %q is not valid utf-8", path)
	}
	ptr, err := unix.BytePtrFromString(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPath,
			"path %q contains NUL", path)
	}
	return ptr, nil
}

// checkFd converts the descriptor of a handle, rejecting
// missing handles and the all ones value reported by a
// closed *os.File.
func checkFd(h Handle) (int, error) {
	if h == nil {
		return -1, errors.Wrap(ErrInvalidHandle, "nil handle")
	}
	fd := h.Fd()
	if fd > math.MaxInt32 {
		return -1, errors.Wrapf(ErrInvalidHandle,
			"descriptor %d", int64(fd))
	}
	return int(fd), nil
}

// utimensat is the only place crossing into the host for
// updates. A nil path updates the entry referred by dirfd
// itself, which is not expressible with unix.UtimesNanoAt.
//
// The caller must have obtained path from checkPath and
// dirfd from checkFd.
func utimensat(
	dirfd int, path *byte, times *[2]unix.Timespec, flags int,
) error {
	_, _, errno := unix.Syscall6(
		unix.SYS_UTIMENSAT, uintptr(dirfd),
		uintptr(unsafe.Pointer(path)),
		uintptr(unsafe.Pointer(times)),
		uintptr(flags), 0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}
