package gofs

import (
	"time"

	"github.com/pkg/errors"

	"github.com/aegistudio/go-timebridge"
)

// Times is the time related subset of a file's metadata.
type Times struct {
	Atime time.Time
	Mtime time.Time

	// Btime is nil when the filesystem does not record the
	// creation time.
	Btime *time.Time
}

// FS exposes the bridge in terms of time.Time.
type FS struct {
	bridge *timebridge.Bridge
}

// New creates the helper over an existing bridge, the
// bridge stays owned by the caller.
func New(bridge *timebridge.Bridge) *FS {
	return &FS{bridge: bridge}
}

// optional converts a time.Time where the zero value means
// absent.
func optional(name string, t time.Time) (*timebridge.Timestamp, error) {
	if t.IsZero() {
		return nil, nil
	}
	ts, err := timebridge.FromTime(t)
	if err != nil {
		return nil, errors.Wrapf(err, "%s time", name)
	}
	return &ts, nil
}

func (fs *FS) chtimes(
	name string, atime, mtime time.Time,
	lookup timebridge.Lookupflags,
) error {
	at, err := optional("access", atime)
	if err != nil {
		return err
	}
	mt, err := optional("modification", mtime)
	if err != nil {
		return err
	}
	var fst timebridge.Fstflags
	var a, m timebridge.Timestamp
	if at != nil {
		fst |= timebridge.FstATIM
		a = *at
	}
	if mt != nil {
		fst |= timebridge.FstMTIM
		m = *mt
	}
	if fst == 0 {
		return nil
	}
	return fs.bridge.SetPathTimes(name, a, m, lookup, fst)
}

// Chtimes changes the access and modification times of the
// named file, following symbolic links.
func (fs *FS) Chtimes(name string, atime, mtime time.Time) error {
	return fs.chtimes(name, atime, mtime, timebridge.LookupSymlinkFollow)
}

// Lchtimes is Chtimes on the symbolic link itself.
func (fs *FS) Lchtimes(name string, atime, mtime time.Time) error {
	return fs.chtimes(name, atime, mtime, 0)
}

// Touch sets both times of the named file to the host's
// current time.
func (fs *FS) Touch(name string) error {
	return fs.bridge.SetPathTimes(name,
		timebridge.Timestamp{}, timebridge.Timestamp{},
		timebridge.LookupSymlinkFollow,
		timebridge.FstATIMNow|timebridge.FstMTIMNow)
}

// Fchtimes changes the times of the open file.
func (fs *FS) Fchtimes(h timebridge.Handle, atime, mtime time.Time) error {
	at, err := optional("access", atime)
	if err != nil {
		return err
	}
	mt, err := optional("modification", mtime)
	if err != nil {
		return err
	}
	return fs.bridge.SetFileHandleTimes(h, at, mt)
}

func timesFromMetadata(meta timebridge.Metadata) (Times, error) {
	atime, err := timebridge.AccessTime(meta)
	if err != nil {
		return Times{}, err
	}
	mtime, err := timebridge.ModificationTime(meta)
	if err != nil {
		return Times{}, err
	}
	btime, err := timebridge.CreationTime(meta)
	if err != nil {
		return Times{}, err
	}
	result := Times{Atime: atime.Time(), Mtime: mtime.Time()}
	if btime != nil {
		t := btime.Time()
		result.Btime = &t
	}
	return result, nil
}

// Times returns the times of the named file, following
// symbolic links.
func (fs *FS) Times(name string) (Times, error) {
	meta, err := fs.bridge.Stat(name, timebridge.LookupSymlinkFollow)
	if err != nil {
		return Times{}, err
	}
	return timesFromMetadata(meta)
}

// Ltimes is Times on the symbolic link itself.
func (fs *FS) Ltimes(name string) (Times, error) {
	meta, err := fs.bridge.Stat(name, 0)
	if err != nil {
		return Times{}, err
	}
	return timesFromMetadata(meta)
}

// Ftimes returns the times of the open file.
func (fs *FS) Ftimes(h timebridge.Handle) (Times, error) {
	meta, err := fs.bridge.StatHandle(h)
	if err != nil {
		return Times{}, err
	}
	return timesFromMetadata(meta)
}
