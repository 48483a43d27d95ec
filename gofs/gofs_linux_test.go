package gofs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegistudio/go-timebridge"
	"github.com/aegistudio/go-timebridge/gofs"
)

var (
	fakeAtime = time.Date(2020, 1, 1, 0, 0, 0, 100, time.UTC)
	fakeMtime = time.Date(2021, 6, 1, 12, 0, 0, 200, time.UTC)
)

func newTestFS(t *testing.T) (*gofs.FS, string) {
	dir := t.TempDir()
	bridge, err := timebridge.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bridge.Close() })
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0o644))
	return gofs.New(bridge), dir
}

func TestChtimes(t *testing.T) {
	assert := assert.New(t)
	fs, _ := newTestFS(t)

	require.NoError(t, fs.Chtimes("file", fakeAtime, fakeMtime))
	times, err := fs.Times("file")
	require.NoError(t, err)
	assert.True(times.Atime.Equal(fakeAtime))
	assert.True(times.Mtime.Equal(fakeMtime))
}

func TestChtimesZeroLeavesUnchanged(t *testing.T) {
	assert := assert.New(t)
	fs, _ := newTestFS(t)
	require.NoError(t, fs.Chtimes("file", fakeAtime, fakeMtime))

	newMtime := fakeMtime.Add(time.Hour)
	require.NoError(t, fs.Chtimes("file", time.Time{}, newMtime))
	times, err := fs.Times("file")
	require.NoError(t, err)
	assert.True(times.Atime.Equal(fakeAtime))
	assert.True(times.Mtime.Equal(newMtime))

	require.NoError(t, fs.Chtimes("file", time.Time{}, time.Time{}))

	// The epoch is honored rather than skipped.
	require.NoError(t, fs.Chtimes("file", time.Unix(0, 0), time.Time{}))
	times, err = fs.Times("file")
	require.NoError(t, err)
	assert.True(times.Atime.Equal(time.Unix(0, 0)))
	assert.True(times.Mtime.Equal(newMtime))
}

func TestChtimesBeforeEpoch(t *testing.T) {
	fs, _ := newTestFS(t)
	err := fs.Chtimes("file", time.Unix(-1, 0), fakeMtime)
	assert.True(t, errors.Is(err, timebridge.ErrBeforeEpoch))
}

func TestLchtimes(t *testing.T) {
	assert := assert.New(t)
	fs, dir := newTestFS(t)
	require.NoError(t, os.Symlink("file", filepath.Join(dir, "link")))
	require.NoError(t, fs.Chtimes("file", fakeAtime, fakeMtime))

	linkMtime := fakeMtime.Add(-time.Hour)
	require.NoError(t, fs.Lchtimes("link", fakeAtime, linkMtime))
	times, err := fs.Ltimes("link")
	require.NoError(t, err)
	assert.True(times.Mtime.Equal(linkMtime))

	times, err = fs.Times("link")
	require.NoError(t, err)
	assert.True(times.Mtime.Equal(fakeMtime))
}

func TestTouch(t *testing.T) {
	assert := assert.New(t)
	fs, _ := newTestFS(t)
	require.NoError(t, fs.Chtimes("file", fakeAtime, fakeMtime))

	before := time.Now().Add(-time.Minute)
	require.NoError(t, fs.Touch("file"))
	times, err := fs.Times("file")
	require.NoError(t, err)
	assert.True(times.Atime.After(before))
	assert.True(times.Mtime.After(before))
}

func TestFchtimes(t *testing.T) {
	assert := assert.New(t)
	fs, dir := newTestFS(t)
	require.NoError(t, fs.Chtimes("file", fakeAtime, fakeMtime))

	f, err := os.OpenFile(filepath.Join(dir, "file"), os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	newAtime := fakeAtime.Add(time.Minute)
	require.NoError(t, fs.Fchtimes(f, newAtime, time.Time{}))
	times, err := fs.Ftimes(f)
	require.NoError(t, err)
	assert.True(times.Atime.Equal(newAtime))
	assert.True(times.Mtime.Equal(fakeMtime))
	if times.Btime != nil {
		assert.False(times.Btime.Equal(time.Unix(0, 0)))
	}
}
