package timebridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFstflagsValid(t *testing.T) {
	assert := assert.New(t)
	assert.True(Fstflags(0).valid())
	assert.True(FstATIM.valid())
	assert.True((FstATIM | FstMTIM).valid())
	assert.True((FstATIMNow | FstMTIM).valid())
	assert.True((FstATIM | FstMTIMNow).valid())
	assert.False((FstATIM | FstATIMNow).valid())
	assert.False((FstMTIM | FstMTIMNow).valid())
	assert.False(Fstflags(1 << 4).valid())
}

func TestFlagsString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0", Fstflags(0).String())
	assert.Equal("ATIM|MTIM", (FstATIM | FstMTIM).String())
	assert.Equal("ATIM_NOW|MTIM_NOW", (FstATIMNow | FstMTIMNow).String())
	assert.Equal("SYMLINK_FOLLOW", LookupSymlinkFollow.String())
	assert.Equal("0", Lookupflags(0).String())
}
