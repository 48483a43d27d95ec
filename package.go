// Package timebridge reads and writes the access, modification
// and creation times of filesystem entries on linux.
//
// Timestamps are exchanged as portable (seconds, nanoseconds)
// pairs anchored to the unix epoch, and converted into the
// host's unsigned nanosecond encoding right before the host
// call. Each operation performs exactly one utimensat or statx
// call, resolving paths relative to an explicit directory
// descriptor instead of the process working directory.
//
// Path based operations select which of the timestamps are
// updated and whether symbolic links are followed through
// the Fstflags and Lookupflags bitmasks, mirroring the flags
// of the capability based host interface.
package timebridge
