//go:build linux

package memlock

import "golang.org/x/sys/unix"

// Lock pins the buffer's pages into RAM so paging cannot mask (or mimic)
// memory faults during the scan.
func Lock(b []byte) error { return unix.Mlock(b) }

// Unlock releases pages pinned by Lock.
func Unlock(b []byte) error { return unix.Munlock(b) }

// Available returns the free physical memory in bytes, when the platform
// can report it.
func Available() (uint64, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}
	return uint64(info.Freeram) * uint64(info.Unit), true
}
