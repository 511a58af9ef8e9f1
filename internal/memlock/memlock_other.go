//go:build !linux

package memlock

import "errors"

// ErrUnsupported is returned where page locking is not wired up.
var ErrUnsupported = errors.New("memlock: not supported on this platform")

func Lock([]byte) error   { return ErrUnsupported }
func Unlock([]byte) error { return ErrUnsupported }

func Available() (uint64, bool) { return 0, false }
