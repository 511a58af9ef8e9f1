package memlock

import (
	"runtime"
	"testing"
)

func TestLockUnlockSmallBuffer(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("page locking is linux-only")
	}
	buf := make([]byte, 4096)
	if err := Lock(buf); err != nil {
		// RLIMIT_MEMLOCK is often tiny for unprivileged users.
		t.Skipf("mlock unavailable here: %v", err)
	}
	if err := Unlock(buf); err != nil {
		t.Fatalf("munlock: %v", err)
	}
}

func TestAvailableShape(t *testing.T) {
	free, ok := Available()
	if runtime.GOOS != "linux" {
		if ok {
			t.Fatal("non-linux Available must report not-ok")
		}
		return
	}
	if ok && free == 0 {
		t.Fatal("linux Available reported ok with zero free memory")
	}
}
