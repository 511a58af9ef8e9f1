// Package runutil holds small run-shape helpers shared by the app layer.
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveWorkers resolves the --workers flag: 0 means one worker per CPU.
func EffectiveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// AlignWords trims a requested word count down to the nearest multiple of
// the worker count, returning the aligned count and any warnings. The core
// rejects non-divisible windows outright; the CLI degrades gracefully and
// says so, the same way chunking validation degrades with a warning.
func AlignWords(words, workers int) (int, []string) {
	if workers < 1 {
		workers = 1
	}
	rem := words % workers
	if rem == 0 {
		return words, nil
	}
	aligned := words - rem
	return aligned, []string{fmt.Sprintf(
		"warning: trimming window to %d words so it divides across %d workers (%d words excluded)",
		aligned, workers, rem)}
}
