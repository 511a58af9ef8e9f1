package memtest

import "memcheck-core/partition"

// Task is the complete, strongly typed parameter record for one worker
// pass: which partition of Range to walk and from which seed. Identical
// logic runs on every worker; only the Task differs.
type Task struct {
	Workers int
	Worker  int
	Range   partition.Range
	Seed    uint32
}

// MirrorIndex is the complementary worker index whose written partition a
// worker verifies during the read phase. Reading a peer's words instead of
// one's own is what makes the test a cross-check: it proves the pattern
// survived another core's writes and the shared memory between them.
func MirrorIndex(worker, workers int) int { return workers - 1 - worker }

// writeTask derives worker i's write-phase parameters.
func writeTask(cfg Config, r partition.Range, worker int) Task {
	return Task{
		Workers: cfg.Workers,
		Worker:  worker,
		Range:   r,
		Seed:    cfg.BaseSeed + uint32(worker),
	}
}

// verifyTask derives worker i's read-phase parameters: the partition and
// seed its mirror index used for writing.
func verifyTask(cfg Config, r partition.Range, worker int) Task {
	m := MirrorIndex(worker, cfg.Workers)
	return Task{
		Workers: cfg.Workers,
		Worker:  m,
		Range:   r,
		Seed:    cfg.BaseSeed + uint32(m),
	}
}
