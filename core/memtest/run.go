package memtest

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"memcheck-core/lfsr"
	"memcheck-core/partition"
)

// Config carries every knob of a test invocation explicitly; there are no
// embedded constants.
type Config struct {
	// BaseSeed seeds worker i with BaseSeed+i.
	BaseSeed uint32

	// Workers is the fixed fork width; must be >= 1.
	Workers int

	// Iterations repeats the write/verify protocol. 0 means run until ctx
	// is cancelled; that mode has no other exit path.
	Iterations int

	// Gen generates the pattern; nil selects the table-driven engine for
	// the default polynomial.
	Gen lfsr.Generator

	// Substrate supplies fork/barrier/lock; nil selects Goroutines.
	Substrate Substrate

	// AfterWrite, when set, runs on a single worker once per iteration
	// after every write is visible and before any read begins. It exists
	// for self-tests and fault-injection drills.
	AfterWrite func(iteration int)
}

// Run executes the exercise and returns the total bit distance between
// expected and observed words across all workers and iterations; zero means
// every word matched. The scan is exhaustive by design: a mismatch never
// terminates it early, and the count is the only failure signal.
//
// In run-forever mode the returned error is ctx.Err(); finite runs always
// complete regardless of ctx and return a nil error. Errors other than
// cancellation can only arise from validation, before any worker forks.
func Run(ctx context.Context, reg *Region, cfg Config) (uint64, error) {
	if reg == nil || reg.Words() == 0 {
		return 0, errors.New("memtest: nil or empty region")
	}
	if cfg.Workers < 1 {
		return 0, errors.New("memtest: worker count must be >= 1")
	}
	if cfg.Iterations < 0 {
		return 0, errors.New("memtest: iteration count must be >= 0")
	}
	r := reg.Range()
	if !partition.Divides(cfg.Workers, r) {
		return 0, fmt.Errorf("memtest: region of %d words does not divide across %d workers; trim the region or adjust the worker count",
			reg.Words(), cfg.Workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	gen := cfg.Gen
	if gen == nil {
		gen = lfsr.NewByteTable(nil)
	}
	sub := cfg.Substrate
	if sub == nil {
		sub = Goroutines{}
	}

	var (
		global  uint64
		lock    = sub.NewLock()
		barrier = sub.NewBarrier(cfg.Workers)
		stop    bool // run-forever exit decision, worker 0 only; published through the barrier
	)

	sub.Fork(cfg.Workers, func(worker int) {
		for iter := 0; cfg.Iterations == 0 || iter < cfg.Iterations; iter++ {
			// Write phase: own partition, own seed, one word per address.
			wt := writeTask(cfg, r, worker)
			state := wt.Seed
			it := partition.ForWorker(wt.Worker, wt.Workers, wt.Range)
			for addr, ok := it.Next(); ok; addr, ok = it.Next() {
				state = gen.NextWord(state)
				reg.Store(addr, state)
			}

			// Barrier 1: no read may observe a write still in flight.
			barrier.Wait()

			if cfg.AfterWrite != nil {
				if worker == 0 {
					cfg.AfterWrite(iter)
				}
				barrier.Wait()
			}

			// Read phase: regenerate the mirror's stream from a fresh
			// state and count differing bits.
			vt := verifyTask(cfg, r, worker)
			state = vt.Seed
			it = partition.ForWorker(vt.Worker, vt.Workers, vt.Range)
			var local uint64
			for addr, ok := it.Next(); ok; addr, ok = it.Next() {
				state = gen.NextWord(state)
				local += uint64(bits.OnesCount32(state ^ reg.Load(addr)))
			}

			// Barrier 2: every local counter is final before aggregation,
			// and every read is done before the next write phase.
			barrier.Wait()

			lock.Lock()
			global += local
			lock.Unlock()

			if cfg.Iterations == 0 {
				// One worker samples ctx; the rendezvous makes every
				// worker act on the same decision, so nobody is left
				// stranded at a barrier.
				if worker == 0 && ctx.Err() != nil {
					stop = true
				}
				barrier.Wait()
				if stop {
					return
				}
			}
		}
	})

	if cfg.Iterations == 0 {
		return global, ctx.Err()
	}
	return global, nil
}
