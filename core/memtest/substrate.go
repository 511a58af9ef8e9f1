package memtest

import "sync"

// Barrier is a full rendezvous: Wait blocks until every party has arrived,
// then releases them all. Barriers are reusable across phases.
type Barrier interface {
	Wait()
}

// Substrate supplies the parallel execution primitives the test runs on:
// a fork that runs an entry on n concurrent workers, a reusable barrier,
// and a lock bounding the aggregation critical section. Fork entries must
// actually run concurrently — the barrier rendezvous deadlocks otherwise.
type Substrate interface {
	Fork(n int, entry func(worker int))
	NewBarrier(parties int) Barrier
	NewLock() sync.Locker
}

// Goroutines is the default substrate: one goroutine per worker joined by
// a WaitGroup, a Mutex+Cond cyclic barrier, and a plain Mutex.
type Goroutines struct{}

func (Goroutines) Fork(n int, entry func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func(worker int) {
			defer wg.Done()
			entry(worker)
		}(w)
	}
	wg.Wait()
}

func (Goroutines) NewBarrier(parties int) Barrier {
	b := &cyclicBarrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (Goroutines) NewLock() sync.Locker { return &sync.Mutex{} }

// cyclicBarrier releases all parties together and resets for the next
// cycle. The generation counter distinguishes consecutive cycles so a fast
// worker re-entering Wait cannot slip through the previous release.
type cyclicBarrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
}

func (b *cyclicBarrier) Wait() {
	b.mu.Lock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
