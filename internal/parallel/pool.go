// Package parallel provides a bounded worker pool for the per-glyph
// stages of atlas generation (measurement, rasterization, field
// transforms). Glyph tasks are independent, so the pool distributes them
// across per-worker queues and lets idle workers steal from busy ones.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool executes independent tasks on a fixed set of goroutines.
//
// Each worker owns a queue and primarily pulls from it, stealing from
// other workers when its own queue runs dry. Stealing balances load when
// some glyphs are much more expensive than others (large CJK outlines vs
// punctuation).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds the per-worker task queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool accepts work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for tasks.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few buffered slots per worker hide submission latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for one worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(myQueue)
			return

		case task := <-myQueue:
			if task != nil {
				task()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// Nothing to steal, block on own queue.
				select {
				case <-p.done:
					p.drain(myQueue)
					return
				case task := <-myQueue:
					if task != nil {
						task()
					}
				}
			}
		}
	}
}

// drain executes all remaining tasks in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// steal attempts to take a task from another worker's queue.
// Returns nil if no work is available anywhere.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ForEach runs fn(i) for every i in [0, n) across the pool and waits for
// all calls to complete. This is the barrier primitive between pipeline
// stages: when ForEach returns, every glyph task of the stage is done.
// If the pool is closed, ForEach is a no-op.
func (p *WorkerPool) ForEach(n int, fn func(i int)) {
	if n <= 0 || fn == nil || !p.running.Load() {
		return
	}

	var barrier sync.WaitGroup
	barrier.Add(n)

	for i := 0; i < n; i++ {
		idx := i // Capture for closure
		task := func() {
			defer barrier.Done()
			fn(idx)
		}

		select {
		case p.queues[i%p.workers] <- task:
			// Queued.
		case <-p.done:
			// Pool is closing; run inline so the barrier still resolves.
			task()
		}
	}

	barrier.Wait()
}

// Close gracefully shuts down the pool. It stops accepting new work,
// finishes queued tasks, and stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
