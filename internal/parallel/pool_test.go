package parallel

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ForEach(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var sum atomic.Int64
	p.ForEach(100, func(i int) {
		sum.Add(int64(i))
	})

	want := int64(100 * 99 / 2)
	if got := sum.Load(); got != want {
		t.Errorf("ForEach sum = %d, want %d", got, want)
	}
}

func TestWorkerPool_ForEachIsBarrier(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()

	results := make([]int, 50)
	p.ForEach(len(results), func(i int) {
		results[i] = i + 1
	})

	// Every slot must be written before ForEach returns.
	for i, v := range results {
		if v != i+1 {
			t.Fatalf("slot %d not written before barrier (got %d)", i, v)
		}
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()

	if p.Workers() <= 0 {
		t.Errorf("expected positive worker count, got %d", p.Workers())
	}
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close() // Must not panic.

	if p.IsRunning() {
		t.Error("pool reports running after Close")
	}
}

func TestWorkerPool_ForEachAfterClose(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()

	var count atomic.Int32
	p.ForEach(10, func(i int) {
		count.Add(1)
	})

	if count.Load() != 0 {
		t.Errorf("closed pool executed %d tasks, want 0", count.Load())
	}
}

func TestWorkerPool_SingleWorker(t *testing.T) {
	p := NewWorkerPool(1)
	defer p.Close()

	var sum atomic.Int64
	p.ForEach(20, func(i int) {
		sum.Add(1)
	})
	if sum.Load() != 20 {
		t.Errorf("single worker ran %d tasks, want 20", sum.Load())
	}
}
