package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// rowRange is a half-open range of interior rows assigned to one worker.
type rowRange struct{ start, end int }

// cpuWaveSolver runs the accelerated path on persistent worker goroutines.
// Every iteration each worker applies the stencil to its own row block; the
// condition-variable barrier guarantees that all writes of iteration k are
// visible before any read of iteration k+1. Within an iteration the workers
// never touch each other's output cells, so no other synchronization exists.
type cpuWaveSolver struct {
	workers int

	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int
	ranges  []rowRange
	next    []float32
	prev    []float32
	vel     []float32
	cols    int
	coeff   float32
	started bool
	closed  bool
}

// newCPUWaveSolver constructs the goroutine-pool backend. Workers are
// launched lazily on the first Step call.
func newCPUWaveSolver(workers int) *cpuWaveSolver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	s := &cpuWaveSolver{workers: workers}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// partitionRows splits the half-open row range [start, end) into contiguous
// blocks, one per worker. Trailing workers receive empty ranges when there
// are fewer rows than workers.
func partitionRows(start, end, workers int) []rowRange {
	ranges := make([]rowRange, workers)
	total := end - start
	if total < 0 {
		total = 0
	}
	per := (total + workers - 1) / workers
	for i := range ranges {
		r0 := start + i*per
		if r0 > end {
			r0 = end
		}
		r1 := r0 + per
		if r1 > end {
			r1 = end
		}
		ranges[i] = rowRange{start: r0, end: r1}
	}
	return ranges
}

func (s *cpuWaveSolver) start() {
	if s.started {
		return
	}
	s.started = true
	for i := 0; i < s.workers; i++ {
		go s.workerLoop(i)
	}
}

// workerLoop executes stencil updates for the rows assigned to the worker,
// one barrier-delimited iteration at a time.
func (s *cpuWaveSolver) workerLoop(index int) {
	lastStep := 0
	s.mu.Lock()
	for {
		for s.step == lastStep && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			s.mu.Unlock()
			return
		}
		lastStep = s.step
		var r rowRange
		if index < len(s.ranges) {
			r = s.ranges[index]
		}
		next, prev, vel := s.next, s.prev, s.vel
		cols, coeff := s.cols, s.coeff
		s.mu.Unlock()

		for row := r.start; row < r.end; row++ {
			updateRow(next, prev, vel, coeff, row, cols)
		}

		s.mu.Lock()
		s.pending--
		if s.pending == 0 {
			s.cond.Broadcast()
		}
	}
}

// Step drives the worker pool through the requested number of timesteps.
// The buffer roles alternate via reference swap after each barrier, so when
// Step returns f.prev holds the newest timestep.
func (s *cpuWaveSolver) Step(f *waveField, coeff float32, iterations int) error {
	if iterations <= 0 {
		return nil
	}
	size := f.rows * f.cols
	if len(f.prev) != size || len(f.next) != size || len(f.vel) != size {
		return fmt.Errorf("unexpected field buffer size %dx%d", f.rows, f.cols)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("solver is closed")
	}
	s.start()
	s.ranges = partitionRows(f.halo, f.rows-f.halo, s.workers)
	s.vel = f.vel
	s.cols = f.cols
	s.coeff = coeff
	s.mu.Unlock()

	for k := 0; k < iterations; k++ {
		s.mu.Lock()
		s.next, s.prev = f.next, f.prev
		s.pending = s.workers
		s.step++
		s.cond.Broadcast()
		for s.pending > 0 {
			s.cond.Wait()
		}
		s.mu.Unlock()
		f.swap()
	}
	return nil
}

// Close stops the worker goroutines. The solver cannot be reused afterwards.
func (s *cpuWaveSolver) Close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// DeviceName describes the pool for the capability report.
func (s *cpuWaveSolver) DeviceName() string {
	return fmt.Sprintf("Go runtime, %d workers (%d CPUs)", s.workers, runtime.NumCPU())
}
