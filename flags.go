package main

import (
	"flag"
	"runtime"
)

// Command-line flags that control backend selection, verification, and
// output locations. Grid sizes and the iteration count are positional
// arguments, parsed in main.go.
var (
	// deviceFlag selects the accelerated execution backend.
	deviceFlag = flag.String("device", "auto", "accelerated backend: auto, cpu or opencl")

	// workersFlag sets the goroutine count for the cpu backend.
	workersFlag = flag.Int("workers", runtime.NumCPU(), "worker goroutines for the cpu backend")

	// deltaFlag tunes the per-point absolute tolerance used when comparing
	// the accelerated result against the sequential reference.
	deltaFlag = flag.Float64("delta", defaultDelta, "per-point absolute difference tolerance for verification")

	// snapshotFlag is where the accelerated-path wavefield is dumped.
	snapshotFlag = flag.String("snapshot", "wavefield_snapshot.bin", "output path for the accelerated wavefield (raw float32)")

	// snapshotCPUFlag is where the reference-path wavefield is dumped.
	snapshotCPUFlag = flag.String("snapshot-cpu", "wavefield_snapshot_cpu.bin", "output path for the reference wavefield (raw float32)")

	// errorLogFlag receives one line per interior point that exceeds delta.
	errorLogFlag = flag.String("error-log", "error_diff.txt", "output path for per-point mismatch diagnostics")

	// renderFlag opens a window and animates the wavefield instead of
	// running the verification pipeline.
	renderFlag = flag.Bool("render", false, "animate the wavefield in a window instead of verifying")

	// cpuProfileFlag enables pprof CPU capture for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
