package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

func usage() {
	fmt.Fprintln(os.Stderr, " Incorrect parameters")
	fmt.Fprintf(os.Stderr, " Usage: %s [flags] n1 n2 Iterations\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, " n1 n2      : Grid sizes for the stencil")
	fmt.Fprintln(os.Stderr, " Iterations : No. of timesteps.")
	fmt.Fprintln(os.Stderr, " Flags:")
	flag.PrintDefaults()
}

// parseGridArgs validates the three positional arguments: rows, columns and
// timestep count. All must be positive and the grid must leave at least one
// interior point inside the halo.
func parseGridArgs(args []string) (rows, cols, iterations int, err error) {
	if len(args) != 3 {
		return 0, 0, 0, errors.New("expected three positional arguments")
	}
	values := make([]int, 3)
	for i, arg := range args {
		v, convErr := strconv.Atoi(arg)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("argument %q is not an integer", arg)
		}
		if v <= 0 {
			return 0, 0, 0, fmt.Errorf("argument %q must be positive", arg)
		}
		values[i] = v
	}
	rows, cols, iterations = values[0], values[1], values[2]
	if rows < 2*halfLength+1 || cols < 2*halfLength+1 {
		return 0, 0, 0, fmt.Errorf("grid %dx%d has no interior points for halo %d", rows, cols, halfLength)
	}
	return rows, cols, iterations, nil
}

func main() {
	flag.Parse()
	rows, cols, iterations, err := parseGridArgs(flag.Args())
	if err != nil {
		usage()
		os.Exit(1)
	}

	stopProfile := func() {}
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile capture failed: %v", err)
		}
		stopProfile = stop
	}

	solver, err := newWaveSolver(*deviceFlag, *workersFlag)
	if err != nil {
		stopProfile()
		log.Fatalf("selecting backend: %v", err)
	}

	if *renderFlag {
		err := runViewer(rows, cols, solver)
		solver.Close()
		stopProfile()
		if err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	code := run(rows, cols, iterations, solver)
	solver.Close()
	stopProfile()
	os.Exit(code)
}

// run executes the full verification pipeline: accelerated run, snapshot,
// freshly initialized sequential run, snapshot, interior equivalence check.
// It returns the process exit code.
func run(rows, cols, iterations int, solver waveSolver) int {
	delta := float32(*deltaFlag)

	log.Printf("Initializing ...")
	device := newWaveField(rows, cols)
	device.initialize()
	log.Printf("Grid Sizes: %d %d", rows, cols)
	log.Printf("Iterations: %d", iterations)

	log.Printf("Computing wavefield in device ..")
	log.Printf("Running on %s", solver.DeviceName())
	start := time.Now()
	if err := solver.Step(device, dtDIVdxy, iterations); err != nil {
		log.Fatalf("device computation failed: %v", err)
	}
	log.Printf("Kernel time: %d ms", time.Since(start).Milliseconds())
	if err := writeSnapshot(*snapshotFlag, device.prev); err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("Computing wavefield in CPU ..")
	reference := newWaveField(rows, cols)
	reference.initialize()
	start = time.Now()
	runSequential(reference, dtDIVdxy, iterations)
	log.Printf("CPU time: %d ms", time.Since(start).Milliseconds())

	errLog, err := os.Create(*errorLogFlag)
	if err != nil {
		log.Fatalf("creating error log: %v", err)
	}
	result := withinEpsilon(device.prev, reference.prev, rows, cols, halfLength, delta, errLog)
	if err := errLog.Close(); err != nil {
		log.Printf("closing error log: %v", err)
	}

	if result.hasError {
		log.Printf("error (Euclidean norm): %.9e", result.norm2)
		log.Printf("Final wavefields from device and CPU are different: Error")
	} else {
		log.Printf("Final wavefields from device and CPU are equivalent: Success")
	}

	if err := writeSnapshot(*snapshotCPUFlag, reference.prev); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Final wavefields (from device and CPU) written to disk")
	log.Printf("Finished.")

	if result.hasError {
		return 1
	}
	return 0
}
