package main

import (
	"fmt"
	"log"
)

// waveSolver is the accelerated execution backend contract: submit every
// interior point update for one iteration, wait for all of them, repeat.
// Implementations must leave the newest timestep in the field's prev buffer
// when Step returns.
type waveSolver interface {
	Step(f *waveField, coeff float32, iterations int) error
	DeviceName() string
	Close()
}

// newWaveSolver selects the accelerated backend. "auto" prefers OpenCL when
// the binary was built with -tags opencl and a device is available, falling
// back to the goroutine pool otherwise.
func newWaveSolver(device string, workers int) (waveSolver, error) {
	switch device {
	case "cpu":
		return newCPUWaveSolver(workers), nil
	case "opencl":
		solver, err := newOpenCLWaveSolver()
		if err != nil {
			return nil, fmt.Errorf("opencl backend: %w", err)
		}
		return solver, nil
	case "auto":
		solver, err := newOpenCLWaveSolver()
		if err == nil {
			return solver, nil
		}
		log.Printf("OpenCL unavailable (%v), using goroutine backend", err)
		return newCPUWaveSolver(workers), nil
	default:
		return nil, fmt.Errorf("unknown device %q (want auto, cpu or opencl)", device)
	}
}
