//go:build !opencl

package main

import "errors"

type openCLWaveSolver struct{}

func newOpenCLWaveSolver() (*openCLWaveSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLWaveSolver) Step(f *waveField, coeff float32, iterations int) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLWaveSolver) Close() {}

func (s *openCLWaveSolver) DeviceName() string { return "" }
