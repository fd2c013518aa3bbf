//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLWaveSolver runs the accelerated path on an OpenCL device. The three
// field buffers live on the device for the whole run; each iteration
// enqueues one kernel over the full grid and then swaps the prev/next
// buffer handles, so the device never copies grid data either.
type openCLWaveSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	prevBuf    *cl.MemObject
	nextBuf    *cl.MemObject
	velBuf     *cl.MemObject
	size       int
	deviceName string
	boundPrev  *cl.MemObject
	boundNext  *cl.MemObject
}

const waveKernelSource = `__kernel void wave_step(
    const int rows,
    const int cols,
    const int halo,
    const float coeff,
    __global const float* prev,
    __global const float* vel,
    __global float* next_buffer)
{
    int gid = get_global_id(0);
    int size = rows * cols;
    if (gid >= size) {
        return;
    }
    int col = gid % cols;
    int row = gid / cols;
    if (col < halo || col >= cols - halo || row < halo || row >= rows - halo) {
        return;
    }
    float value = prev[gid + 1] - 2.0f * prev[gid] + prev[gid - 1];
    value += prev[gid + cols] - 2.0f * prev[gid] + prev[gid - cols];
    value *= coeff * vel[gid];
    next_buffer[gid] = 2.0f * prev[gid] - next_buffer[gid] + value;
}`

// pickDevice returns the first GPU device found on any platform, falling
// back to a CPU device.
func pickDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	for _, deviceType := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(deviceType)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

func newOpenCLWaveSolver() (*openCLWaveSolver, error) {
	device, err := pickDevice()
	if err != nil {
		return nil, err
	}
	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{waveKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("wave_step")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	solver := &openCLWaveSolver{
		context: context,
		queue:   queue,
		program: program,
		kernel:  kernel,
		deviceName: fmt.Sprintf("%s (max work group %d, %d compute units)",
			device.Name(), device.MaxWorkGroupSize(), device.MaxComputeUnits()),
	}
	return solver, nil
}

// ensureBuffers allocates the device-side field buffers for the grid size.
func (s *openCLWaveSolver) ensureBuffers(size int) error {
	if s.size == size && s.prevBuf != nil {
		return nil
	}
	s.releaseBuffers()
	byteSize := size * int(unsafe.Sizeof(float32(0)))
	prevBuf, err := s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
	if err != nil {
		return fmt.Errorf("allocating previous buffer: %w", err)
	}
	nextBuf, err := s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
	if err != nil {
		prevBuf.Release()
		return fmt.Errorf("allocating next buffer: %w", err)
	}
	velBuf, err := s.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize)
	if err != nil {
		nextBuf.Release()
		prevBuf.Release()
		return fmt.Errorf("allocating velocity buffer: %w", err)
	}
	s.prevBuf, s.nextBuf, s.velBuf = prevBuf, nextBuf, velBuf
	s.size = size
	s.boundPrev, s.boundNext = nil, nil
	return nil
}

// bindDynamicBuffers rebinds the prev/next kernel arguments after a handle
// swap. The static arguments keep their bindings.
func (s *openCLWaveSolver) bindDynamicBuffers() error {
	if s.boundPrev != s.prevBuf {
		if err := s.kernel.SetArgBuffer(4, s.prevBuf); err != nil {
			return err
		}
		s.boundPrev = s.prevBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(6, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Step uploads the field, runs the kernel for the requested iterations with
// a device buffer handle swap between them, and reads the final two
// timesteps back. When Step returns f.prev holds the newest timestep.
func (s *openCLWaveSolver) Step(f *waveField, coeff float32, iterations int) error {
	if iterations <= 0 {
		return nil
	}
	size := f.rows * f.cols
	if len(f.prev) != size || len(f.next) != size || len(f.vel) != size {
		return fmt.Errorf("unexpected field buffer size %dx%d", f.rows, f.cols)
	}
	if err := s.ensureBuffers(size); err != nil {
		return err
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.prevBuf, false, 0, f.prev, nil); err != nil {
		return fmt.Errorf("writing previous buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.nextBuf, false, 0, f.next, nil); err != nil {
		return fmt.Errorf("writing next buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.velBuf, false, 0, f.vel, nil); err != nil {
		return fmt.Errorf("writing velocity buffer: %w", err)
	}
	if err := s.kernel.SetArgs(
		int32(f.rows),
		int32(f.cols),
		int32(f.halo),
		coeff,
		s.prevBuf,
		s.velBuf,
		s.nextBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	s.boundPrev, s.boundNext = s.prevBuf, s.nextBuf

	global := []int{size}
	for k := 0; k < iterations; k++ {
		if err := s.bindDynamicBuffers(); err != nil {
			return fmt.Errorf("binding buffers: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing kernel: %w", err)
		}
		s.prevBuf, s.nextBuf = s.nextBuf, s.prevBuf
	}
	if err := s.queue.Finish(); err != nil {
		return fmt.Errorf("waiting for device: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.prevBuf, true, 0, f.prev, nil); err != nil {
		return fmt.Errorf("reading previous buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.nextBuf, true, 0, f.next, nil); err != nil {
		return fmt.Errorf("reading next buffer: %w", err)
	}
	return nil
}

func (s *openCLWaveSolver) releaseBuffers() {
	if s.velBuf != nil {
		s.velBuf.Release()
		s.velBuf = nil
	}
	if s.nextBuf != nil {
		s.nextBuf.Release()
		s.nextBuf = nil
	}
	if s.prevBuf != nil {
		s.prevBuf.Release()
		s.prevBuf = nil
	}
	s.size = 0
}

func (s *openCLWaveSolver) Close() {
	s.releaseBuffers()
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLWaveSolver) DeviceName() string {
	return s.deviceName
}
