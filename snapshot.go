package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// writeSnapshot persists a wavefield buffer as raw little-endian float32
// values in row-major order with no header, the layout downstream tooling
// expects.
func writeSnapshot(path string, field []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	var scratch [4]byte
	for _, v := range field {
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(v))
		if _, err := w.Write(scratch[:]); err != nil {
			f.Close()
			return fmt.Errorf("writing snapshot %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot %s: %w", path, err)
	}
	return nil
}

// readSnapshot loads a raw float32 dump produced by writeSnapshot.
func readSnapshot(path string) ([]float32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("snapshot %s: size %d is not a multiple of 4", path, len(data))
	}
	field := make([]float32, len(data)/4)
	for i := range field {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		field[i] = math.Float32frombits(bits)
	}
	return field, nil
}
