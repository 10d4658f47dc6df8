// Package model implements the Positional Scorer's learned convolutional
// model (spec §4.2) as a small from-scratch forward pass: one 3x3
// same-padding convolution over the 6-channel tensor, a clipped-ReLU
// activation, a global average pool per feature map, and an affine
// output head to a single scalar.
//
// The layer shapes and the binary weight-file layout are grounded on
// hailam/chessplay's sfnnue package (sfnnue/layers/affine_transform.go,
// clipped_relu.go) and its internal/nnue/weights.go loader, generalized
// from NNUE's 14-plane HalfKP chess features to the spec's fixed 6x9x9
// Tablut tensor.
package model

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/tablutai/tablut/pkg/eval"
)

const (
	magicNumber = 0x544c4254 // "TBLT"
	fileVersion = 1
)

// fileHeader mirrors the magic/version/size header idiom of
// internal/nnue/weights.go's FileHeader, sized for this model's single
// hidden layer instead of NNUE's two.
type fileHeader struct {
	Magic   uint32
	Version uint32
	Hidden  uint32
}

// Weights holds one convolutional layer (Hidden feature maps over
// eval.NumChannels input planes, 3x3 kernels) and an affine output head
// pooling each feature map to a scalar.
type Weights struct {
	Hidden int

	ConvKernels [][eval.NumChannels][3][3]float32 // [Hidden][channel][ky][kx]
	ConvBias    []float32                         // [Hidden]
	OutWeights  []float32                         // [Hidden]
	OutBias     float32
}

// Load reads a binary weight file in the format:
//
//	header:        magic, version, hidden (3x uint32, little-endian)
//	ConvKernels:    hidden * NumChannels * 3 * 3 * float32
//	ConvBias:       hidden * float32
//	OutWeights:     hidden * float32
//	OutBias:        float32
func Load(path string) (*Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weights file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses the binary weight format from an arbitrary reader, so
// tests can exercise it without touching the filesystem.
func Read(r io.Reader) (*Weights, error) {
	var h fileHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if h.Magic != magicNumber {
		return nil, fmt.Errorf("bad magic: got %x, want %x", h.Magic, magicNumber)
	}
	if h.Version != fileVersion {
		return nil, fmt.Errorf("unsupported version: %d", h.Version)
	}
	if h.Hidden == 0 {
		return nil, fmt.Errorf("hidden size must be positive")
	}

	w := &Weights{
		Hidden:      int(h.Hidden),
		ConvKernels: make([][eval.NumChannels][3][3]float32, h.Hidden),
		ConvBias:    make([]float32, h.Hidden),
		OutWeights:  make([]float32, h.Hidden),
	}

	for i := range w.ConvKernels {
		if err := binary.Read(r, binary.LittleEndian, &w.ConvKernels[i]); err != nil {
			return nil, fmt.Errorf("read conv kernel %d: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &w.ConvBias); err != nil {
		return nil, fmt.Errorf("read conv bias: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &w.OutWeights); err != nil {
		return nil, fmt.Errorf("read output weights: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &w.OutBias); err != nil {
		return nil, fmt.Errorf("read output bias: %w", err)
	}
	return w, nil
}

// Write serializes weights in Load's format, used by tests to round-trip
// a small synthetic network.
func Write(w io.Writer, weights *Weights) error {
	h := fileHeader{Magic: magicNumber, Version: fileVersion, Hidden: uint32(weights.Hidden)}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}
	for _, k := range weights.ConvKernels {
		if err := binary.Write(w, binary.LittleEndian, k); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, weights.ConvBias); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, weights.OutWeights); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, weights.OutBias)
}
