// Package embedding turns raw model output into comparable
// fixed-length vectors and provides the client for the external
// inference runtime.
package embedding

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroMask is returned when mean pooling is asked to average
	// over an all-zero attention mask.
	ErrZeroMask = errors.New("attention mask has no active positions")

	// ErrZeroNorm is returned when normalizing a zero vector.
	ErrZeroNorm = errors.New("cannot normalize zero-norm vector")
)

// MeanPool averages the hidden-state rows whose attention mask is 1.
// hidden has shape [sequence_length][hidden_size]; mask must have the
// same sequence length. An all-zero mask is an input-contract
// violation, never a silent NaN.
func MeanPool(hidden [][]float32, mask []int64) ([]float32, error) {
	if len(hidden) == 0 {
		return nil, fmt.Errorf("empty hidden states")
	}
	if len(mask) != len(hidden) {
		return nil, fmt.Errorf("attention mask length %d does not match sequence length %d", len(mask), len(hidden))
	}

	hiddenSize := len(hidden[0])
	sum := make([]float64, hiddenSize)
	count := 0
	for i, row := range hidden {
		if mask[i] != 1 {
			continue
		}
		if len(row) != hiddenSize {
			return nil, fmt.Errorf("ragged hidden states: row %d has size %d, want %d", i, len(row), hiddenSize)
		}
		for j, v := range row {
			sum[j] += float64(v)
		}
		count++
	}
	if count == 0 {
		return nil, ErrZeroMask
	}

	pooled := make([]float32, hiddenSize)
	for j := range sum {
		pooled[j] = float32(sum[j] / float64(count))
	}
	return pooled, nil
}

// L2Normalize scales the vector to unit Euclidean norm. A zero norm is
// an input-contract violation.
func L2Normalize(vec []float32) ([]float32, error) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return nil, ErrZeroNorm
	}

	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(float64(v) / norm)
	}
	return out, nil
}

// PoolAndNormalize is the full post-processing step: masked mean
// pooling followed by L2 normalization.
func PoolAndNormalize(hidden [][]float32, mask []int64) ([]float32, error) {
	pooled, err := MeanPool(hidden, mask)
	if err != nil {
		return nil, err
	}
	return L2Normalize(pooled)
}
