package embedding

import (
	"errors"
	"math"
	"testing"
)

func TestMeanPool_MaskedAverage(t *testing.T) {
	hidden := [][]float32{
		{1, 2, 3},
		{3, 4, 5},
		{100, 100, 100}, // masked out
	}
	mask := []int64{1, 1, 0}

	got, err := MeanPool(hidden, mask)
	if err != nil {
		t.Fatal(err)
	}

	want := []float32{2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestMeanPool_ZeroMask(t *testing.T) {
	hidden := [][]float32{{1, 2}, {3, 4}}
	mask := []int64{0, 0}

	if _, err := MeanPool(hidden, mask); !errors.Is(err, ErrZeroMask) {
		t.Errorf("expected ErrZeroMask, got %v", err)
	}
}

func TestMeanPool_MaskLengthMismatch(t *testing.T) {
	hidden := [][]float32{{1, 2}, {3, 4}}
	mask := []int64{1}

	if _, err := MeanPool(hidden, mask); err == nil {
		t.Error("expected error for mismatched mask length")
	}
}

func TestMeanPool_Deterministic(t *testing.T) {
	hidden := [][]float32{{0.1, 0.2}, {0.3, 0.4}}
	mask := []int64{1, 1}

	a, err := MeanPool(hidden, mask)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MeanPool(hidden, mask)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("component %d differs between runs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestL2Normalize_UnitNorm(t *testing.T) {
	vectors := [][]float32{
		{3, 4},
		{1, 1, 1, 1},
		{-2, 0.5, 7, -0.01},
	}
	for _, vec := range vectors {
		got, err := L2Normalize(vec)
		if err != nil {
			t.Fatal(err)
		}

		var sum float64
		for _, v := range got {
			sum += float64(v) * float64(v)
		}
		norm := math.Sqrt(sum)
		if math.Abs(norm-1.0) > 1e-5 {
			t.Errorf("expected unit norm for %v, got %f", vec, norm)
		}
	}
}

func TestL2Normalize_ZeroVector(t *testing.T) {
	if _, err := L2Normalize([]float32{0, 0, 0}); !errors.Is(err, ErrZeroNorm) {
		t.Errorf("expected ErrZeroNorm, got %v", err)
	}
}

func TestPoolAndNormalize(t *testing.T) {
	hidden := [][]float32{
		{1, 0},
		{0, 1},
		{50, 50},
	}
	mask := []int64{1, 1, 0}

	got, err := PoolAndNormalize(hidden, mask)
	if err != nil {
		t.Fatal(err)
	}

	// Pooled is (0.5, 0.5); normalized is (1/sqrt2, 1/sqrt2).
	want := float32(1 / math.Sqrt2)
	for i, v := range got {
		if math.Abs(float64(v-want)) > 1e-6 {
			t.Errorf("component %d: expected %f, got %f", i, want, v)
		}
	}
}
