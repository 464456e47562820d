package inference

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix computes pairwise Minkowski distances between the rows of
// x: out[i,j] = ‖xᵢ − xⱼ‖_norm. The result is symmetric with a zero
// diagonal.
//
// Validation: x non-nil with at least one row (ErrNilMatrix,
// ErrTooFewSamples), norm ≥ 1 (ErrBadNorm).
//
// Complexity: O(n²·d) time, O(n²) space.
func DistanceMatrix(x *mat.Dense, norm float64) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("DistanceMatrix: %w", ErrNilMatrix)
	}
	if norm < 1 {
		return nil, fmt.Errorf("DistanceMatrix: norm=%g: %w", norm, ErrBadNorm)
	}
	n, _ := x.Dims()
	if n < 1 {
		return nil, fmt.Errorf("DistanceMatrix: %w", ErrTooFewSamples)
	}

	out := mat.NewDense(n, n, nil)
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		ri := x.RawRowView(i)
		for j = i + 1; j < n; j++ {
			d = floats.Distance(ri, x.RawRowView(j), norm)
			out.Set(i, j, d)
			out.Set(j, i, d)
		}
	}

	return out, nil
}
