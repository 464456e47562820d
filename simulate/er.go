package simulate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ER samples an Erdős–Rényi G(n,p) graph: every admissible vertex pair is an
// edge independently with probability p.
//
// Validation: n ≥ 1 (ErrTooFewVertices), p ∈ [0,1] (ErrInvalidProbability).
// p=0 yields the empty graph and p=1 the complete graph for any seed.
//
// Complexity: O(n²) time, O(n²) space.
func ER(n int, p float64, opts ...Option) (*mat.Dense, error) {
	if n < minVertices {
		return nil, fmt.Errorf("ER: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("ER: p=%g: %w", p, ErrInvalidProbability)
	}

	// Constant probability matrix; SampleP owns trial order and mode flags.
	data := make([]float64, n*n)
	for i := range data {
		data[i] = p
	}

	a, err := SampleP(mat.NewDense(n, n, data), opts...)
	if err != nil {
		return nil, fmt.Errorf("ER: %w", err)
	}

	return a, nil
}
