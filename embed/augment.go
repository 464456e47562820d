package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AugmentDiagonal returns a copy of a whose diagonal entries are replaced by
// degreeᵢ/(n−1), the mean off-diagonal mass of row i and column i. For a
// hollow 0/1 adjacency this is the standard ASE bias correction; asymmetric
// input uses the average of row and column sums so both orientations count.
//
// Validation: a non-nil and square, n ≥ 2.
//
// Complexity: O(n²) time, O(n²) space.
func AugmentDiagonal(a *mat.Dense) (*mat.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("AugmentDiagonal: %w", ErrNilMatrix)
	}
	n, c := a.Dims()
	if n != c {
		return nil, fmt.Errorf("AugmentDiagonal: %dx%d: %w", n, c, ErrNonSquare)
	}
	if n < 2 {
		return nil, fmt.Errorf("AugmentDiagonal: order %d: %w", n, ErrEmptyGraph)
	}

	out := mat.DenseCopyOf(a)

	var (
		i, j     int
		row, col float64
	)
	for i = 0; i < n; i++ {
		row, col = 0, 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			row += a.At(i, j)
			col += a.At(j, i)
		}
		out.Set(i, i, (row+col)/(2*float64(n-1)))
	}

	return out, nil
}
