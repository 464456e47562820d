// SPDX-License-Identifier: MIT
// Package embed - alignment of spectral embeddings.
//
// align.go resolves the orthogonal non-identifiability of latent positions:
// if X̂ estimates X, so does X̂W for any orthogonal W. Two remedies, in
// increasing strength:
//
//   - SignFlips   — calibrate only the per-dimension signs of x against a
//     reference. Cheap, shape-tolerant (row counts may differ), and the
//     default alignment for two-sample testing.
//   - Procrustes  — solve the full orthogonal Procrustes problem
//     min‖xW − ref‖_F over orthogonal W. Requires identical shapes.
package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FlipCriterion selects the per-dimension statistic whose sign is calibrated
// by SignFlips.
type FlipCriterion int

const (
	// FlipLargest calibrates the sign of the largest-magnitude entry per
	// dimension. Robust when a few vertices dominate the dimension.
	FlipLargest FlipCriterion = iota

	// FlipMedian calibrates the sign of the per-dimension median.
	FlipMedian
)

// SignFlips returns a copy of x whose dimension signs are flipped wherever
// the chosen criterion disagrees in sign with the same criterion on ref.
// ref is never modified. Row counts may differ; column counts must match.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: O((n_x + n_ref)·d) time (FlipMedian sorts: extra O(n log n)).
func SignFlips(x, ref *mat.Dense, criterion FlipCriterion) (*mat.Dense, error) {
	if x == nil || ref == nil {
		return nil, fmt.Errorf("SignFlips: %w", ErrNilMatrix)
	}
	nx, d := x.Dims()
	_, dr := ref.Dims()
	if d != dr {
		return nil, fmt.Errorf("SignFlips: %d vs %d columns: %w", d, dr, ErrShapeMismatch)
	}

	out := mat.DenseCopyOf(x)
	var j, i int
	for j = 0; j < d; j++ {
		sx := columnSign(x, j, criterion)
		sr := columnSign(ref, j, criterion)
		if sx != 0 && sr != 0 && sx != sr {
			for i = 0; i < nx; i++ {
				out.Set(i, j, -out.At(i, j))
			}
		}
	}

	return out, nil
}

// columnSign evaluates the flip criterion on column j: -1, 0, or +1.
func columnSign(m *mat.Dense, j int, criterion FlipCriterion) int {
	n, _ := m.Dims()

	var pivot float64
	switch criterion {
	case FlipMedian:
		col := make([]float64, n)
		mat.Col(col, j, m)
		pivot = medianInPlace(col)
	default: // FlipLargest
		var maxAbs float64
		for i := 0; i < n; i++ {
			if v := m.At(i, j); math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
				pivot = v
			}
		}
	}

	switch {
	case pivot > 0:
		return 1
	case pivot < 0:
		return -1
	default:
		return 0
	}
}

// medianInPlace returns the median of s, reordering s as a side effect.
func medianInPlace(s []float64) float64 {
	n := len(s)
	if n == 0 {
		return 0
	}
	// Insertion sort: columns are short-lived scratch, n is embedding rows.
	for i := 1; i < n; i++ {
		for k := i; k > 0 && s[k] < s[k-1]; k-- {
			s[k], s[k-1] = s[k-1], s[k]
		}
	}
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

// Procrustes rotates x onto ref: it computes the orthogonal W minimizing
// ‖xW − ref‖_F (via the SVD of xᵀref) and returns xW. Both matrices must
// share the same shape.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrDecompFailed.
//
// Complexity: O(n·d² + d³).
func Procrustes(x, ref *mat.Dense) (*mat.Dense, error) {
	if x == nil || ref == nil {
		return nil, fmt.Errorf("Procrustes: %w", ErrNilMatrix)
	}
	nx, dx := x.Dims()
	nr, dr := ref.Dims()
	if nx != nr || dx != dr {
		return nil, fmt.Errorf("Procrustes: %dx%d vs %dx%d: %w", nx, dx, nr, dr, ErrShapeMismatch)
	}

	// Cross-product and its SVD give the optimal rotation W = U·Vᵀ.
	var cross mat.Dense
	cross.Mul(x.T(), ref)

	var svd mat.SVD
	if ok := svd.Factorize(&cross, mat.SVDThin); !ok {
		return nil, fmt.Errorf("Procrustes: %w", ErrDecompFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var w mat.Dense
	w.Mul(&u, v.T())

	out := mat.NewDense(nx, dx, nil)
	out.Mul(x, &w)

	return out, nil
}
