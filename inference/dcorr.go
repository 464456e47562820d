// SPDX-License-Identifier: MIT
// Package inference - distance correlation.
//
// dcorr.go implements the (biased) distance correlation of Székely, Rizzo &
// Bakirov: double-center both pairwise distance matrices, then
//
//	dCov²  = mean(A ∘ B),  dVar² analogous,
//	dCorr² = dCov² / √(dVarₓ·dVar_y),  dCorr = √dCorr².
//
// dCorr lies in [0,1] (up to floating error) and is zero exactly under
// independence in the population. Degenerate inputs (a constant sample, so
// dVar = 0) score zero, mirroring the zeroed-column policy statistical
// transforms in this codebase use for std = 0.
package inference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceCorrelation computes the biased distance correlation between the
// row samples of x and y under the given Minkowski norm. Both matrices must
// have the same number of rows; column dimensions are free.
//
// Errors: ErrNilMatrix, ErrBadNorm, ErrTooFewSamples, ErrDimMismatch (row
// count disagreement).
//
// Complexity: O(n²·(dₓ+d_y)) time, O(n²) space.
func DistanceCorrelation(x, y *mat.Dense, norm float64) (float64, error) {
	if x == nil || y == nil {
		return 0, fmt.Errorf("DistanceCorrelation: %w", ErrNilMatrix)
	}
	nx, _ := x.Dims()
	ny, _ := y.Dims()
	if nx != ny {
		return 0, fmt.Errorf("DistanceCorrelation: %d vs %d rows: %w", nx, ny, ErrDimMismatch)
	}
	if nx < 2 {
		return 0, fmt.Errorf("DistanceCorrelation: n=%d: %w", nx, ErrTooFewSamples)
	}

	dx, err := DistanceMatrix(x, norm)
	if err != nil {
		return 0, fmt.Errorf("DistanceCorrelation: %w", err)
	}
	dy, err := DistanceMatrix(y, norm)
	if err != nil {
		return 0, fmt.Errorf("DistanceCorrelation: %w", err)
	}

	return dcorrCentered(doubleCenter(dx), doubleCenter(dy)), nil
}

// doubleCenter returns A with Aᵢⱼ = dᵢⱼ − rowMeanᵢ − colMeanⱼ + grandMean.
// d is assumed square; the input is not modified.
//
// Complexity: O(n²).
func doubleCenter(d *mat.Dense) *mat.Dense {
	n, _ := d.Dims()

	rowMean := make([]float64, n)
	colMean := make([]float64, n)
	grand := 0.0

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = d.At(i, j)
			rowMean[i] += v
			colMean[j] += v
			grand += v
		}
	}
	inv := 1.0 / float64(n)
	for i = 0; i < n; i++ {
		rowMean[i] *= inv
		colMean[i] *= inv
	}
	grand *= inv * inv

	out := mat.NewDense(n, n, nil)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.Set(i, j, d.At(i, j)-rowMean[i]-colMean[j]+grand)
		}
	}

	return out
}

// dcorrCentered computes distance correlation from two already-centered
// matrices. Degenerate variance yields zero.
//
// Complexity: O(n²).
func dcorrCentered(a, b *mat.Dense) float64 {
	n, _ := a.Dims()

	var (
		i, j             int
		cov, varA, varB  float64
		av, bv, invTotal float64
	)
	invTotal = 1.0 / float64(n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			av = a.At(i, j)
			bv = b.At(i, j)
			cov += av * bv
			varA += av * av
			varB += bv * bv
		}
	}
	cov *= invTotal
	varA *= invTotal
	varB *= invTotal

	if varA <= 0 || varB <= 0 {
		return 0
	}
	r2 := cov / math.Sqrt(varA*varB)
	if r2 <= 0 {
		return 0
	}

	return math.Sqrt(r2)
}
