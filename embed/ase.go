// SPDX-License-Identifier: MIT
// Package embed - adjacency spectral embedding.
//
// ase.go estimates latent positions from a single adjacency matrix.
//
// Model: under the random dot product graph, E[A] = XXᵀ (undirected) or
// E[A] = XYᵀ (directed). The spectral estimate truncates the SVD of A at
// dimension d and scales singular vectors by √σ, so X̂X̂ᵀ (resp. X̂Ŷᵀ)
// approximates A in Frobenius norm optimally among rank-d matrices.
//
// Contract:
//   - a non-nil, square, order ≥ 2, at least one non-zero entry.
//   - Symmetry is detected, not declared: asymmetric input is treated as a
//     directed graph and yields both in- and out-positions.
//   - Deterministic: exact linear algebra, no randomness.
package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// aseSymTol is the absolute tolerance for detecting symmetric input.
const aseSymTol = 1e-12

// AdjacencySpectral computes the adjacency spectral embedding of a.
//
// With opts.Dim == 0 the dimension comes from SelectDimension over the full
// singular value profile (NumElbows elbows, last one kept). opts.Augment
// replaces the diagonal with degreeᵢ/(n−1) before decomposing.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmptyGraph, ErrDimTooLarge,
// ErrDecompFailed, plus SelectDimension errors.
//
// Complexity: O(n³) for the SVD, O(n·d) for the embedding.
func AdjacencySpectral(a *mat.Dense, opts Options) (*Embedding, error) {
	// Stage 1: validate shape and content.
	n, directed, err := validateAdjacency(a)
	if err != nil {
		return nil, fmt.Errorf("AdjacencySpectral: %w", err)
	}
	if opts.Dim > n {
		return nil, fmt.Errorf("AdjacencySpectral: dim=%d > order=%d: %w", opts.Dim, n, ErrDimTooLarge)
	}

	// Stage 2: optional diagonal augmentation.
	work := a
	if opts.Augment {
		work, err = AugmentDiagonal(a)
		if err != nil {
			return nil, fmt.Errorf("AdjacencySpectral: %w", err)
		}
	}

	// Stage 3: full SVD; singular values arrive in non-increasing order.
	var svd mat.SVD
	if ok := svd.Factorize(work, mat.SVDThin); !ok {
		return nil, fmt.Errorf("AdjacencySpectral: %w", ErrDecompFailed)
	}
	values := svd.Values(nil)

	// Stage 4: resolve the embedding dimension.
	d := opts.Dim
	if d == 0 {
		numElbows := opts.NumElbows
		if numElbows == 0 {
			numElbows = defaultNumElbows
		}
		elbows, selErr := SelectDimension(values, numElbows)
		if selErr != nil {
			return nil, fmt.Errorf("AdjacencySpectral: %w", selErr)
		}
		d = elbows[len(elbows)-1]
	}

	// Stage 5: scale singular vectors by √σ.
	var u mat.Dense
	svd.UTo(&u)
	x := scaleVectors(&u, values, n, d)

	emb := &Embedding{X: x, Values: append([]float64(nil), values[:d]...), Dim: d}
	if directed {
		var v mat.Dense
		svd.VTo(&v)
		emb.Y = scaleVectors(&v, values, n, d)
	}

	return emb, nil
}

// validateAdjacency checks a for shape and emptiness and reports whether it
// is directed (asymmetric). Complexity: O(n²).
func validateAdjacency(a *mat.Dense) (n int, directed bool, err error) {
	if a == nil {
		return 0, false, ErrNilMatrix
	}
	r, c := a.Dims()
	if r != c {
		return 0, false, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare)
	}
	if r < 2 {
		return 0, false, fmt.Errorf("order %d: %w", r, ErrEmptyGraph)
	}

	var (
		i, j    int
		v       float64
		nonZero bool
	)
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			v = a.At(i, j)
			if v != 0 {
				nonZero = true
			}
			if j > i && math.Abs(v-a.At(j, i)) > aseSymTol {
				directed = true
			}
		}
	}
	if !nonZero {
		return 0, false, ErrEmptyGraph
	}

	return r, directed, nil
}

// scaleVectors builds the n×d latent position matrix vecs[:, :d]·diag(√σ).
func scaleVectors(vecs *mat.Dense, values []float64, n, d int) *mat.Dense {
	out := mat.NewDense(n, d, nil)
	var (
		i, j int
		s    float64
	)
	for j = 0; j < d; j++ {
		s = math.Sqrt(values[j])
		for i = 0; i < n; i++ {
			out.Set(i, j, vecs.At(i, j)*s)
		}
	}

	return out
}
