// SPDX-License-Identifier: MIT
// Package simulate - Bernoulli sampling kernel.
//
// sample.go implements SampleP, the common kernel of every graph model in
// this package: an independent Bernoulli trial per admissible vertex pair,
// driven by an edge-probability matrix.
//
// Contract:
//   - p must be non-nil, square, with every entry in [0,1].
//   - Undirected (default): p must be symmetric; trials run over unordered
//     pairs {i,j}, i<j, and the result is mirrored. Diagonal stays zero
//     unless WithLoops, in which case p[i,i] gets its own trial.
//   - Directed: trials run over all ordered pairs (i,j), i≠j, plus the
//     diagonal when WithLoops.
//   - Deterministic for a fixed seed: trial order is i asc, then j asc.
//
// Complexity: O(n²) trials, O(n²) output.
package simulate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the absolute tolerance used when checking probability matrices
// for symmetry. Probabilities are user-supplied, so exact equality is fair,
// but a small tolerance keeps matrices assembled from float arithmetic valid.
const symTol = 1e-12

// minVertices is the smallest graph any sampler will produce.
const minVertices = 1

// SampleP draws a 0/1 adjacency matrix from the edge-probability matrix p.
// Each admissible pair (i,j) becomes an edge independently with probability
// p[i,j]. See the file header for the exact trial order and mode semantics.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidProbability, ErrAsymmetric.
func SampleP(p *mat.Dense, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	// Stage 1: validate the probability matrix.
	n, err := validateProbMatrix(p, cfg.directed)
	if err != nil {
		return nil, fmt.Errorf("SampleP: %w", err)
	}

	// Stage 2: run Bernoulli trials in a fixed order.
	rng := rngFromSeed(cfg.seed)
	a := mat.NewDense(n, n, nil)

	var (
		i, j int
		prob float64
	)
	if cfg.directed {
		// Directed case: all ordered pairs (i,j).
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				prob = p.At(i, j)
				// Float64 is in [0,1), so the trial is exact at prob 0 and 1.
				if rng.Float64() < prob {
					a.Set(i, j, 1)
				}
			}
		}

		return a, nil
	}

	// Undirected case: unordered pairs {i,j}, i<j, mirrored; optional diagonal.
	for i = 0; i < n; i++ {
		if cfg.loops {
			if rng.Float64() < p.At(i, i) {
				a.Set(i, i, 1)
			}
		}
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p.At(i, j) {
				a.Set(i, j, 1)
				a.Set(j, i, 1)
			}
		}
	}

	return a, nil
}

// validateProbMatrix checks shape, entry domain, and (for undirected models)
// symmetry. It returns the matrix order on success.
//
// Complexity: O(n²).
func validateProbMatrix(p *mat.Dense, directed bool) (int, error) {
	if p == nil {
		return 0, ErrNilMatrix
	}

	r, c := p.Dims()
	if r != c {
		return 0, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare)
	}
	if r < minVertices {
		return 0, fmt.Errorf("n=%d < min=%d: %w", r, minVertices, ErrTooFewVertices)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = p.At(i, j)
			if math.IsNaN(v) || v < 0 || v > 1 {
				return 0, fmt.Errorf("p[%d,%d]=%g: %w", i, j, v, ErrInvalidProbability)
			}
			if !directed && j > i && math.Abs(v-p.At(j, i)) > symTol {
				return 0, fmt.Errorf("p[%d,%d]≠p[%d,%d]: %w", i, j, j, i, ErrAsymmetric)
			}
		}
	}

	return r, nil
}
