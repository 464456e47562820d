// SPDX-License-Identifier: MIT
// Package simulate - stochastic block model sampler.
//
// sbm.go expands a k×k block-probability matrix into an n×n edge-probability
// matrix using block membership, then delegates to the SampleP kernel.
//
// Contract:
//   - len(blockSizes) ≥ 1 and every size ≥ 1.
//   - probs is k×k with entries in [0,1]; symmetric unless WithDirected.
//   - Vertices are laid out in block order: block 0 occupies indices
//     [0, blockSizes[0]), block 1 the next range, and so on.
package simulate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SBM samples a stochastic block model adjacency matrix. blockSizes gives
// the number of vertices per block and probs the inter-block edge
// probabilities: an edge between a vertex in block b1 and one in block b2
// appears with probability probs[b1,b2].
//
// Errors: ErrTooFewVertices, ErrNilMatrix, ErrBlockMismatch,
// ErrInvalidProbability, ErrAsymmetric.
//
// Complexity: O(n²) time and space, n = Σ blockSizes.
func SBM(blockSizes []int, probs *mat.Dense, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	// Stage 1: validate block structure.
	k := len(blockSizes)
	if k < 1 {
		return nil, fmt.Errorf("SBM: no blocks: %w", ErrTooFewVertices)
	}
	n := 0
	for b, size := range blockSizes {
		if size < minVertices {
			return nil, fmt.Errorf("SBM: block %d size=%d: %w", b, size, ErrTooFewVertices)
		}
		n += size
	}
	if probs == nil {
		return nil, fmt.Errorf("SBM: %w", ErrNilMatrix)
	}
	if r, c := probs.Dims(); r != k || c != k {
		return nil, fmt.Errorf("SBM: probs is %dx%d, want %dx%d: %w", r, c, k, k, ErrBlockMismatch)
	}

	// Stage 2: expand block probabilities to a full n×n matrix.
	// Entry and symmetry validation happens once, inside SampleP.
	labels := BlockLabels(blockSizes)
	p := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			p.Set(i, j, probs.At(labels[i], labels[j]))
		}
	}

	// Stage 3: sample. Rebuild the option slice so SampleP sees the same cfg.
	a, err := SampleP(p, configOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("SBM: %w", err)
	}

	return a, nil
}

// BlockLabels returns the block index of every vertex for the block layout
// used by SBM: vertex v belongs to labels[v]. Invalid sizes yield nil.
//
// Complexity: O(n).
func BlockLabels(blockSizes []int) []int {
	n := 0
	for _, size := range blockSizes {
		if size < 1 {
			return nil
		}
		n += size
	}

	labels := make([]int, 0, n)
	for b, size := range blockSizes {
		for i := 0; i < size; i++ {
			labels = append(labels, b)
		}
	}

	return labels
}

// configOptions converts a resolved config back into an option slice so a
// sampler can delegate to another sampler without re-parsing caller options.
func configOptions(cfg config) []Option {
	opts := []Option{WithSeed(cfg.seed)}
	if cfg.directed {
		opts = append(opts, WithDirected())
	}
	if cfg.loops {
		opts = append(opts, WithLoops())
	}

	return opts
}
