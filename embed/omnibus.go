// SPDX-License-Identifier: MIT
// Package embed - omnibus joint embedding.
//
// omnibus.go embeds m graphs on a shared vertex set into one coordinate
// system. The omnibus matrix M is m·n × m·n with n×n blocks
//
//	M[i,j] = (Aᵢ + Aⱼ) / 2
//
// so diagonal blocks are the graphs themselves. A single spectral embedding
// of M yields m stacked latent blocks that are directly comparable row by
// row — no per-graph alignment step is needed.
//
// Contract:
//   - At least two graphs, all undirected, identical order n ≥ 2.
//   - Augmentation (opts.Augment) is applied per input graph before the
//     omnibus matrix is assembled, never to M itself.
package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Omnibus jointly embeds graphs via the omnibus matrix.
//
// With opts.Dim == 0 the dimension is selected from the omnibus spectrum.
// The returned blocks appear in input order.
//
// Errors: ErrNoGraphs, ErrNilMatrix, ErrNonSquare, ErrOrderMismatch,
// ErrDirectedOmni, ErrEmptyGraph, ErrDimTooLarge, ErrDecompFailed.
//
// Complexity: O((m·n)³) for the decomposition, O((m·n)²) assembly.
func Omnibus(graphs []*mat.Dense, opts Options) (*OmniEmbedding, error) {
	m := len(graphs)
	if m < 2 {
		return nil, fmt.Errorf("Omnibus: %d graph(s): %w", m, ErrNoGraphs)
	}

	// Stage 1: validate homogeneity.
	n, err := validateOmniInputs(graphs)
	if err != nil {
		return nil, fmt.Errorf("Omnibus: %w", err)
	}

	// Stage 2: optional per-graph augmentation.
	prepared := graphs
	if opts.Augment {
		prepared = make([]*mat.Dense, m)
		for g, a := range graphs {
			prepared[g], err = AugmentDiagonal(a)
			if err != nil {
				return nil, fmt.Errorf("Omnibus: graph %d: %w", g, err)
			}
		}
	}

	// Stage 3: assemble the omnibus matrix block by block. Only the upper
	// block triangle is computed; the lower one mirrors it.
	omni := mat.NewDense(m*n, m*n, nil)
	var (
		gi, gj, i, j int
		v            float64
	)
	for gi = 0; gi < m; gi++ {
		for gj = gi; gj < m; gj++ {
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					v = (prepared[gi].At(i, j) + prepared[gj].At(i, j)) / 2
					omni.Set(gi*n+i, gj*n+j, v)
					if gj != gi {
						omni.Set(gj*n+i, gi*n+j, v)
					}
				}
			}
		}
	}

	// Stage 4: one embedding of the whole omnibus matrix. Augmentation
	// already happened at the block level.
	inner := Options{Dim: opts.Dim, NumElbows: opts.NumElbows, Augment: false}
	emb, err := AdjacencySpectral(omni, inner)
	if err != nil {
		return nil, fmt.Errorf("Omnibus: %w", err)
	}

	// Stage 5: split stacked positions into per-graph blocks.
	blocks := make([]*mat.Dense, m)
	for gi = 0; gi < m; gi++ {
		block := mat.NewDense(n, emb.Dim, nil)
		for i = 0; i < n; i++ {
			for j = 0; j < emb.Dim; j++ {
				block.Set(i, j, emb.X.At(gi*n+i, j))
			}
		}
		blocks[gi] = block
	}

	return &OmniEmbedding{Graphs: blocks, Values: emb.Values, Dim: emb.Dim}, nil
}

// validateOmniInputs checks that every graph is present, square, symmetric,
// and of the common order. Complexity: O(m·n²).
func validateOmniInputs(graphs []*mat.Dense) (int, error) {
	n := 0
	for g, a := range graphs {
		if a == nil {
			return 0, fmt.Errorf("graph %d: %w", g, ErrNilMatrix)
		}
		r, c := a.Dims()
		if r != c {
			return 0, fmt.Errorf("graph %d is %dx%d: %w", g, r, c, ErrNonSquare)
		}
		if g == 0 {
			n = r
		} else if r != n {
			return 0, fmt.Errorf("graph %d order %d, want %d: %w", g, r, n, ErrOrderMismatch)
		}
		for i := 0; i < r; i++ {
			for j := i + 1; j < r; j++ {
				if math.Abs(a.At(i, j)-a.At(j, i)) > aseSymTol {
					return 0, fmt.Errorf("graph %d: %w", g, ErrDirectedOmni)
				}
			}
		}
	}
	if n < 2 {
		return 0, fmt.Errorf("order %d: %w", n, ErrEmptyGraph)
	}

	return n, nil
}
