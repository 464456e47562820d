// SPDX-License-Identifier: MIT
// Package inference - nonparametric latent distribution test.
//
// latent_distribution.go implements the two-sample test behind
// LatentDistributionTest:
//
//	Stage 1: embed both graphs (shared dimension), align per options.
//	Stage 2: pool the two point clouds and build one distance matrix.
//	Stage 3: score dcorr between points and group labels; permute labels
//	         for the null. The pooled distance matrix is centered once and
//	         shared by every replicate — permutations only touch the label
//	         side, which is O(n²) per replicate.
//
// Determinism: replicate b uses the RNG stream derived from (Seed, b), so
// the null sample is identical for any worker count.
package inference

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/codeaudit/graspy/embed"
)

// LatentDistributionTest tests H0: the latent position distributions of two
// undirected graphs agree up to an orthogonal transformation. The graphs
// are embedded with a shared dimension, aligned per opts.Align, and handed
// to DistributionTest. Vertex counts may differ unless AlignProcrustes is
// requested.
//
// Errors: ErrNilMatrix, ErrDirectedGraph, ErrOrderMismatch (Procrustes with
// unequal orders), plus embedding and DistributionTest errors.
func LatentDistributionTest(a1, a2 *mat.Dense, opts DistributionOptions) (*TestResult, error) {
	// Stage 1: validate graph shape; embedding handles the rest.
	if err := requireUndirected(a1); err != nil {
		return nil, fmt.Errorf("LatentDistributionTest: first graph: %w", err)
	}
	if err := requireUndirected(a2); err != nil {
		return nil, fmt.Errorf("LatentDistributionTest: second graph: %w", err)
	}

	eopts := opts.Embed
	if eopts == (embed.Options{}) {
		eopts = embed.DefaultOptions()
	}

	// Stage 2: embed both graphs into one dimension. Automatic selection
	// may disagree between the graphs; the larger choice wins and both are
	// re-embedded at it.
	e1, err := embed.AdjacencySpectral(a1, eopts)
	if err != nil {
		return nil, fmt.Errorf("LatentDistributionTest: first graph: %w", err)
	}
	e2, err := embed.AdjacencySpectral(a2, eopts)
	if err != nil {
		return nil, fmt.Errorf("LatentDistributionTest: second graph: %w", err)
	}
	if e1.Dim != e2.Dim {
		shared := e1.Dim
		if e2.Dim > shared {
			shared = e2.Dim
		}
		fixed := eopts
		fixed.Dim = shared
		if e1, err = embed.AdjacencySpectral(a1, fixed); err != nil {
			return nil, fmt.Errorf("LatentDistributionTest: first graph: %w", err)
		}
		if e2, err = embed.AdjacencySpectral(a2, fixed); err != nil {
			return nil, fmt.Errorf("LatentDistributionTest: second graph: %w", err)
		}
	}

	// Stage 3: resolve the orthogonal non-identifiability.
	x2 := e2.X
	switch opts.Align {
	case AlignProcrustes:
		n1, _ := e1.X.Dims()
		n2, _ := e2.X.Dims()
		if n1 != n2 {
			return nil, fmt.Errorf("LatentDistributionTest: Procrustes with orders %d and %d: %w",
				n1, n2, ErrOrderMismatch)
		}
		if x2, err = embed.Procrustes(e2.X, e1.X); err != nil {
			return nil, fmt.Errorf("LatentDistributionTest: %w", err)
		}
	case AlignNone:
		// positions used as-is
	default: // AlignSignFlips
		if x2, err = embed.SignFlips(e2.X, e1.X, embed.FlipLargest); err != nil {
			return nil, fmt.Errorf("LatentDistributionTest: %w", err)
		}
	}

	res, err := DistributionTest(e1.X, x2, opts)
	if err != nil {
		return nil, fmt.Errorf("LatentDistributionTest: %w", err)
	}

	return res, nil
}

// DistributionTest runs the two-sample dcorr permutation test directly on
// two point clouds (rows are samples). Column dimensions must match; row
// counts may differ.
//
// Errors: ErrNilMatrix, ErrDimMismatch, ErrTooFewSamples, ErrBadBootstraps,
// ErrBadNorm.
//
// Complexity: O(N²·d) pooled distances + O(B·N²) permutations, N = n1+n2.
func DistributionTest(x, y *mat.Dense, opts DistributionOptions) (*TestResult, error) {
	// Stage 1: validate samples and resolve option defaults.
	if x == nil || y == nil {
		return nil, fmt.Errorf("DistributionTest: %w", ErrNilMatrix)
	}
	n1, d1 := x.Dims()
	n2, d2 := y.Dims()
	if d1 != d2 {
		return nil, fmt.Errorf("DistributionTest: %d vs %d columns: %w", d1, d2, ErrDimMismatch)
	}
	if n1+n2 < minPooledSamples {
		return nil, fmt.Errorf("DistributionTest: pooled n=%d < %d: %w",
			n1+n2, minPooledSamples, ErrTooFewSamples)
	}
	boots, workers, norm, err := resolveSampling(opts.Bootstraps, opts.Workers, opts.Norm)
	if err != nil {
		return nil, fmt.Errorf("DistributionTest: %w", err)
	}

	// Stage 2: pool the samples and center the distance matrix once.
	n := n1 + n2
	pooled := mat.NewDense(n, d1, nil)
	for i := 0; i < n1; i++ {
		pooled.SetRow(i, x.RawRowView(i))
	}
	for i := 0; i < n2; i++ {
		pooled.SetRow(n1+i, y.RawRowView(i))
	}
	labels := make([]int, n)
	for i := n1; i < n; i++ {
		labels[i] = 1
	}

	dz, err := DistanceMatrix(pooled, norm)
	if err != nil {
		return nil, fmt.Errorf("DistributionTest: %w", err)
	}
	centered := doubleCenter(dz)

	// Stage 3: observed statistic and permutation null.
	stat := labelStat(centered, labels)

	null := make([]float64, boots)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for b := 0; b < boots; b++ {
		b := b
		eg.Go(func() error {
			rng := replicateRNG(opts.Seed, b)
			perm := append([]int(nil), labels...)
			shuffleInts(perm, rng)
			null[b] = labelStat(centered, perm)

			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()

	return &TestResult{Stat: stat, PValue: addOnePValue(stat, null), Null: null}, nil
}

// labelStat computes dcorr between an already-centered data distance matrix
// and the 0/1 group labels. Complexity: O(n²).
func labelStat(centered *mat.Dense, labels []int) float64 {
	n := len(labels)
	dy := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if labels[i] != labels[j] {
				dy.Set(i, j, 1)
			}
		}
	}

	return dcorrCentered(centered, doubleCenter(dy))
}

// addOnePValue computes (1 + #{null ≥ stat}) / (1 + B).
func addOnePValue(stat float64, null []float64) float64 {
	exceed := 0
	for _, v := range null {
		if v >= stat {
			exceed++
		}
	}

	return float64(1+exceed) / float64(1+len(null))
}

// resolveSampling applies the zero-value defaults of the sampling knobs and
// validates explicit settings.
func resolveSampling(bootstraps, workers int, norm float64) (int, int, float64, error) {
	if bootstraps < 0 {
		return 0, 0, 0, fmt.Errorf("bootstraps=%d: %w", bootstraps, ErrBadBootstraps)
	}
	if bootstraps == 0 {
		bootstraps = defaultBootstraps
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if norm == 0 {
		norm = defaultNorm
	}
	if norm < 1 {
		return 0, 0, 0, fmt.Errorf("norm=%g: %w", norm, ErrBadNorm)
	}

	return bootstraps, workers, norm, nil
}

// requireUndirected rejects nil, non-square, and asymmetric adjacencies.
func requireUndirected(a *mat.Dense) error {
	if a == nil {
		return ErrNilMatrix
	}
	n, c := a.Dims()
	if n != c {
		return fmt.Errorf("%dx%d: %w", n, c, ErrDirectedGraph)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.At(i, j) != a.At(j, i) {
				return ErrDirectedGraph
			}
		}
	}

	return nil
}
