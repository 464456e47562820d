// SPDX-License-Identifier: MIT
// Package simulate - random dot product graph sampler and latent generators.
//
// rdpg.go implements the RDPG model: given latent positions X (n×d), the
// edge probability between vertices i and j is ⟨xᵢ, xⱼ⟩. Inner products that
// leave [0,1] are clamped rather than rejected, so arbitrary latent inputs
// remain usable; generators that guarantee valid products (DirichletLatent)
// are provided alongside.
package simulate

import (
	"fmt"
	"math"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// RDPG samples a random dot product graph from latent positions x (n×d):
// P = XXᵀ clamped to [0,1], then one Bernoulli trial per admissible pair.
//
// Errors: ErrNilMatrix, ErrBadLatent, plus SampleP validation errors.
//
// Complexity: O(n²·d) for the Gram matrix, O(n²) trials.
func RDPG(x *mat.Dense, opts ...Option) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("RDPG: %w", ErrNilMatrix)
	}
	n, d := x.Dims()
	if n < minVertices || d < 1 {
		return nil, fmt.Errorf("RDPG: latent positions are %dx%d: %w", n, d, ErrBadLatent)
	}

	// Gram matrix of latent positions, clamped into probability range.
	p := mat.NewDense(n, n, nil)
	p.Mul(x, x.T())

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = p.At(i, j)
			if math.IsNaN(v) {
				return nil, fmt.Errorf("RDPG: NaN inner product at (%d,%d): %w", i, j, ErrBadLatent)
			}
			if v < 0 {
				p.Set(i, j, 0)
			} else if v > 1 {
				p.Set(i, j, 1)
			}
		}
	}

	a, err := SampleP(p, opts...)
	if err != nil {
		return nil, fmt.Errorf("RDPG: %w", err)
	}

	return a, nil
}

// DirichletLatent draws n latent positions i.i.d. from a Dirichlet(alpha)
// distribution. Rows live on the probability simplex, so every pairwise
// inner product lies in [0,1] and the positions are valid RDPG input as-is.
//
// Validation: n ≥ 1, len(alpha) ≥ 2, every alpha[i] > 0 (ErrBadLatent).
// Deterministic per (n, alpha, seed); seed 0 keeps the default seed.
//
// Complexity: O(n·len(alpha)).
func DirichletLatent(n int, alpha []float64, seed int64) (*mat.Dense, error) {
	if n < minVertices {
		return nil, fmt.Errorf("DirichletLatent: n=%d: %w", n, ErrTooFewVertices)
	}
	if len(alpha) < 2 {
		return nil, fmt.Errorf("DirichletLatent: len(alpha)=%d < 2: %w", len(alpha), ErrBadLatent)
	}
	for i, a := range alpha {
		if !(a > 0) {
			return nil, fmt.Errorf("DirichletLatent: alpha[%d]=%g: %w", i, a, ErrBadLatent)
		}
	}

	dir := distmv.NewDirichlet(alpha, exprand.NewSource(exprandSeed(seed)))
	d := len(alpha)
	x := mat.NewDense(n, d, nil)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		dir.Rand(row)
		x.SetRow(i, row)
	}

	return x, nil
}

// UniformLatent draws an n×d matrix of i.i.d. Uniform(lo, hi) coordinates.
// Callers are responsible for choosing bounds whose inner products are
// meaningful probabilities; RDPG clamps out-of-range products regardless.
//
// Validation: n, d ≥ 1, lo < hi, both finite (ErrBadLatent).
//
// Complexity: O(n·d).
func UniformLatent(n, d int, lo, hi float64, seed int64) (*mat.Dense, error) {
	if n < minVertices || d < 1 {
		return nil, fmt.Errorf("UniformLatent: %dx%d: %w", n, d, ErrBadLatent)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, fmt.Errorf("UniformLatent: bounds [%g,%g): %w", lo, hi, ErrBadLatent)
	}

	u := distuv.Uniform{Min: lo, Max: hi, Src: exprand.NewSource(exprandSeed(seed))}
	x := mat.NewDense(n, d, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			x.Set(i, j, u.Rand())
		}
	}

	return x, nil
}
