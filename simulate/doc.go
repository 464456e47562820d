// Package simulate samples random graphs from classical statistical models:
//
//   - ER(n, p)              — Erdős–Rényi G(n,p)
//   - SBM(sizes, probs)     — stochastic block model
//   - RDPG(x)               — random dot product graph, P = XXᵀ
//   - SampleP(p)            — Bernoulli sampling from any edge-probability matrix
//
// Graphs are returned as dense 0/1 adjacency matrices (gonum *mat.Dense),
// ready for the spectral routines in package embed.
//
// Determinism is a contract: every sampler takes WithSeed and produces an
// identical matrix for identical inputs and options. Edge trials run in a
// fixed order (i ascending, then j ascending; undirected graphs restrict to
// j > i and mirror). Seed 0 maps to a fixed default seed, never to time.
//
// Latent position generators (DirichletLatent, UniformLatent) produce valid
// RDPG inputs: Dirichlet rows live on the simplex, so every pairwise inner
// product already lies in [0,1].
//
// Usage:
//
//	probs := mat.NewDense(2, 2, []float64{0.5, 0.2, 0.2, 0.5})
//	a, err := simulate.SBM([]int{50, 50}, probs, simulate.WithSeed(7))
//	if err != nil {
//	  // handle ErrBlockMismatch, ErrInvalidProbability, ...
//	}
package simulate
