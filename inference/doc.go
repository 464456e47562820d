// Package inference runs two-sample hypothesis tests on graphs via their
// estimated latent positions.
//
// Two tests are provided:
//
//   - LatentDistributionTest — nonparametric. H0: the latent position
//     distributions of the two graphs agree up to an orthogonal
//     transformation. Both graphs are embedded (package embed), aligned,
//     pooled, and scored with distance correlation between points and group
//     labels; the null distribution comes from label permutations.
//     Vertex counts may differ between the graphs.
//
//   - LatentPositionTest — semiparametric. H0: the two graphs share one
//     latent position matrix. The pair is omnibus-embedded, scored by the
//     Frobenius distance between the two blocks, and the null distribution
//     comes from a parametric bootstrap: graph pairs resampled from the
//     RDPG fitted to the first graph (package simulate).
//
// Both tests report the observed statistic, the full null sample, and the
// add-one permutation p-value (b+1)/(B+1), whose floor is 1/(B+1) — a
// permutation test can never return p = 0.
//
// Determinism and parallelism:
//
//	Replicates run on a bounded worker pool, but each replicate derives its
//	own RNG stream from (Seed, replicate index), so results are identical
//	for any Workers setting.
//
// Usage:
//
//	res, err := inference.LatentDistributionTest(a1, a2, inference.DefaultDistributionOptions())
//	if err != nil {
//	  // handle ErrDirectedGraph, ErrTooFewSamples, ...
//	}
//	fmt.Println(res.Stat, res.PValue)
package inference
