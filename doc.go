// Package graspy is a statistics toolkit for graphs: generate random
// graphs from classic network models, embed their vertices into Euclidean
// space, and test hypotheses about the populations behind them.
//
// 🚀 What is graspy?
//
//	A spectral graph statistics library that brings together:
//		• Random graph models: Erdős–Rényi, stochastic block model, RDPG
//		• Spectral embeddings: adjacency spectral embedding (ASE)
//		• Joint embeddings: omnibus embedding of graph collections
//		• Dimension selection: profile-likelihood elbow of the spectrum
//		• Two-sample tests: latent distribution and latent position tests
//
// ✨ Why choose graspy?
//
//   - Deterministic – every sampler and bootstrap takes an explicit seed,
//     and results never depend on the worker count
//   - Matrix-native – adjacency matrices and embeddings are gonum Dense
//     matrices, ready for further linear algebra
//   - Explicit errors – invalid inputs return package sentinel errors that
//     callers match with errors.Is
//
// Everything is organized under three subpackages:
//
//	simulate/  — random graph samplers and latent position generators
//	embed/     — spectral embeddings, dimension selection, alignment
//	inference/ — two-sample hypothesis tests on graph pairs
//
// Quick example flow:
//
//	SBM draw ──▶ AdjacencySpectral ──▶ latent positions
//	graph pair ──▶ Omnibus ──▶ LatentPositionTest
//
// The examples/ directory holds runnable end-to-end walkthroughs.
//
//	go get github.com/codeaudit/graspy
package graspy
