package embed

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for spectral embedding.
var (
	// ErrNilMatrix indicates a nil adjacency matrix argument.
	ErrNilMatrix = errors.New("embed: nil matrix")

	// ErrNonSquare indicates a non-square adjacency matrix.
	ErrNonSquare = errors.New("embed: matrix is not square")

	// ErrEmptyGraph indicates a graph with no edges or fewer than two
	// vertices; its spectrum carries no embeddable signal.
	ErrEmptyGraph = errors.New("embed: graph is empty")

	// ErrDimTooLarge indicates a requested dimension above the matrix order.
	ErrDimTooLarge = errors.New("embed: embedding dimension exceeds order")

	// ErrNoGraphs indicates fewer than two graphs passed to Omnibus.
	ErrNoGraphs = errors.New("embed: omnibus needs at least two graphs")

	// ErrOrderMismatch indicates omnibus inputs with differing vertex counts.
	ErrOrderMismatch = errors.New("embed: graph orders differ")

	// ErrDirectedOmni indicates an asymmetric adjacency passed to Omnibus,
	// which is defined for undirected graphs only.
	ErrDirectedOmni = errors.New("embed: omnibus requires undirected graphs")

	// ErrTooFewValues indicates a singular value profile too short for
	// elbow selection.
	ErrTooFewValues = errors.New("embed: too few singular values")

	// ErrDecompFailed indicates that the SVD did not converge.
	ErrDecompFailed = errors.New("embed: decomposition failed")

	// ErrShapeMismatch indicates alignment inputs with incompatible shapes.
	ErrShapeMismatch = errors.New("embed: shape mismatch")
)

// defaultNumElbows is the Zhu–Ghodsi elbow count used when Options.NumElbows
// is unset; the last elbow found is the selected dimension.
const defaultNumElbows = 2

// Options configures spectral embedding.
//
// Fields:
//   - Dim       — embedding dimension; 0 selects automatically via
//     SelectDimension on the singular value profile.
//   - NumElbows — elbows to locate during automatic selection (0 ⇒ 2).
//   - Augment   — replace the adjacency diagonal with degreeᵢ/(n−1) before
//     decomposing. Reduces the bias of ASE on hollow matrices.
type Options struct {
	Dim       int
	NumElbows int
	Augment   bool
}

// DefaultOptions returns the canonical embedding configuration:
// automatic dimension, two elbows, diagonal augmentation on.
func DefaultOptions() Options {
	return Options{Dim: 0, NumElbows: defaultNumElbows, Augment: true}
}

// Embedding is the result of AdjacencySpectral.
//
// X holds one latent position per row (n×Dim). Y is non-nil only for
// directed input, holding the out-positions from the right singular vectors.
// Values are the retained singular values, in non-increasing order.
type Embedding struct {
	X      *mat.Dense
	Y      *mat.Dense
	Values []float64
	Dim    int
}

// OmniEmbedding is the result of Omnibus: one n×Dim latent block per input
// graph, all expressed in a single shared coordinate system.
type OmniEmbedding struct {
	Graphs []*mat.Dense
	Values []float64
	Dim    int
}
