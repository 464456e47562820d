package inference

import (
	"errors"
	"runtime"

	"github.com/codeaudit/graspy/embed"
)

// Sentinel errors for two-sample testing.
var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("inference: nil matrix")

	// ErrTooFewSamples indicates a pooled sample too small to test.
	ErrTooFewSamples = errors.New("inference: too few samples")

	// ErrDimMismatch indicates incompatible column dimensions.
	ErrDimMismatch = errors.New("inference: dimension mismatch")

	// ErrBadBootstraps indicates a non-positive replicate count.
	ErrBadBootstraps = errors.New("inference: bootstraps must be positive")

	// ErrBadNorm indicates a Minkowski norm order below 1.
	ErrBadNorm = errors.New("inference: norm order must be >= 1")

	// ErrOrderMismatch indicates graphs whose vertex counts must agree but do not.
	ErrOrderMismatch = errors.New("inference: graph orders differ")

	// ErrDirectedGraph indicates an asymmetric adjacency where an undirected
	// graph is required.
	ErrDirectedGraph = errors.New("inference: graph must be undirected")
)

// Alignment selects how the two embeddings are reconciled before the
// distribution test; embeddings are only identified up to an orthogonal map.
type Alignment int

const (
	// AlignSignFlips calibrates per-dimension signs (largest-magnitude
	// criterion). Works for unequal vertex counts. The default.
	AlignSignFlips Alignment = iota

	// AlignProcrustes solves the full orthogonal Procrustes problem.
	// Requires equal vertex counts.
	AlignProcrustes

	// AlignNone skips alignment. Use when positions are already comparable,
	// e.g. both taken from one omnibus embedding.
	AlignNone
)

// Defaults shared by both tests.
const (
	defaultBootstraps = 200
	defaultNorm       = 2.0
	minPooledSamples  = 4
)

// TestResult is the outcome of a two-sample test.
type TestResult struct {
	// Stat is the observed test statistic.
	Stat float64

	// PValue is the add-one estimate (b+1)/(B+1), never zero.
	PValue float64

	// Null holds every replicate statistic, indexed by replicate.
	Null []float64
}

// DistributionOptions configures LatentDistributionTest / DistributionTest.
//
// Zero values mean: Bootstraps 200, Workers GOMAXPROCS, Norm 2 (Euclidean),
// Seed deterministic default, sign-flip alignment, automatic embedding
// dimension with diagonal augmentation.
type DistributionOptions struct {
	Bootstraps int
	Workers    int
	Seed       int64
	Norm       float64
	Align      Alignment
	Embed      embed.Options
}

// DefaultDistributionOptions returns the canonical configuration.
func DefaultDistributionOptions() DistributionOptions {
	return DistributionOptions{
		Bootstraps: defaultBootstraps,
		Workers:    runtime.GOMAXPROCS(0),
		Norm:       defaultNorm,
		Align:      AlignSignFlips,
		Embed:      embed.DefaultOptions(),
	}
}

// PositionOptions configures LatentPositionTest.
type PositionOptions struct {
	Bootstraps int
	Workers    int
	Seed       int64
	Embed      embed.Options
}

// DefaultPositionOptions returns the canonical configuration.
func DefaultPositionOptions() PositionOptions {
	return PositionOptions{
		Bootstraps: defaultBootstraps,
		Workers:    runtime.GOMAXPROCS(0),
		Embed:      embed.DefaultOptions(),
	}
}
