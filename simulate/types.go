// Package simulate — sentinel errors and sampler options.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context via fmt.Errorf("Op: ...: %w", err).
//   - Samplers never panic at runtime.
package simulate

import "errors"

// Sentinel errors for graph sampling.
var (
	// ErrTooFewVertices indicates a vertex or block count below the minimum.
	ErrTooFewVertices = errors.New("simulate: too few vertices")

	// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("simulate: probability not in [0,1]")

	// ErrBlockMismatch indicates that the block-probability matrix shape does not
	// match the number of blocks.
	ErrBlockMismatch = errors.New("simulate: block matrix shape mismatch")

	// ErrNonSquare indicates a non-square probability matrix.
	ErrNonSquare = errors.New("simulate: matrix is not square")

	// ErrAsymmetric indicates an asymmetric probability matrix for an undirected model.
	ErrAsymmetric = errors.New("simulate: matrix is not symmetric")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("simulate: nil matrix")

	// ErrBadLatent indicates invalid latent position parameters.
	ErrBadLatent = errors.New("simulate: bad latent position input")
)

// config is the resolved sampler configuration. It is immutable once built;
// samplers read it and never write back.
type config struct {
	seed     int64 // RNG seed; 0 maps to the fixed default seed
	directed bool  // sample ordered pairs instead of mirroring
	loops    bool  // permit self-loops (diagonal Bernoulli trials)
}

// Option configures a sampler before it draws anything.
type Option func(*config)

// WithSeed fixes the RNG seed. Seed 0 keeps the deterministic default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithDirected samples every ordered vertex pair independently instead of
// mirroring the upper triangle.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithLoops permits self-loops: diagonal entries get their own Bernoulli trial.
func WithLoops() Option {
	return func(c *config) { c.loops = true }
}

// newConfig resolves options into a config. Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
