package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/codeaudit/graspy/simulate"
)

// TestSampleP_Validation covers the sentinel errors of the sampling kernel.
func TestSampleP_Validation(t *testing.T) {
	_, err := simulate.SampleP(nil)
	assert.ErrorIs(t, err, simulate.ErrNilMatrix, "nil matrix must error")

	_, err = simulate.SampleP(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, simulate.ErrNonSquare, "non-square matrix must error")

	bad := mat.NewDense(2, 2, []float64{0.5, 1.5, 1.5, 0.5})
	_, err = simulate.SampleP(bad)
	assert.ErrorIs(t, err, simulate.ErrInvalidProbability, "entry > 1 must error")

	asym := mat.NewDense(2, 2, []float64{0, 0.2, 0.8, 0})
	_, err = simulate.SampleP(asym)
	assert.ErrorIs(t, err, simulate.ErrAsymmetric, "asymmetric undirected input must error")

	// The same matrix is fine once the model is directed.
	_, err = simulate.SampleP(asym, simulate.WithDirected())
	assert.NoError(t, err, "asymmetric input is valid for directed sampling")
}

// TestSampleP_SymmetricHollow verifies the structural invariants of an
// undirected sample: exact symmetry, zero diagonal, 0/1 entries.
func TestSampleP_SymmetricHollow(t *testing.T) {
	n := 40
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 0.3
	}
	a, err := simulate.SampleP(mat.NewDense(n, n, data), simulate.WithSeed(11))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		assert.Zero(t, a.At(i, i), "diagonal must stay empty without WithLoops")
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			assert.True(t, v == 0 || v == 1, "entries must be 0/1")
			assert.Equal(t, v, a.At(j, i), "undirected sample must be symmetric")
		}
	}
}

// TestSampleP_Deterministic verifies that a fixed seed reproduces the sample.
func TestSampleP_Deterministic(t *testing.T) {
	n := 30
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 0.5
	}
	p := mat.NewDense(n, n, data)

	a1, err := simulate.SampleP(p, simulate.WithSeed(42))
	require.NoError(t, err)
	a2, err := simulate.SampleP(p, simulate.WithSeed(42))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a1, a2), "same seed must reproduce the sample exactly")

	a3, err := simulate.SampleP(p, simulate.WithSeed(43))
	require.NoError(t, err)
	assert.False(t, mat.Equal(a1, a3), "different seeds should diverge at n=30, p=0.5")
}

// TestSampleP_SeedZeroDefault verifies that seed 0, no seed option, and the
// fixed default seed all name the same deterministic sample.
func TestSampleP_SeedZeroDefault(t *testing.T) {
	zero, err := simulate.ER(20, 0.5, simulate.WithSeed(0))
	require.NoError(t, err)
	unset, err := simulate.ER(20, 0.5)
	require.NoError(t, err)
	one, err := simulate.ER(20, 0.5, simulate.WithSeed(1))
	require.NoError(t, err)

	assert.True(t, mat.Equal(zero, unset), "seed 0 must equal the unseeded default")
	assert.True(t, mat.Equal(zero, one), "the default seed is fixed, never time-based")
}

// TestSampleP_SingleVertex pins the smallest graph: one vertex with loops
// disabled has no admissible pair, so the sample is the 1x1 zero matrix.
func TestSampleP_SingleVertex(t *testing.T) {
	a, err := simulate.SampleP(mat.NewDense(1, 1, []float64{1}), simulate.WithSeed(2))
	require.NoError(t, err)

	r, c := a.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Zero(t, a.At(0, 0), "no loops means the lone diagonal entry stays empty")
}

// TestER_Extremes pins the deterministic p=0 and p=1 cases.
func TestER_Extremes(t *testing.T) {
	empty, err := simulate.ER(10, 0, simulate.WithSeed(3))
	require.NoError(t, err)
	full, err := simulate.ER(10, 1, simulate.WithSeed(3))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			assert.Zero(t, empty.At(i, j), "p=0 must produce the empty graph")
			if i != j {
				assert.Equal(t, 1.0, full.At(i, j), "p=1 must produce the complete graph")
			} else {
				assert.Zero(t, full.At(i, j), "p=1 keeps a hollow diagonal")
			}
		}
	}
}

// TestER_Validation covers parameter domain errors.
func TestER_Validation(t *testing.T) {
	_, err := simulate.ER(0, 0.5)
	assert.ErrorIs(t, err, simulate.ErrTooFewVertices)

	_, err = simulate.ER(5, -0.1)
	assert.ErrorIs(t, err, simulate.ErrInvalidProbability)

	_, err = simulate.ER(5, 1.1)
	assert.ErrorIs(t, err, simulate.ErrInvalidProbability)
}

// TestSampleP_Loops verifies the diagonal trial policy.
func TestSampleP_Loops(t *testing.T) {
	// Probability 1 everywhere: with loops every diagonal entry must appear.
	n := 6
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 1
	}
	a, err := simulate.SampleP(mat.NewDense(n, n, data), simulate.WithLoops(), simulate.WithSeed(5))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, a.At(i, i), "loops with p=1 must fill the diagonal")
	}
}
