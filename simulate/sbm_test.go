package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/codeaudit/graspy/simulate"
)

// TestSBM_Validation covers block structure and probability domain errors.
func TestSBM_Validation(t *testing.T) {
	probs := mat.NewDense(2, 2, []float64{0.5, 0.2, 0.2, 0.5})

	_, err := simulate.SBM(nil, probs)
	assert.ErrorIs(t, err, simulate.ErrTooFewVertices, "no blocks must error")

	_, err = simulate.SBM([]int{10, 0}, probs)
	assert.ErrorIs(t, err, simulate.ErrTooFewVertices, "empty block must error")

	_, err = simulate.SBM([]int{10, 10}, nil)
	assert.ErrorIs(t, err, simulate.ErrNilMatrix, "nil probs must error")

	_, err = simulate.SBM([]int{10, 10, 10}, probs)
	assert.ErrorIs(t, err, simulate.ErrBlockMismatch, "2x2 probs with 3 blocks must error")

	bad := mat.NewDense(2, 2, []float64{0.5, 2, 2, 0.5})
	_, err = simulate.SBM([]int{5, 5}, bad)
	assert.ErrorIs(t, err, simulate.ErrInvalidProbability, "probability 2 must error")

	asym := mat.NewDense(2, 2, []float64{0.5, 0.1, 0.9, 0.5})
	_, err = simulate.SBM([]int{5, 5}, asym)
	assert.ErrorIs(t, err, simulate.ErrAsymmetric, "asymmetric undirected probs must error")
}

// TestSBM_BlockStructure samples a deterministic SBM (probabilities 0/1) and
// checks that the block layout drives edge placement.
func TestSBM_BlockStructure(t *testing.T) {
	// Within-block probability 1, across-block 0: two disjoint cliques.
	probs := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	a, err := simulate.SBM([]int{4, 6}, probs, simulate.WithSeed(9))
	require.NoError(t, err)

	labels := simulate.BlockLabels([]int{4, 6})
	n, _ := a.Dims()
	require.Equal(t, 10, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i != j && labels[i] == labels[j] {
				want = 1.0
			}
			assert.Equal(t, want, a.At(i, j), "edge (%d,%d) must follow block membership", i, j)
		}
	}
}

// TestSBM_Deterministic verifies seed reproducibility through delegation.
func TestSBM_Deterministic(t *testing.T) {
	probs := mat.NewDense(2, 2, []float64{0.6, 0.2, 0.2, 0.6})

	a1, err := simulate.SBM([]int{20, 20}, probs, simulate.WithSeed(77))
	require.NoError(t, err)
	a2, err := simulate.SBM([]int{20, 20}, probs, simulate.WithSeed(77))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a1, a2), "same seed must reproduce the SBM sample")
}

// TestBlockLabels checks label layout and the invalid-size policy.
func TestBlockLabels(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 1, 1}, simulate.BlockLabels([]int{2, 3}))
	assert.Nil(t, simulate.BlockLabels([]int{2, 0}), "invalid sizes yield nil")
}
