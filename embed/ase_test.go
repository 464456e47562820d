package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/codeaudit/graspy/embed"
)

// TestAdjacencySpectral_Validation covers the input sentinels.
func TestAdjacencySpectral_Validation(t *testing.T) {
	opts := embed.DefaultOptions()

	_, err := embed.AdjacencySpectral(nil, opts)
	assert.ErrorIs(t, err, embed.ErrNilMatrix)

	_, err = embed.AdjacencySpectral(mat.NewDense(2, 3, nil), opts)
	assert.ErrorIs(t, err, embed.ErrNonSquare)

	_, err = embed.AdjacencySpectral(mat.NewDense(4, 4, nil), opts)
	assert.ErrorIs(t, err, embed.ErrEmptyGraph, "edgeless graph has no embeddable signal")

	tiny := mat.NewDense(1, 1, []float64{1})
	_, err = embed.AdjacencySpectral(tiny, opts)
	assert.ErrorIs(t, err, embed.ErrEmptyGraph, "single vertex is rejected")

	big := mat.NewDense(3, 3, []float64{0, 1, 0, 1, 0, 1, 0, 1, 0})
	_, err = embed.AdjacencySpectral(big, embed.Options{Dim: 5})
	assert.ErrorIs(t, err, embed.ErrDimTooLarge)
}

// TestAdjacencySpectral_ExactReconstruction feeds a rank-2 Gram matrix
// A = XXᵀ and verifies that the rank-2 embedding reconstructs A exactly
// (the defining property of the spectral estimate).
func TestAdjacencySpectral_ExactReconstruction(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		0.5, 0.5,
	})
	var a mat.Dense
	a.Mul(x, x.T())

	emb, err := embed.AdjacencySpectral(mat.DenseCopyOf(&a), embed.Options{Dim: 2})
	require.NoError(t, err)
	require.Equal(t, 2, emb.Dim)
	require.Nil(t, emb.Y, "symmetric input must not produce out-positions")
	require.Len(t, emb.Values, 2)
	assert.GreaterOrEqual(t, emb.Values[0], emb.Values[1], "values are non-increasing")

	var recon mat.Dense
	recon.Mul(emb.X, emb.X.T())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, a.At(i, j), recon.At(i, j), 1e-9,
				"X̂X̂ᵀ must reconstruct a rank-2 Gram matrix at (%d,%d)", i, j)
		}
	}
}

// TestAdjacencySpectral_Directed checks that asymmetric input yields both
// position sets and that X̂Ŷᵀ reconstructs a rank-1 matrix.
func TestAdjacencySpectral_Directed(t *testing.T) {
	// Rank-1 asymmetric matrix A = x·yᵀ with positive entries.
	xv := mat.NewDense(3, 1, []float64{1, 2, 3})
	yv := mat.NewDense(3, 1, []float64{1, 0.5, 0.25})
	var a mat.Dense
	a.Mul(xv, yv.T())

	emb, err := embed.AdjacencySpectral(mat.DenseCopyOf(&a), embed.Options{Dim: 1})
	require.NoError(t, err)
	require.NotNil(t, emb.Y, "asymmetric input must produce out-positions")

	var recon mat.Dense
	recon.Mul(emb.X, emb.Y.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, a.At(i, j), recon.At(i, j), 1e-9,
				"X̂Ŷᵀ must reconstruct a rank-1 matrix at (%d,%d)", i, j)
		}
	}
}

// TestAdjacencySpectral_AutoDim embeds a two-block SBM expectation matrix
// and verifies that elbow selection lands on a small dimension.
func TestAdjacencySpectral_AutoDim(t *testing.T) {
	// Expected adjacency of a strong two-block model has rank 2, so the
	// scree collapses after the second value.
	n := 20
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if (i < n/2) == (j < n/2) {
				a.Set(i, j, 0.9)
			} else {
				a.Set(i, j, 0.1)
			}
		}
	}

	emb, err := embed.AdjacencySpectral(a, embed.Options{NumElbows: 1, Augment: true})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, emb.Dim, 2, "both block dimensions carry signal")
	assert.LessOrEqual(t, emb.Dim, 3, "rank-2 structure must not inflate the dimension")

	nx, d := emb.X.Dims()
	assert.Equal(t, n, nx)
	assert.Equal(t, emb.Dim, d)
}

// TestAdjacencySpectral_ZeroElbowsDefaults verifies that NumElbows 0 means
// the canonical two-elbow selection, not the single-elbow degrade.
func TestAdjacencySpectral_ZeroElbowsDefaults(t *testing.T) {
	n := 20
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if (i < n/2) == (j < n/2) {
				a.Set(i, j, 0.9)
			} else {
				a.Set(i, j, 0.1)
			}
		}
	}

	zero, err := embed.AdjacencySpectral(a, embed.Options{Augment: true})
	require.NoError(t, err)
	two, err := embed.AdjacencySpectral(a, embed.Options{NumElbows: 2, Augment: true})
	require.NoError(t, err)

	assert.Equal(t, two.Dim, zero.Dim, "NumElbows 0 must resolve to two elbows")
}

// TestAugmentDiagonal pins the degree/(n-1) diagonal on a path graph.
func TestAugmentDiagonal(t *testing.T) {
	// Path 0—1—2: degrees 1, 2, 1.
	a := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})
	out, err := embed.AugmentDiagonal(a)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, out.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, out.At(1, 1), 1e-12)
	assert.InDelta(t, 0.5, out.At(2, 2), 1e-12)
	assert.Equal(t, 1.0, out.At(0, 1), "off-diagonal entries are untouched")
	assert.Zero(t, a.At(0, 0), "input must not be mutated")

	_, err = embed.AugmentDiagonal(nil)
	assert.ErrorIs(t, err, embed.ErrNilMatrix)
}
