package embed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/codeaudit/graspy/embed"
)

// TestSignFlips_RestoresNegatedColumn verifies that negating one dimension
// is undone against the original reference.
func TestSignFlips_RestoresNegatedColumn(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0.5,
		2, -0.25,
		-0.5, 1,
		0.25, 2,
	})

	flipped := mat.DenseCopyOf(x)
	for i := 0; i < 4; i++ {
		flipped.Set(i, 1, -flipped.At(i, 1))
	}

	for _, crit := range []embed.FlipCriterion{embed.FlipLargest, embed.FlipMedian} {
		out, err := embed.SignFlips(flipped, x, crit)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(out, x, 1e-12),
			"criterion %v must restore the negated column", crit)
	}
}

// TestSignFlips_AllowsDifferentRowCounts verifies the shape contract: only
// column counts must match.
func TestSignFlips_AllowsDifferentRowCounts(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3})
	ref := mat.NewDense(5, 2, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1})

	_, err := embed.SignFlips(x, ref, embed.FlipLargest)
	assert.NoError(t, err)

	bad := mat.NewDense(5, 3, nil)
	_, err = embed.SignFlips(x, bad, embed.FlipLargest)
	assert.ErrorIs(t, err, embed.ErrShapeMismatch)

	_, err = embed.SignFlips(nil, ref, embed.FlipLargest)
	assert.ErrorIs(t, err, embed.ErrNilMatrix)
}

// TestProcrustes_RecoversRotation rotates a point set by a known orthogonal
// matrix and checks that Procrustes maps it back.
func TestProcrustes_RecoversRotation(t *testing.T) {
	x := mat.NewDense(5, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 0.5,
		0.5, 2,
	})

	theta := math.Pi / 5
	q := mat.NewDense(2, 2, []float64{
		math.Cos(theta), -math.Sin(theta),
		math.Sin(theta), math.Cos(theta),
	})
	var rotated mat.Dense
	rotated.Mul(x, q)

	out, err := embed.Procrustes(&rotated, x)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(out, x, 1e-9), "Procrustes must undo an orthogonal rotation")
}

// TestProcrustes_ShapeContract rejects mismatched shapes and nil input.
func TestProcrustes_ShapeContract(t *testing.T) {
	x := mat.NewDense(4, 2, nil)
	y := mat.NewDense(5, 2, nil)

	_, err := embed.Procrustes(x, y)
	assert.ErrorIs(t, err, embed.ErrShapeMismatch)

	_, err = embed.Procrustes(nil, y)
	assert.ErrorIs(t, err, embed.ErrNilMatrix)
}
