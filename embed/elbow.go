// SPDX-License-Identifier: MIT
// Package embed - automatic dimension selection.
//
// elbow.go implements the Zhu–Ghodsi profile-likelihood method: for each
// candidate split q of the (descending) singular value profile, fit two
// normal groups with a pooled variance and score the profile log-likelihood;
// the maximizing q is an elbow. Later elbows are found by recursing on the
// tail after the previous elbow.
//
// Reference: Zhu & Ghodsi (2006), "Automatic dimensionality selection from
// the scree plot via the use of profile likelihood".
package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// minSigma floors the pooled standard deviation so that degenerate groups
// (identical values) keep a finite log-likelihood.
const minSigma = 1e-12

// zeroValueTol discards trailing singular values that are numerically zero
// before elbow analysis; they carry no scree information.
const zeroValueTol = 1e-10

// SelectDimension locates up to numElbows Zhu–Ghodsi elbows in a descending
// singular value profile. The returned slice holds 1-based dimension counts,
// one per elbow, in increasing order; the conventional choice of embedding
// dimension is the last entry. numElbows < 1 degrades to a single elbow, and
// profiles shorter than the requested elbow count return the elbows that
// exist.
//
// Errors: ErrTooFewValues when no positive values remain.
//
// Complexity: O(p²) time over p retained values, O(1) extra space.
func SelectDimension(values []float64, numElbows int) ([]int, error) {
	if numElbows < 1 {
		numElbows = 1
	}

	// Stage 1: keep the positive head of the profile.
	p := 0
	for p < len(values) && values[p] > zeroValueTol {
		p++
	}
	if p == 0 {
		return nil, fmt.Errorf("SelectDimension: %w", ErrTooFewValues)
	}

	// Stage 2: peel elbows off the head of the remaining profile.
	elbows := make([]int, 0, numElbows)
	start := 0
	for e := 0; e < numElbows && start < p; e++ {
		q := profileLikelihoodElbow(values[start:p])
		if q == 0 {
			break
		}
		start += q
		elbows = append(elbows, start)
	}
	if len(elbows) == 0 {
		return nil, fmt.Errorf("SelectDimension: %w", ErrTooFewValues)
	}

	return elbows, nil
}

// profileLikelihoodElbow returns the 1-based split maximizing the Zhu–Ghodsi
// profile log-likelihood of s, or len(s) when the profile cannot be split.
//
// Complexity: O(len(s)²).
func profileLikelihoodElbow(s []float64) int {
	p := len(s)
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}

	var (
		bestQ   = 1
		bestLik = math.Inf(-1)
		q       int
	)
	for q = 1; q < p; q++ {
		lik := splitLogLikelihood(s[:q], s[q:])
		if lik > bestLik {
			bestLik = lik
			bestQ = q
		}
	}

	return bestQ
}

// splitLogLikelihood scores one candidate split: both groups are modeled as
// normal with their own means and a pooled variance.
func splitLogLikelihood(head, tail []float64) float64 {
	var (
		muHead = stat.Mean(head, nil)
		muTail = stat.Mean(tail, nil)
		n      = len(head) + len(tail)
	)

	// Pooled variance over both groups; sample variance needs ≥ 2 points
	// in total, and singleton groups contribute zero sum of squares.
	ss := 0.0
	for _, v := range head {
		ss += (v - muHead) * (v - muHead)
	}
	for _, v := range tail {
		ss += (v - muTail) * (v - muTail)
	}
	sigma := minSigma
	if n > 2 {
		if s := math.Sqrt(ss / float64(n-2)); s > sigma {
			sigma = s
		}
	}

	headDist := distuv.Normal{Mu: muHead, Sigma: sigma}
	tailDist := distuv.Normal{Mu: muTail, Sigma: sigma}

	lik := 0.0
	for _, v := range head {
		lik += headDist.LogProb(v)
	}
	for _, v := range tail {
		lik += tailDist.LogProb(v)
	}

	return lik
}
