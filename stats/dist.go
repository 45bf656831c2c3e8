// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

// A Sampler draws independent values from a distribution.
type Sampler[T any] interface {
	// Sample returns n independent draws from the distribution
	// using rng, or the default generator if rng is nil. n must
	// be at least 1.
	Sample(rng *rand.Rand, n int) []T
}

// A Discrete is a distribution over a countable set of values.
type Discrete[T any] interface {
	Sampler[T]

	// PMF returns the probability mass of x.
	PMF(x T) float64

	// CDF returns the probability that a draw is <= x.
	CDF(x T) float64
}

// A Continuous is a continuous distribution over the reals.
type Continuous interface {
	Sampler[float64]

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// Quantile returns the inverse of the CDF for p. That is,
	// Quantile(CDF(x)) = x. If p is not in [0, 1], it returns
	// an error matching ErrInvalidProbability.
	Quantile(p float64) (float64, error)
}

// Moments is implemented by distributions whose first four moments
// exist for every valid parameterization.
type Moments interface {
	Mean() float64
	Variance() float64
	Skewness() float64

	// Kurtosis returns the excess kurtosis, which is 0 for a
	// normal distribution.
	Kurtosis() float64
}

// OptionalMoments is implemented by distributions whose moments exist
// only for some parameters. Each method returns false if the moment
// is undefined. A moment that diverges is defined and returns +Inf.
type OptionalMoments interface {
	Mean() (float64, bool)
	Variance() (float64, bool)
	Skewness() (float64, bool)
	Kurtosis() (float64, bool)
}

// Estimable is implemented by distributions with a maximum
// likelihood estimator. MLE ignores its receiver and returns a new
// distribution D fit to xs.
type Estimable[T any, D any] interface {
	MLE(xs []T) (D, error)
}
