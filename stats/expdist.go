// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExponentialDist is an exponential distribution with rate parameter
// Rate (mean 1/Rate).
type ExponentialDist struct {
	rate float64
}

var _ Continuous = ExponentialDist{}
var _ Moments = ExponentialDist{}
var _ Estimable[float64, ExponentialDist] = ExponentialDist{}

// NewExponentialDist returns an exponential distribution with the
// given rate. rate must be > 0.
func NewExponentialDist(rate float64) (ExponentialDist, error) {
	if !(rate > 0) {
		return ExponentialDist{}, invalidParam("ExponentialDist", "rate %v must be > 0", rate)
	}
	return ExponentialDist{rate}, nil
}

func (d ExponentialDist) Rate() float64 { return d.rate }

func (d ExponentialDist) String() string {
	return fmt.Sprintf("Exponential(λ=%v)", d.rate)
}

func (d ExponentialDist) dist(rng *rand.Rand) distuv.Exponential {
	return distuv.Exponential{Rate: d.rate, Src: srcOf(rng)}
}

func (d ExponentialDist) PDF(x float64) float64 {
	return d.dist(nil).Prob(x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	return d.dist(nil).CDF(x)
}

func (d ExponentialDist) Quantile(p float64) (float64, error) {
	if err := checkProb("ExponentialDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d ExponentialDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

func (d ExponentialDist) Mean() float64     { return 1 / d.rate }
func (d ExponentialDist) Variance() float64 { return 1 / (d.rate * d.rate) }
func (d ExponentialDist) Skewness() float64 { return 2 }
func (d ExponentialDist) Kurtosis() float64 { return 6 }

// MLE returns the exponential distribution whose rate is the
// reciprocal of the mean of xs. Every observation must be >= 0.
func (ExponentialDist) MLE(xs []float64) (ExponentialDist, error) {
	if len(xs) == 0 {
		return ExponentialDist{}, emptySample("ExponentialDist")
	}
	for _, x := range xs {
		if !(x >= 0) || math.IsInf(x, 1) {
			return ExponentialDist{}, invalidParam("ExponentialDist", "MLE observation %v must be finite and >= 0", x)
		}
	}
	mean := Sample{Xs: xs}.Mean()
	if !(mean > 0) {
		return ExponentialDist{}, invalidParam("ExponentialDist", "MLE sample mean %v must be > 0", mean)
	}
	return NewExponentialDist(1 / mean)
}
