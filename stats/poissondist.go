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

// PoissonDist is a Poisson distribution with rate Lambda.
type PoissonDist struct {
	lambda float64
}

var _ Discrete[int] = PoissonDist{}
var _ Moments = PoissonDist{}
var _ Estimable[int, PoissonDist] = PoissonDist{}

// NewPoissonDist returns a Poisson distribution with mean lambda.
// lambda must be > 0.
func NewPoissonDist(lambda float64) (PoissonDist, error) {
	if !(lambda > 0) {
		return PoissonDist{}, invalidParam("PoissonDist", "rate %v must be > 0", lambda)
	}
	return PoissonDist{lambda}, nil
}

func (d PoissonDist) Lambda() float64 { return d.lambda }

func (d PoissonDist) String() string {
	return fmt.Sprintf("Poisson(λ=%v)", d.lambda)
}

func (d PoissonDist) dist(rng *rand.Rand) distuv.Poisson {
	return distuv.Poisson{Lambda: d.lambda, Src: srcOf(rng)}
}

// PMF returns the probability of exactly k events.
func (d PoissonDist) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	return d.dist(nil).Prob(float64(k))
}

// CDF returns the probability of k or fewer events.
func (d PoissonDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return d.dist(nil).CDF(float64(k))
}

func (d PoissonDist) Sample(rng *rand.Rand, n int) []int {
	return sample(rng, n, func(rng *rand.Rand) int {
		return int(d.dist(rng).Rand())
	})
}

func (d PoissonDist) Mean() float64     { return d.lambda }
func (d PoissonDist) Variance() float64 { return d.lambda }
func (d PoissonDist) Skewness() float64 { return 1 / math.Sqrt(d.lambda) }
func (d PoissonDist) Kurtosis() float64 { return 1 / d.lambda }

// MLE returns the Poisson distribution whose rate is the mean of ks.
// Every observation must be >= 0 and at least one must be positive.
func (PoissonDist) MLE(ks []int) (PoissonDist, error) {
	if len(ks) == 0 {
		return PoissonDist{}, emptySample("PoissonDist")
	}
	xs := make([]float64, len(ks))
	for i, k := range ks {
		if k < 0 {
			return PoissonDist{}, invalidParam("PoissonDist", "MLE observation %d must be >= 0", k)
		}
		xs[i] = float64(k)
	}
	return NewPoissonDist(Sample{Xs: xs}.Mean())
}
