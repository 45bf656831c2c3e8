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

// ChiSquaredDist is a χ² distribution with K degrees of freedom.
type ChiSquaredDist struct {
	k int
}

var _ Continuous = ChiSquaredDist{}
var _ Moments = ChiSquaredDist{}

// NewChiSquaredDist returns a χ² distribution with k degrees of
// freedom. k must be > 0.
func NewChiSquaredDist(k int) (ChiSquaredDist, error) {
	if k <= 0 {
		return ChiSquaredDist{}, invalidParam("ChiSquaredDist", "degrees of freedom %d must be > 0", k)
	}
	return ChiSquaredDist{k}, nil
}

func (d ChiSquaredDist) K() int { return d.k }

func (d ChiSquaredDist) String() string {
	return fmt.Sprintf("ChiSquared(k=%d)", d.k)
}

func (d ChiSquaredDist) dist(rng *rand.Rand) distuv.ChiSquared {
	return distuv.ChiSquared{K: float64(d.k), Src: srcOf(rng)}
}

func (d ChiSquaredDist) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		// The density at 0 depends only on the shape.
		switch {
		case d.k < 2:
			return inf
		case d.k == 2:
			return 0.5
		}
		return 0
	}
	return d.dist(nil).Prob(x)
}

func (d ChiSquaredDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist(nil).CDF(x)
}

func (d ChiSquaredDist) Quantile(p float64) (float64, error) {
	if err := checkProb("ChiSquaredDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d ChiSquaredDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

func (d ChiSquaredDist) Mean() float64     { return float64(d.k) }
func (d ChiSquaredDist) Variance() float64 { return 2 * float64(d.k) }
func (d ChiSquaredDist) Skewness() float64 { return math.Sqrt(8 / float64(d.k)) }
func (d ChiSquaredDist) Kurtosis() float64 { return 12 / float64(d.k) }
