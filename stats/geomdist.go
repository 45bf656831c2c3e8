// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// GeometricDist is the distribution of the number of failures before
// the first success in independent trials that each succeed with
// probability P. Its support is {0, 1, 2, ...}.
type GeometricDist struct {
	p float64
}

var _ Discrete[int] = GeometricDist{}
var _ Moments = GeometricDist{}

// NewGeometricDist returns a geometric distribution with success
// probability p. p must be in (0, 1].
func NewGeometricDist(p float64) (GeometricDist, error) {
	if !(p > 0 && p <= 1) {
		return GeometricDist{}, invalidParam("GeometricDist", "probability %v must be in (0, 1]", p)
	}
	return GeometricDist{p}, nil
}

func (d GeometricDist) P() float64 { return d.p }

func (d GeometricDist) String() string {
	return fmt.Sprintf("Geometric(p=%v)", d.p)
}

// PMF returns the probability of exactly k failures before the first
// success.
func (d GeometricDist) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	return d.p * math.Pow(1-d.p, float64(k))
}

func (d GeometricDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return -math.Expm1((float64(k) + 1) * math.Log1p(-d.p))
}

func (d GeometricDist) Sample(rng *rand.Rand, n int) []int {
	return sample(rng, n, func(rng *rand.Rand) int {
		if d.p == 1 {
			return 0
		}
		// Invert the survival function (1-p)^k.
		u := rng.Float64()
		return int(math.Floor(math.Log1p(-u) / math.Log1p(-d.p)))
	})
}

func (d GeometricDist) Mean() float64 {
	return (1 - d.p) / d.p
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.p) / (d.p * d.p)
}

func (d GeometricDist) Skewness() float64 {
	return (2 - d.p) / math.Sqrt(1-d.p)
}

func (d GeometricDist) Kurtosis() float64 {
	return 6 + d.p*d.p/(1-d.p)
}
