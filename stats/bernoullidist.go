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

// BernoulliDist is a Bernoulli distribution, which is 1 with
// probability P and 0 otherwise.
type BernoulliDist struct {
	p float64
}

var _ Discrete[int] = BernoulliDist{}
var _ Moments = BernoulliDist{}

// NewBernoulliDist returns a Bernoulli distribution with success
// probability p. p must be in [0, 1].
func NewBernoulliDist(p float64) (BernoulliDist, error) {
	if !(p >= 0 && p <= 1) {
		return BernoulliDist{}, invalidParam("BernoulliDist", "probability %v must be in [0, 1]", p)
	}
	return BernoulliDist{p}, nil
}

func (d BernoulliDist) P() float64 { return d.p }

func (d BernoulliDist) String() string {
	return fmt.Sprintf("Bernoulli(p=%v)", d.p)
}

func (d BernoulliDist) dist(rng *rand.Rand) distuv.Bernoulli {
	return distuv.Bernoulli{P: d.p, Src: srcOf(rng)}
}

func (d BernoulliDist) PMF(k int) float64 {
	return d.dist(nil).Prob(float64(k))
}

func (d BernoulliDist) CDF(k int) float64 {
	return d.dist(nil).CDF(float64(k))
}

func (d BernoulliDist) Sample(rng *rand.Rand, n int) []int {
	return sample(rng, n, func(rng *rand.Rand) int {
		return int(d.dist(rng).Rand())
	})
}

func (d BernoulliDist) Mean() float64     { return d.p }
func (d BernoulliDist) Variance() float64 { return d.p * (1 - d.p) }

func (d BernoulliDist) Skewness() float64 {
	return (1 - 2*d.p) / math.Sqrt(d.p*(1-d.p))
}

func (d BernoulliDist) Kurtosis() float64 {
	pq := d.p * (1 - d.p)
	return (1 - 6*pq) / pq
}
