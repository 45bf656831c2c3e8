// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// n is the number of independent Bernoulli trials. n >= 0.
	//
	// If n=1, this is equivalent to the Bernoulli distribution.
	n int

	// p is the probability of success in each trial. 0 <= p <= 1.
	p float64
}

var _ Discrete[int] = BinomialDist{}
var _ Moments = BinomialDist{}

// NewBinomialDist returns the distribution of the number of successes
// in n independent trials that each succeed with probability p.
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, invalidParam("BinomialDist", "trials %d must be >= 0", n)
	}
	if !(p >= 0 && p <= 1) {
		return BinomialDist{}, invalidParam("BinomialDist", "probability %v must be in [0, 1]", p)
	}
	return BinomialDist{n, p}, nil
}

func (d BinomialDist) N() int     { return d.n }
func (d BinomialDist) P() float64 { return d.p }

func (d BinomialDist) String() string {
	return fmt.Sprintf("Binomial(n=%d, p=%v)", d.n, d.p)
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k int) float64 {
	if k < 0 || k > d.n {
		return 0
	}
	switch d.p {
	case 0, 1:
		// All trials have the same outcome.
		if float64(k) == float64(d.n)*d.p {
			return 1
		}
		return 0
	}
	if d.n <= 30 {
		return mathx.Choose(d.n, k) * math.Pow(d.p, float64(k)) * math.Pow(1-d.p, float64(d.n-k))
	}
	lp := mathx.LogChoose(float64(d.n), float64(k)) + float64(k)*math.Log(d.p) + float64(d.n-k)*math.Log1p(-d.p)
	return math.Exp(lp)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	} else if k >= d.n {
		return 1
	}

	return mathx.BetaInc(1-d.p, float64(d.n-k), float64(k)+1)
}

func (d BinomialDist) Sample(rng *rand.Rand, n int) []int {
	return sample(rng, n, func(rng *rand.Rand) int {
		switch {
		case d.n == 0 || d.p == 0:
			return 0
		case d.p == 1:
			return d.n
		}
		return int(distuv.Binomial{N: float64(d.n), P: d.p, Src: rng}.Rand())
	})
}

func (d BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

func (d BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

func (d BinomialDist) Skewness() float64 {
	return (1 - 2*d.p) / math.Sqrt(d.Variance())
}

func (d BinomialDist) Kurtosis() float64 {
	pq := d.p * (1 - d.p)
	return (1 - 6*pq) / (float64(d.n) * pq)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d. It fails if d has zero variance.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() (NormalDist, error) {
	return NewNormalDist(d.Mean(), math.Sqrt(d.Variance()))
}
