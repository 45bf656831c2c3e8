// Copyright 2015 The Go Authors. All rights reserved.
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

// NegativeBinomialDist is the distribution of the number of successes
// before the R'th failure in independent trials that each succeed
// with probability P. R need not be an integer.
type NegativeBinomialDist struct {
	r, p float64
}

var _ Discrete[int] = NegativeBinomialDist{}
var _ Moments = NegativeBinomialDist{}

// NewNegativeBinomialDist returns a negative binomial distribution
// with r >= 0 failures and success probability p in (0, 1).
func NewNegativeBinomialDist(r, p float64) (NegativeBinomialDist, error) {
	if !(r >= 0) || math.IsInf(r, 1) {
		return NegativeBinomialDist{}, invalidParam("NegativeBinomialDist", "failures %v must be finite and >= 0", r)
	}
	if !(p > 0 && p < 1) {
		return NegativeBinomialDist{}, invalidParam("NegativeBinomialDist", "probability %v must be in (0, 1)", p)
	}
	return NegativeBinomialDist{r, p}, nil
}

func (d NegativeBinomialDist) R() float64 { return d.r }
func (d NegativeBinomialDist) P() float64 { return d.p }

func (d NegativeBinomialDist) String() string {
	return fmt.Sprintf("NegativeBinomial(r=%v, p=%v)", d.r, d.p)
}

// PMF returns the probability of exactly k successes before the R'th
// failure.
func (d NegativeBinomialDist) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.r == 0 {
		// Zero failures are reached immediately.
		if k == 0 {
			return 1
		}
		return 0
	}
	kf := float64(k)
	lg1, _ := math.Lgamma(kf + d.r)
	lg2, _ := math.Lgamma(kf + 1)
	lg3, _ := math.Lgamma(d.r)
	return math.Exp(lg1 - lg2 - lg3 + kf*math.Log(d.p) + d.r*math.Log1p(-d.p))
}

func (d NegativeBinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.r == 0 {
		return 1
	}
	return mathx.BetaInc(1-d.p, d.r, float64(k)+1)
}

// Sample draws using the gamma-Poisson mixture representation.
func (d NegativeBinomialDist) Sample(rng *rand.Rand, n int) []int {
	return sample(rng, n, func(rng *rand.Rand) int {
		if d.r == 0 {
			return 0
		}
		g := distuv.Gamma{Alpha: d.r, Beta: (1 - d.p) / d.p, Src: rng}.Rand()
		if !(g > 0) {
			return 0
		}
		return int(distuv.Poisson{Lambda: g, Src: rng}.Rand())
	})
}

func (d NegativeBinomialDist) Mean() float64 {
	return d.p * d.r / (1 - d.p)
}

func (d NegativeBinomialDist) Variance() float64 {
	return d.p * d.r / mathx.Sqr(1-d.p)
}

func (d NegativeBinomialDist) Skewness() float64 {
	return (1 + d.p) / math.Sqrt(d.p*d.r)
}

func (d NegativeBinomialDist) Kurtosis() float64 {
	return 6/d.r + mathx.Sqr(1-d.p)/(d.p*d.r)
}
