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

// BetaDist is a beta distribution on [0, 1] with shape parameters
// Alpha and Beta.
type BetaDist struct {
	alpha, beta float64
}

var _ Continuous = BetaDist{}
var _ Moments = BetaDist{}

// NewBetaDist returns a beta distribution with the given shape
// parameters. Both must be > 0.
func NewBetaDist(alpha, beta float64) (BetaDist, error) {
	if !(alpha > 0) || !(beta > 0) {
		return BetaDist{}, invalidParam("BetaDist", "alpha %v and beta %v must be > 0", alpha, beta)
	}
	return BetaDist{alpha, beta}, nil
}

func (d BetaDist) Alpha() float64 { return d.alpha }
func (d BetaDist) Beta() float64  { return d.beta }

func (d BetaDist) String() string {
	return fmt.Sprintf("Beta(α=%v, β=%v)", d.alpha, d.beta)
}

func (d BetaDist) dist(rng *rand.Rand) distuv.Beta {
	return distuv.Beta{Alpha: d.alpha, Beta: d.beta, Src: srcOf(rng)}
}

func (d BetaDist) PDF(x float64) float64 {
	return d.dist(nil).Prob(x)
}

func (d BetaDist) CDF(x float64) float64 {
	return d.dist(nil).CDF(x)
}

func (d BetaDist) Quantile(p float64) (float64, error) {
	if err := checkProb("BetaDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d BetaDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

func (d BetaDist) Mean() float64 {
	return d.alpha / (d.alpha + d.beta)
}

func (d BetaDist) Variance() float64 {
	a, b := d.alpha, d.beta
	return a * b / (mathx.Sqr(a+b) * (a + b + 1))
}

func (d BetaDist) Skewness() float64 {
	a, b := d.alpha, d.beta
	return 2 * (b - a) * math.Sqrt(a+b+1) / ((a + b + 2) * math.Sqrt(a*b))
}

func (d BetaDist) Kurtosis() float64 {
	a, b := d.alpha, d.beta
	num := 6 * (mathx.Sqr(a-b)*(a+b+1) - a*b*(a+b+2))
	den := a * b * (a + b + 2) * (a + b + 3)
	return num / den
}
