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

// LogisticDist is a logistic distribution with location Mu and scale
// S.
type LogisticDist struct {
	mu, s float64
}

var _ Continuous = LogisticDist{}
var _ Moments = LogisticDist{}

// NewLogisticDist returns a logistic distribution with the given
// location and scale. scale must be > 0.
func NewLogisticDist(mu, scale float64) (LogisticDist, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return LogisticDist{}, invalidParam("LogisticDist", "mu %v must be finite", mu)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return LogisticDist{}, invalidParam("LogisticDist", "scale %v must be finite and > 0", scale)
	}
	return LogisticDist{mu, scale}, nil
}

func (d LogisticDist) Mu() float64 { return d.mu }
func (d LogisticDist) S() float64  { return d.s }

func (d LogisticDist) String() string {
	return fmt.Sprintf("Logistic(μ=%v, s=%v)", d.mu, d.s)
}

// dist returns the gonum equivalent of d. gonum's logistic
// distribution has no random source; Sample inverts the CDF instead.
func (d LogisticDist) dist() distuv.Logistic {
	return distuv.Logistic{Mu: d.mu, S: d.s}
}

func (d LogisticDist) PDF(x float64) float64 {
	return d.dist().Prob(x)
}

func (d LogisticDist) CDF(x float64) float64 {
	return d.dist().CDF(x)
}

func (d LogisticDist) Quantile(p float64) (float64, error) {
	if err := checkProb("LogisticDist", p); err != nil {
		return nan, err
	}
	return d.dist().Quantile(p), nil
}

func (d LogisticDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return d.dist().Quantile(u)
	})
}

func (d LogisticDist) Mean() float64     { return d.mu }
func (d LogisticDist) Variance() float64 { return mathx.Sqr(d.s*math.Pi) / 3 }
func (d LogisticDist) Skewness() float64 { return 0 }
func (d LogisticDist) Kurtosis() float64 { return 6.0 / 5 }
