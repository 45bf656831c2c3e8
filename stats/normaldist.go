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

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	mu, sigma float64
}

var _ Continuous = NormalDist{}
var _ Moments = NormalDist{}
var _ Estimable[float64, NormalDist] = NormalDist{}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// NewNormalDist returns a normal distribution with mean mu and
// standard deviation sigma. sigma must be > 0.
func NewNormalDist(mu, sigma float64) (NormalDist, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return NormalDist{}, invalidParam("NormalDist", "mu %v must be finite", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return NormalDist{}, invalidParam("NormalDist", "sigma %v must be finite and > 0", sigma)
	}
	return NormalDist{mu, sigma}, nil
}

func (d NormalDist) Mu() float64    { return d.mu }
func (d NormalDist) Sigma() float64 { return d.sigma }

func (d NormalDist) String() string {
	return fmt.Sprintf("Normal(μ=%v, σ=%v)", d.mu, d.sigma)
}

func (d NormalDist) dist(rng *rand.Rand) distuv.Normal {
	return distuv.Normal{Mu: d.mu, Sigma: d.sigma, Src: srcOf(rng)}
}

func (d NormalDist) PDF(x float64) float64 {
	return d.dist(nil).Prob(x)
}

func (d NormalDist) CDF(x float64) float64 {
	return d.dist(nil).CDF(x)
}

func (d NormalDist) Quantile(p float64) (float64, error) {
	if err := checkProb("NormalDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d NormalDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return rng.NormFloat64()*d.sigma + d.mu
	})
}

func (d NormalDist) Mean() float64     { return d.mu }
func (d NormalDist) Variance() float64 { return mathx.Sqr(d.sigma) }
func (d NormalDist) Skewness() float64 { return 0 }
func (d NormalDist) Kurtosis() float64 { return 0 }

// MLE returns the normal distribution that maximizes the likelihood
// of xs: the sample mean and the standard deviation about that mean.
func (NormalDist) MLE(xs []float64) (NormalDist, error) {
	if len(xs) == 0 {
		return NormalDist{}, emptySample("NormalDist")
	}
	s := Sample{Xs: xs}
	return NewNormalDist(s.Mean(), s.PopStdDev())
}
