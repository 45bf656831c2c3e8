// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// LogNormalDist is a distribution whose logarithm is normally
// distributed with mean Mu and standard deviation Sigma.
type LogNormalDist struct {
	mu, sigma float64
}

var _ Continuous = LogNormalDist{}
var _ Moments = LogNormalDist{}
var _ Estimable[float64, LogNormalDist] = LogNormalDist{}

// NewLogNormalDist returns a log-normal distribution whose logarithm
// has mean mu and standard deviation sigma. sigma must be > 0.
func NewLogNormalDist(mu, sigma float64) (LogNormalDist, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return LogNormalDist{}, invalidParam("LogNormalDist", "mu %v must be finite", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return LogNormalDist{}, invalidParam("LogNormalDist", "sigma %v must be finite and > 0", sigma)
	}
	return LogNormalDist{mu, sigma}, nil
}

func (d LogNormalDist) Mu() float64    { return d.mu }
func (d LogNormalDist) Sigma() float64 { return d.sigma }

func (d LogNormalDist) String() string {
	return fmt.Sprintf("LogNormal(μ=%v, σ=%v)", d.mu, d.sigma)
}

func (d LogNormalDist) dist(rng *rand.Rand) distuv.LogNormal {
	return distuv.LogNormal{Mu: d.mu, Sigma: d.sigma, Src: srcOf(rng)}
}

func (d LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist(nil).Prob(x)
}

func (d LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist(nil).CDF(x)
}

func (d LogNormalDist) Quantile(p float64) (float64, error) {
	if err := checkProb("LogNormalDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d LogNormalDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

func (d LogNormalDist) Mean() float64 {
	return math.Exp(d.mu + mathx.Sqr(d.sigma)/2)
}

func (d LogNormalDist) Variance() float64 {
	s2 := mathx.Sqr(d.sigma)
	return math.Expm1(s2) * math.Exp(2*d.mu+s2)
}

func (d LogNormalDist) Skewness() float64 {
	s2 := mathx.Sqr(d.sigma)
	return (math.Exp(s2) + 2) * math.Sqrt(math.Expm1(s2))
}

func (d LogNormalDist) Kurtosis() float64 {
	s2 := mathx.Sqr(d.sigma)
	return math.Exp(4*s2) + 2*math.Exp(3*s2) + 3*math.Exp(2*s2) - 6
}

// MLE fits a normal distribution to the logarithms of xs. Every
// observation must be > 0.
func (LogNormalDist) MLE(xs []float64) (LogNormalDist, error) {
	if len(xs) == 0 {
		return LogNormalDist{}, emptySample("LogNormalDist")
	}
	logs := make([]float64, len(xs))
	for i, x := range xs {
		if !(x > 0) {
			return LogNormalDist{}, invalidParam("LogNormalDist", "MLE observation %v must be > 0", x)
		}
		logs[i] = math.Log(x)
	}
	n, err := NormalDist{}.MLE(logs)
	if err != nil {
		return LogNormalDist{}, errors.Wrap(err, "LogNormalDist: MLE of log observations")
	}
	return LogNormalDist{n.mu, n.sigma}, nil
}
