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

// GammaDist is a gamma distribution with shape K and scale Theta.
type GammaDist struct {
	k, theta float64
}

var _ Continuous = GammaDist{}
var _ Moments = GammaDist{}
var _ Estimable[float64, GammaDist] = GammaDist{}

// NewGammaDist returns a gamma distribution with the given shape and
// scale. Both must be > 0.
func NewGammaDist(shape, scale float64) (GammaDist, error) {
	if !(shape > 0) || !(scale > 0) {
		return GammaDist{}, invalidParam("GammaDist", "shape %v and scale %v must be > 0", shape, scale)
	}
	return GammaDist{shape, scale}, nil
}

func (d GammaDist) Shape() float64 { return d.k }
func (d GammaDist) Scale() float64 { return d.theta }

func (d GammaDist) String() string {
	return fmt.Sprintf("Gamma(k=%v, θ=%v)", d.k, d.theta)
}

// dist returns the gonum equivalent of d, which is parameterized by
// rate rather than scale.
func (d GammaDist) dist(rng *rand.Rand) distuv.Gamma {
	return distuv.Gamma{Alpha: d.k, Beta: 1 / d.theta, Src: srcOf(rng)}
}

func (d GammaDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.dist(nil).Prob(x)
}

func (d GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist(nil).CDF(x)
}

func (d GammaDist) Quantile(p float64) (float64, error) {
	if err := checkProb("GammaDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d GammaDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

func (d GammaDist) Mean() float64     { return d.k * d.theta }
func (d GammaDist) Variance() float64 { return d.k * mathx.Sqr(d.theta) }
func (d GammaDist) Skewness() float64 { return 2 / math.Sqrt(d.k) }
func (d GammaDist) Kurtosis() float64 { return 6 / d.k }

// MLE fits a gamma distribution to xs, which must all be > 0.
//
// There is no closed form for the maximum likelihood estimate of the
// shape. This uses the approximation
//
//	s = ln(mean(x)) - mean(ln(x))
//	k ≈ (3 - s + √((s-3)² + 24)) / 12s
//
// which is within about 1.5% of the true estimate. It is not refined
// further. The scale is then mean(x)/k.
func (GammaDist) MLE(xs []float64) (GammaDist, error) {
	if len(xs) == 0 {
		return GammaDist{}, emptySample("GammaDist")
	}
	var sum, sumLog float64
	for _, x := range xs {
		if !(x > 0) {
			return GammaDist{}, invalidParam("GammaDist", "MLE observation %v must be > 0", x)
		}
		sum += x
		sumLog += math.Log(x)
	}
	n := float64(len(xs))
	mean := sum / n
	s := math.Log(mean) - sumLog/n
	shape := (3 - s + math.Sqrt(mathx.Sqr(s-3)+24)) / (12 * s)
	return NewGammaDist(shape, mean/shape)
}
