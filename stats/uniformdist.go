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

// UniformDist is a continuous uniform distribution on [Lo, Hi].
//
// If Lo == Hi, this is a point mass at Lo.
type UniformDist struct {
	lo, hi float64
}

var _ Continuous = UniformDist{}
var _ Moments = UniformDist{}
var _ Estimable[float64, UniformDist] = UniformDist{}

// NewUniformDist returns a uniform distribution between a and b. The
// bounds may be given in either order.
func NewUniformDist(a, b float64) (UniformDist, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return UniformDist{}, invalidParam("UniformDist", "bounds %v, %v must not be NaN", a, b)
	}
	return UniformDist{math.Min(a, b), math.Max(a, b)}, nil
}

func (d UniformDist) Lo() float64 { return d.lo }
func (d UniformDist) Hi() float64 { return d.hi }

func (d UniformDist) String() string {
	return fmt.Sprintf("Uniform(%v, %v)", d.lo, d.hi)
}

func (d UniformDist) dist(rng *rand.Rand) distuv.Uniform {
	return distuv.Uniform{Min: d.lo, Max: d.hi, Src: srcOf(rng)}
}

func (d UniformDist) PDF(x float64) float64 {
	if d.lo == d.hi {
		if x == d.lo {
			return inf
		}
		return 0
	}
	return d.dist(nil).Prob(x)
}

func (d UniformDist) CDF(x float64) float64 {
	if d.lo == d.hi {
		if x < d.lo {
			return 0
		}
		return 1
	}
	return d.dist(nil).CDF(x)
}

func (d UniformDist) Quantile(p float64) (float64, error) {
	if err := checkProb("UniformDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d UniformDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

func (d UniformDist) Mean() float64     { return (d.lo + d.hi) / 2 }
func (d UniformDist) Variance() float64 { return mathx.Sqr(d.hi-d.lo) / 12 }
func (d UniformDist) Skewness() float64 { return 0 }
func (d UniformDist) Kurtosis() float64 { return -6.0 / 5 }

// MLE returns the uniform distribution spanning the smallest and
// largest values of xs.
func (UniformDist) MLE(xs []float64) (UniformDist, error) {
	if len(xs) == 0 {
		return UniformDist{}, emptySample("UniformDist")
	}
	return NewUniformDist(Sample{Xs: xs}.Bounds())
}
