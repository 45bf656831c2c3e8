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

// FDist is an F-distribution with D1 and D2 degrees of freedom.
//
// The moments of the F-distribution exist only for sufficiently
// large D2, so FDist implements OptionalMoments.
type FDist struct {
	d1, d2 float64
}

var _ Continuous = FDist{}
var _ OptionalMoments = FDist{}

// NewFDist returns an F-distribution with d1 numerator and d2
// denominator degrees of freedom. Both must be > 0.
func NewFDist(d1, d2 float64) (FDist, error) {
	if !(d1 > 0) || !(d2 > 0) {
		return FDist{}, invalidParam("FDist", "degrees of freedom %v, %v must be > 0", d1, d2)
	}
	return FDist{d1, d2}, nil
}

func (d FDist) D1() float64 { return d.d1 }
func (d FDist) D2() float64 { return d.d2 }

func (d FDist) String() string {
	return fmt.Sprintf("F(d1=%v, d2=%v)", d.d1, d.d2)
}

func (d FDist) dist(rng *rand.Rand) distuv.F {
	return distuv.F{D1: d.d1, D2: d.d2, Src: srcOf(rng)}
}

func (d FDist) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case d.d1 < 2:
			return inf
		case d.d1 == 2:
			return 1
		}
		return 0
	}
	return d.dist(nil).Prob(x)
}

func (d FDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return d.dist(nil).CDF(x)
}

func (d FDist) Quantile(p float64) (float64, error) {
	if err := checkProb("FDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d FDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

// Mean is defined for D2 > 2.
func (d FDist) Mean() (float64, bool) {
	if d.d2 <= 2 {
		return 0, false
	}
	return d.d2 / (d.d2 - 2), true
}

// Variance is defined for D2 > 4.
func (d FDist) Variance() (float64, bool) {
	if d.d2 <= 4 {
		return 0, false
	}
	d1, d2 := d.d1, d.d2
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * mathx.Sqr(d2-2) * (d2 - 4)), true
}

// Skewness is defined for D2 > 6.
func (d FDist) Skewness() (float64, bool) {
	if d.d2 <= 6 {
		return 0, false
	}
	d1, d2 := d.d1, d.d2
	return (2*d1 + d2 - 2) * math.Sqrt(8*(d2-4)) / ((d2 - 6) * math.Sqrt(d1*(d1+d2-2))), true
}

// Kurtosis is defined for D2 > 8.
func (d FDist) Kurtosis() (float64, bool) {
	if d.d2 <= 8 {
		return 0, false
	}
	d1, d2 := d.d1, d.d2
	num := 12 * (d1*(5*d2-22)*(d1+d2-2) + (d2-4)*mathx.Sqr(d2-2))
	den := d1 * (d2 - 6) * (d2 - 8) * (d1 + d2 - 2)
	return num / den, true
}
