// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-moredist/mathx"
)

// CauchyDist is a Cauchy distribution with location X0 and scale
// Gamma.
//
// The Cauchy distribution has no moments, so CauchyDist implements
// neither Moments nor OptionalMoments.
type CauchyDist struct {
	x0, gamma float64
}

var _ Continuous = CauchyDist{}

// NewCauchyDist returns a Cauchy distribution with the given location
// and scale. scale must be > 0.
func NewCauchyDist(loc, scale float64) (CauchyDist, error) {
	if math.IsNaN(loc) || math.IsInf(loc, 0) {
		return CauchyDist{}, invalidParam("CauchyDist", "location %v must be finite", loc)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return CauchyDist{}, invalidParam("CauchyDist", "scale %v must be finite and > 0", scale)
	}
	return CauchyDist{loc, scale}, nil
}

func (d CauchyDist) X0() float64    { return d.x0 }
func (d CauchyDist) Gamma() float64 { return d.gamma }

func (d CauchyDist) String() string {
	return fmt.Sprintf("Cauchy(x0=%v, γ=%v)", d.x0, d.gamma)
}

func (d CauchyDist) PDF(x float64) float64 {
	return 1 / (math.Pi * d.gamma * (1 + mathx.Sqr((x-d.x0)/d.gamma)))
}

func (d CauchyDist) CDF(x float64) float64 {
	return 0.5 + math.Atan((x-d.x0)/d.gamma)/math.Pi
}

func (d CauchyDist) Quantile(p float64) (float64, error) {
	if err := checkProb("CauchyDist", p); err != nil {
		return nan, err
	}
	// tan(±π/2) is finite in floating point.
	switch p {
	case 0:
		return -inf, nil
	case 1:
		return inf, nil
	}
	return d.quantile(p), nil
}

func (d CauchyDist) quantile(p float64) float64 {
	return d.x0 + d.gamma*math.Tan(math.Pi*(p-0.5))
}

func (d CauchyDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		// Float64 is in [0, 1), so avoid the infinite tail at 0.
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return d.quantile(u)
	})
}
