// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A StudentTDist is a standard Student's t-distribution with Nu
// degrees of freedom.
//
// Low-order moments of the t-distribution diverge or are undefined
// for small Nu, so StudentTDist implements OptionalMoments.
type StudentTDist struct {
	nu float64
}

var _ Continuous = StudentTDist{}
var _ OptionalMoments = StudentTDist{}

// NewStudentTDist returns a t-distribution with nu degrees of
// freedom. nu must be > 0.
func NewStudentTDist(nu float64) (StudentTDist, error) {
	if !(nu > 0) {
		return StudentTDist{}, invalidParam("StudentTDist", "degrees of freedom %v must be > 0", nu)
	}
	return StudentTDist{nu}, nil
}

func (d StudentTDist) Nu() float64 { return d.nu }

func (d StudentTDist) String() string {
	return fmt.Sprintf("StudentT(ν=%v)", d.nu)
}

func (d StudentTDist) dist(rng *rand.Rand) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: d.nu, Src: srcOf(rng)}
}

func (d StudentTDist) PDF(x float64) float64 {
	return d.dist(nil).Prob(x)
}

func (d StudentTDist) CDF(x float64) float64 {
	return d.dist(nil).CDF(x)
}

func (d StudentTDist) Quantile(p float64) (float64, error) {
	if err := checkProb("StudentTDist", p); err != nil {
		return nan, err
	}
	return d.dist(nil).Quantile(p), nil
}

func (d StudentTDist) Sample(rng *rand.Rand, n int) []float64 {
	return sample(rng, n, func(rng *rand.Rand) float64 {
		return d.dist(rng).Rand()
	})
}

// Mean is 0 for Nu > 1 and undefined otherwise.
func (d StudentTDist) Mean() (float64, bool) {
	if d.nu <= 1 {
		return 0, false
	}
	return 0, true
}

// Variance is Nu/(Nu-2) for Nu > 2, infinite for 1 < Nu <= 2, and
// undefined otherwise.
func (d StudentTDist) Variance() (float64, bool) {
	switch {
	case d.nu > 2:
		return d.nu / (d.nu - 2), true
	case d.nu > 1:
		return inf, true
	}
	return 0, false
}

// Skewness is 0 for Nu > 3 and undefined otherwise.
func (d StudentTDist) Skewness() (float64, bool) {
	if d.nu <= 3 {
		return 0, false
	}
	return 0, true
}

// Kurtosis is 6/(Nu-4) for Nu > 4, infinite for 2 < Nu <= 4, and
// undefined otherwise.
func (d StudentTDist) Kurtosis() (float64, bool) {
	switch {
	case d.nu > 4:
		return 6 / (d.nu - 4), true
	case d.nu > 2:
		return inf, true
	}
	return 0, false
}
