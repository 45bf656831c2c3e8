// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// sample returns n independent values from gen. If rng is nil, it
// uses the default generator.
func sample[T any](rng *rand.Rand, n int, gen func(rng *rand.Rand) T) []T {
	if n < 1 {
		panic("stats: sample size must be at least 1")
	}
	rng = randOrDefault(rng)
	first := gen(rng)
	xs := make([]T, n)
	xs[0] = first
	for i := 1; i < n; i++ {
		xs[i] = gen(rng)
	}
	return xs
}

// Sample is a collection of observations.
type Sample struct {
	Xs []float64
}

// Sum returns the sum of the sample.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// GeoMean returns the geometric mean of the sample. It returns NaN
// if the sample is empty or any value is <= 0.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	for _, x := range s.Xs {
		if x <= 0 {
			return nan
		}
	}
	return stat.GeometricMean(s.Xs, nil)
}

// Variance returns the unbiased sample variance.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the unbiased sample standard deviation.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// PopStdDev returns the population standard deviation, dividing by N
// rather than N-1. This is the maximum likelihood estimate of a
// normal distribution's standard deviation.
func (s Sample) PopStdDev() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.PopStdDev(s.Xs, nil)
}

// Bounds returns the minimum and maximum values of the sample. If the
// sample is empty, it returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}
