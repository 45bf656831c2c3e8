// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaDist(t *testing.T) {
	d, err := NewGammaDist(2, 3)
	require.NoError(t, err)
	testFunc(t, "Gamma(2,3).PDF", d.PDF, map[float64]float64{
		-1: 0,
		3:  math.Exp(-1) / 3,
	})
	testFunc(t, "Gamma(2,3).CDF", d.CDF, map[float64]float64{
		-1: 0,
		0:  0,
		3:  1 - 2*math.Exp(-1),
	})
	testContinuousCDF(t, "Gamma(2,3)", d, 0.1, 30, 0, inf)
	assert.InDelta(t, 6, d.Mean(), 1e-12)
	assert.InDelta(t, 18, d.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt2, d.Skewness(), 1e-12)
	assert.InDelta(t, 3, d.Kurtosis(), 1e-12)
	testSampleSupport[float64](t, "Gamma", d, func(x float64) bool { return x >= 0 })

	for _, p := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {math.NaN(), 1}} {
		_, err := NewGammaDist(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidParameter, "params=%v", p)
	}
}

func TestGammaMLE(t *testing.T) {
	want, err := NewGammaDist(2, 3)
	require.NoError(t, err)
	got, err := GammaDist{}.MLE(want.Sample(newTestRand(), 100000))
	require.NoError(t, err)
	// The shape estimate is an approximation, so allow a few
	// percent on top of sampling error.
	assert.InEpsilon(t, 2, got.Shape(), 0.05)
	assert.InEpsilon(t, 3, got.Scale(), 0.05)
	assert.InEpsilon(t, want.Mean(), got.Mean(), 0.02)

	_, err = GammaDist{}.MLE(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
	_, err = GammaDist{}.MLE([]float64{1, 0, 2})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
