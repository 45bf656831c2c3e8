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

func TestLogisticDist(t *testing.T) {
	d, err := NewLogisticDist(0, 1)
	require.NoError(t, err)
	testFunc(t, "Logistic(0,1).PDF", d.PDF, map[float64]float64{
		0: 0.25,
	})
	testFunc(t, "Logistic(0,1).CDF", d.CDF, map[float64]float64{
		0:           0.5,
		math.Log(3): 0.75,
	})
	testContinuousCDF(t, "Logistic(0,1)", d, -10, 10, -inf, inf)
	assert.InDelta(t, math.Pi*math.Pi/3, d.Variance(), 1e-12)
	assert.Equal(t, 1.2, d.Kurtosis())
	testSampleSupport[float64](t, "Logistic", d, func(x float64) bool {
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})

	for _, p := range [][2]float64{{0, -1}, {0, 0}, {math.NaN(), 1}, {-inf, 1}} {
		_, err := NewLogisticDist(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidParameter, "params=%v", p)
	}
}
