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

func TestFDist(t *testing.T) {
	d, err := NewFDist(3, 10)
	require.NoError(t, err)
	testFunc(t, "F(3,10).PDF", d.PDF, map[float64]float64{
		-1: 0,
		0:  0,
	})
	testFunc(t, "F(3,10).CDF", d.CDF, map[float64]float64{
		-1:  0,
		0:   0,
		inf: 1,
	})
	testContinuousCDF(t, "F(3,10)", d, 0.05, 10, 0, inf)
	testSampleSupport[float64](t, "F", d, func(x float64) bool { return x >= 0 })

	// With d1 = 2 the density at 0 is 1.
	d2, err := NewFDist(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d2.PDF(0))

	for _, p := range [][2]float64{{0, 1}, {1, 0}, {-3, 2}, {math.NaN(), 2}} {
		_, err := NewFDist(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidParameter, "params=%v", p)
	}
}

func TestFDistMoments(t *testing.T) {
	d, err := NewFDist(3, 2)
	require.NoError(t, err)
	_, ok := d.Mean()
	assert.False(t, ok, "F(3,2) mean")
	_, ok = d.Variance()
	assert.False(t, ok, "F(3,2) variance")

	d, err = NewFDist(3, 10)
	require.NoError(t, err)
	mean, ok := d.Mean()
	require.True(t, ok)
	assert.InDelta(t, 10.0/8, mean, 1e-12)
	v, ok := d.Variance()
	require.True(t, ok)
	assert.InDelta(t, 2*100*11/(3*64*6.0), v, 1e-12)
	_, ok = d.Skewness()
	assert.True(t, ok)
	_, ok = d.Kurtosis()
	assert.True(t, ok)

	// Each moment has its own threshold on d2.
	d, err = NewFDist(3, 7)
	require.NoError(t, err)
	_, ok = d.Skewness()
	assert.True(t, ok)
	_, ok = d.Kurtosis()
	assert.False(t, ok)
}
