// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomialDist(t *testing.T) {
	dist, err := NewBinomialDist(5, 0.2)
	require.NoError(t, err)
	testFunc(t, dist.String()+".PMF", dist.PMF,
		map[int]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P(), 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, dist.String(), dist, 0, 5)
	assert.InDelta(t, 1, dist.Mean(), 1e-15)
	assert.InDelta(t, 0.8, dist.Variance(), 1e-15)
	testSampleSupport[int](t, "Binomial", dist, func(k int) bool { return k >= 0 && k <= 5 })

	// Large n goes through the log-space PMF.
	dist, err = NewBinomialDist(100, 0.3)
	require.NoError(t, err)
	testDiscreteCDF(t, dist.String(), dist, 0, 100)

	dist, err = NewBinomialDist(30, 0.5)
	require.NoError(t, err)
	norm, err := dist.NormalApprox()
	require.NoError(t, err)
	for k := 10; k <= 20; k++ {
		b := dist.PMF(k)
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialDistDegenerate(t *testing.T) {
	for _, p := range []float64{0, 1} {
		dist, err := NewBinomialDist(4, p)
		require.NoError(t, err)
		want := int(4 * p)
		for k := -1; k <= 5; k++ {
			wantPMF := 0.0
			if k == want {
				wantPMF = 1
			}
			assert.Equal(t, wantPMF, dist.PMF(k), "%v.PMF(%d)", dist, k)
		}
		assert.Equal(t, 1.0, dist.CDF(want))
		for _, k := range dist.Sample(newTestRand(), 20) {
			assert.Equal(t, want, k)
		}
		_, err = dist.NormalApprox()
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}

	dist, err := NewBinomialDist(0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist.PMF(0))
	assert.Equal(t, []int{0}, dist.Sample(nil, 1))
}

func TestNewBinomialDist(t *testing.T) {
	for _, test := range []struct {
		n int
		p float64
	}{
		{-1, 0.5},
		{5, -0.1},
		{5, 1.5},
		{5, math.NaN()},
	} {
		_, err := NewBinomialDist(test.n, test.p)
		assert.ErrorIs(t, err, ErrInvalidParameter, "n=%d p=%v", test.n, test.p)
	}
}
