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

func TestPoissonDist(t *testing.T) {
	d, err := NewPoissonDist(2)
	require.NoError(t, err)
	testFunc(t, "Poisson(2).PMF", d.PMF, map[int]float64{
		-1: 0,
		0:  math.Exp(-2),
		1:  2 * math.Exp(-2),
		2:  2 * math.Exp(-2),
		3:  4.0 / 3 * math.Exp(-2),
	})
	testDiscreteCDF(t, "Poisson(2)", d, 0, 30)
	assert.Equal(t, 2.0, d.Variance())
	testSampleSupport[int](t, "Poisson", d, func(k int) bool { return k >= 0 })

	for _, lambda := range []float64{0, -1, math.NaN()} {
		_, err := NewPoissonDist(lambda)
		assert.ErrorIs(t, err, ErrInvalidParameter, "lambda=%v", lambda)
	}
}

func TestPoissonMLE(t *testing.T) {
	want, err := NewPoissonDist(4.5)
	require.NoError(t, err)
	got, err := PoissonDist{}.MLE(want.Sample(newTestRand(), 100000))
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got.Lambda(), 0.05)

	_, err = PoissonDist{}.MLE(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
	_, err = PoissonDist{}.MLE([]int{0, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	// Counts are never negative, even if the mean is positive.
	_, err = PoissonDist{}.MLE([]int{-1, 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
