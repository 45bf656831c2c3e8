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

func TestGeometricDist(t *testing.T) {
	d, err := NewGeometricDist(0.5)
	require.NoError(t, err)
	testFunc(t, "Geometric(0.5).PMF", d.PMF, map[int]float64{
		-1: 0,
		0:  0.5,
		1:  0.25,
		2:  0.125,
	})
	testFunc(t, "Geometric(0.5).CDF", d.CDF, map[int]float64{
		-1: 0,
		0:  0.5,
		1:  0.75,
	})
	testDiscreteCDF(t, "Geometric(0.5)", d, 0, 60)
	assert.Equal(t, 1.0, d.CDF(math.MaxInt))
	assert.Equal(t, 1.0, d.Mean())
	assert.Equal(t, 2.0, d.Variance())
	testSampleSupport[int](t, "Geometric", d, func(k int) bool { return k >= 0 })

	// Sample mean should approach (1-p)/p.
	d, err = NewGeometricDist(0.2)
	require.NoError(t, err)
	xs := d.Sample(newTestRand(), 100000)
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	assert.InDelta(t, 4, sum/float64(len(xs)), 0.1)

	d, err = NewGeometricDist(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.PMF(0))
	assert.Equal(t, 1.0, d.CDF(0))

	for _, p := range []float64{0, -0.5, 1.5, math.NaN()} {
		_, err := NewGeometricDist(p)
		assert.ErrorIs(t, err, ErrInvalidParameter, "p=%v", p)
	}
}
