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

func TestStudentTDist(t *testing.T) {
	// With one degree of freedom, T is a standard Cauchy.
	d, err := NewStudentTDist(1)
	require.NoError(t, err)
	testFunc(t, "StudentT(1).PDF", d.PDF, map[float64]float64{
		0: 1 / math.Pi,
		1: 1 / (2 * math.Pi),
	})
	testFunc(t, "StudentT(1).CDF", d.CDF, map[float64]float64{
		-1: 0.25,
		0:  0.5,
		1:  0.75,
	})

	d, err = NewStudentTDist(5)
	require.NoError(t, err)
	testContinuousCDF(t, "StudentT(5)", d, -5, 5, -inf, inf)
	testSampleSupport[float64](t, "StudentT", d, func(x float64) bool { return !math.IsNaN(x) })

	for _, nu := range []float64{0, -1, math.NaN()} {
		_, err := NewStudentTDist(nu)
		assert.ErrorIs(t, err, ErrInvalidParameter, "nu=%v", nu)
	}
}

func TestStudentTDistMoments(t *testing.T) {
	type moment struct {
		v  float64
		ok bool
	}
	for _, test := range []struct {
		nu                 float64
		mean, vari, s, kur moment
	}{
		{1, moment{}, moment{}, moment{}, moment{}},
		{1.5, moment{0, true}, moment{inf, true}, moment{}, moment{}},
		{3, moment{0, true}, moment{3, true}, moment{}, moment{inf, true}},
		{6, moment{0, true}, moment{1.5, true}, moment{0, true}, moment{3, true}},
	} {
		d, err := NewStudentTDist(test.nu)
		require.NoError(t, err)
		check := func(name string, want moment, v float64, ok bool) {
			t.Helper()
			assert.Equal(t, want.ok, ok, "StudentT(%v).%s defined", test.nu, name)
			if ok {
				assert.Equal(t, want.v, v, "StudentT(%v).%s", test.nu, name)
			}
		}
		v, ok := d.Mean()
		check("Mean", test.mean, v, ok)
		v, ok = d.Variance()
		check("Variance", test.vari, v, ok)
		v, ok = d.Skewness()
		check("Skewness", test.s, v, ok)
		v, ok = d.Kurtosis()
		check("Kurtosis", test.kur, v, ok)
	}
}
