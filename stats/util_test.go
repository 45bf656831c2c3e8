// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect ||
		math.Abs(expect-got) < 1e-10
}

// testFunc checks f against the expected values in vals.
func testFunc[T int | float64](t *testing.T, name string, f func(T) float64, vals map[T]float64) {
	t.Helper()
	xs := make([]T, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		var label string
		if math.IsInf(want, 0) || math.IsInf(got, 0) {
			label = fmt.Sprintf("%s(%v) = %v, want %v", name, x, got, want)
		} else {
			label = fmt.Sprintf("%s(%v) = %v, want %v (delta %v)", name, x, got, want, got-want)
		}
		t.Error(label)
	}
}

// testDiscreteCDF checks that the CDF of dist is the running sum of
// its PMF over [lo, hi], and that it reaches 0 and 1 outside that
// range.
func testDiscreteCDF(t *testing.T, name string, dist Discrete[int], lo, hi int) {
	t.Helper()
	if cdf := dist.CDF(lo - 1); cdf != 0 {
		t.Errorf("%s.CDF(%d) = %v, want 0", name, lo-1, cdf)
	}
	var sum float64
	for k := lo; k <= hi; k++ {
		sum += dist.PMF(k)
		if cdf := dist.CDF(k); !aeq(sum, cdf) {
			t.Errorf("%s.CDF(%d) = %v, want %v", name, k, cdf, sum)
		}
	}
	if cdf := dist.CDF(hi + 1000); !aeq(1, cdf) {
		t.Errorf("%s.CDF(%d) = %v, want 1", name, hi+1000, cdf)
	}
	// The extremes of int must not overflow.
	if cdf := dist.CDF(math.MinInt); cdf != 0 {
		t.Errorf("%s.CDF(MinInt) = %v, want 0", name, cdf)
	}
	if cdf := dist.CDF(math.MaxInt); !aeq(1, cdf) {
		t.Errorf("%s.CDF(MaxInt) = %v, want 1", name, cdf)
	}
}

// testContinuousCDF checks that the CDF of dist is monotonic over
// [lo, hi], that Quantile inverts it, and that Quantile(0) and
// Quantile(1) are the bounds of the support, infimum and supremum.
func testContinuousCDF(t *testing.T, name string, dist Continuous, lo, hi, infimum, supremum float64) {
	t.Helper()
	for p, want := range map[float64]float64{0: infimum, 1: supremum} {
		q, err := dist.Quantile(p)
		if err != nil {
			t.Errorf("%s.Quantile(%v): %v", name, p, err)
		} else if q != want {
			t.Errorf("%s.Quantile(%v) = %v, want %v", name, p, q, want)
		}
	}
	const steps = 100
	prev := dist.CDF(lo)
	for i := 1; i <= steps; i++ {
		x := lo + (hi-lo)*float64(i)/steps
		cdf := dist.CDF(x)
		if cdf < prev {
			t.Errorf("%s.CDF not monotonic: CDF(%v) = %v < %v", name, x, cdf, prev)
		}
		prev = cdf
		if cdf <= 0.0001 || cdf >= 0.9999 {
			continue
		}
		q, err := dist.Quantile(cdf)
		if err != nil {
			t.Errorf("%s.Quantile(%v): %v", name, cdf, err)
			continue
		}
		if math.Abs(q-x) > 1e-5*math.Max(1, math.Abs(x)) {
			t.Errorf("%s.Quantile(CDF(%v)) = %v, want %v", name, x, q, x)
		}
	}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := dist.Quantile(p); err == nil {
			t.Errorf("%s.Quantile(%v) succeeded, want error", name, p)
		}
	}
}

// testSampleSupport draws n values from dist with a fixed seed and
// checks that each satisfies inSupport.
func testSampleSupport[T any](t *testing.T, name string, dist Sampler[T], inSupport func(T) bool) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 10, 1000} {
		xs := dist.Sample(rng, n)
		if len(xs) != n {
			t.Errorf("%s.Sample(%d) returned %d values", name, n, len(xs))
		}
		for _, x := range xs {
			if !inSupport(x) {
				t.Errorf("%s.Sample returned %v outside support", name, x)
				break
			}
		}
	}
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(20150531))
}
