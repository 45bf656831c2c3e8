// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-moredist/mathx"
)

// HypergeometricDist is the distribution of the number of successes
// in K draws without replacement from a population of T items, M of
// which are successes.
type HypergeometricDist struct {
	t, m, k int
}

var _ Discrete[int] = HypergeometricDist{}
var _ Moments = HypergeometricDist{}

// NewHypergeometricDist returns a hypergeometric distribution for a
// population of t items with m successes, from which k items are
// drawn. It requires 0 <= m <= t and 0 < k <= t.
func NewHypergeometricDist(t, m, k int) (HypergeometricDist, error) {
	const name = "HypergeometricDist"
	switch {
	case t < 0:
		return HypergeometricDist{}, invalidParam(name, "population %d must be >= 0", t)
	case m < 0 || m > t:
		return HypergeometricDist{}, invalidParam(name, "successes %d must be in [0, %d]", m, t)
	case k <= 0 || k > t:
		return HypergeometricDist{}, invalidParam(name, "draws %d must be in (0, %d]", k, t)
	}
	return HypergeometricDist{t, m, k}, nil
}

func (d HypergeometricDist) T() int { return d.t }
func (d HypergeometricDist) M() int { return d.m }
func (d HypergeometricDist) K() int { return d.k }

func (d HypergeometricDist) String() string {
	return fmt.Sprintf("Hypergeometric(t=%d, m=%d, k=%d)", d.t, d.m, d.k)
}

// Bounds returns the smallest and largest number of successes with
// non-zero probability.
func (d HypergeometricDist) Bounds() (lo, hi int) {
	return max(0, d.k-(d.t-d.m)), min(d.k, d.m)
}

// PMF returns the probability of drawing exactly x successes.
func (d HypergeometricDist) PMF(x int) float64 {
	lo, hi := d.Bounds()
	if x < lo || x > hi {
		return 0
	}
	lp := mathx.LogChoose(float64(d.m), float64(x)) +
		mathx.LogChoose(float64(d.t-d.m), float64(d.k-x)) -
		mathx.LogChoose(float64(d.t), float64(d.k))
	return math.Exp(lp)
}

// CDF returns the probability of drawing x or fewer successes.
func (d HypergeometricDist) CDF(x int) float64 {
	lo, hi := d.Bounds()
	if x < lo {
		return 0
	} else if x >= hi {
		return 1
	}
	var sum float64
	for i := lo; i <= x; i++ {
		sum += d.PMF(i)
	}
	return math.Min(sum, 1)
}

// Sample draws items one at a time without replacement, so each
// value costs O(min(K, T-K)) random draws.
func (d HypergeometricDist) Sample(rng *rand.Rand, n int) []int {
	// Drawing k items leaves t-k behind, and the successes drawn
	// are m minus the successes left behind. Walk the smaller set.
	draws, complement := d.k, false
	if d.t-d.k < d.k {
		draws, complement = d.t-d.k, true
	}
	return sample(rng, n, func(rng *rand.Rand) int {
		succ, left := d.m, d.t
		x := 0
		for i := 0; i < draws && succ > 0; i++ {
			if rng.Intn(left) < succ {
				x++
				succ--
			}
			left--
		}
		if complement {
			return d.m - x
		}
		return x
	})
}

func (d HypergeometricDist) Mean() float64 {
	return float64(d.k) * float64(d.m) / float64(d.t)
}

func (d HypergeometricDist) Variance() float64 {
	if d.t == 1 {
		return 0
	}
	t, m, k := float64(d.t), float64(d.m), float64(d.k)
	return k * (m / t) * ((t - m) / t) * ((t - k) / (t - 1))
}

func (d HypergeometricDist) Skewness() float64 {
	t, m, k := float64(d.t), float64(d.m), float64(d.k)
	num := (t - 2*m) * math.Sqrt(t-1) * (t - 2*k)
	den := math.Sqrt(k*m*(t-m)*(t-k)) * (t - 2)
	return num / den
}

func (d HypergeometricDist) Kurtosis() float64 {
	t, m, k := float64(d.t), float64(d.m), float64(d.k)
	a := (t - 1) * t * t * (t*(t+1) - 6*m*(t-m) - 6*k*(t-k))
	b := 6 * k * m * (t - m) * (t - k) * (5*t - 6)
	return (a + b) / (k * m * (t - m) * (t - k) * (t - 2) * (t - 3))
}
