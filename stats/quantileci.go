// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
)

// QuantileCIResult is a distribution-free confidence interval for a
// quantile of the population a sample was drawn from.
type QuantileCIResult struct {
	// Quantile is the quantile this interval bounds, in [0, 1].
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the achieved confidence level. It is >= the
	// requested level.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval: sorted Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// An order of 0 or N+1 means that bound is -Inf or +Inf. This
	// happens when the sample is too small for the confidence level
	// or the quantile is near 0 or 1.
	LoOrder, HiOrder int

	// Ambiguous reports that the interval LoOrder+1 to HiOrder+1
	// has the same confidence. Ties are broken to the left.
	Ambiguous bool
}

// FromSample returns the bounds of q in terms of values from s, which
// must have q.N observations. A bound outside the sample is returned
// as -Inf or +Inf.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if len(s.Xs) != q.N {
		panic("stats: sample size differs from quantile CI")
	}
	xs := slices.Clone(s.Xs)
	slices.Sort(xs)

	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = xs[q.LoOrder-1]
	}
	if q.HiOrder-1 < len(xs) {
		hi = xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which the
// normal approximation to the binomial is used. Variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the confidence interval of the q'th quantile for
// a sample of size n at the given confidence level.
//
// The number of observations that fall below the population quantile
// is binomially distributed with parameters n and q, so the interval
// is a band of that distribution with at least the requested mass.
func QuantileCI(n int, q, confidence float64) (QuantileCIResult, error) {
	res := QuantileCIResult{Quantile: q, N: n}
	samp, err := NewBinomialDist(n, q)
	if err != nil {
		return res, errors.Wrap(err, "QuantileCI")
	}
	if !(confidence >= 0) {
		return res, errors.Wrapf(ErrInvalidProbability, "QuantileCI: confidence %v", confidence)
	}

	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder, res.HiOrder = 0, n+1
		return res, nil
	}

	var l, r int
	if n <= quantileCIApproxThreshold || q == 0 || q == 1 {
		l, r = quantileCIExact(samp, confidence, &res)
	} else {
		l, r, err = quantileCINormal(samp, confidence, &res)
		if err != nil {
			return res, err
		}
	}

	res.LoOrder, res.HiOrder = max(l, 0), min(r, n+1)
	return res, nil
}

// quantileCIExact grows an interval [l, r) outward from the mode of
// samp until it holds the requested confidence.
func quantileCIExact(samp BinomialDist, confidence float64, res *QuantileCIResult) (l, r int) {
	// Interval k lies between sample k-1 and sample k, so PMF(k)
	// is the chance the quantile falls in it. PMF decreases
	// moving away from the mode. When there are two modes, start
	// at the lower one.
	x := int(math.Ceil(float64(samp.N()+1)*samp.P()) - 1)
	if samp.P() == 0 {
		x = 0
	}
	accum := samp.PMF(x)

	l, r = x, x+1
	lp, rp := samp.PMF(l-1), samp.PMF(r)
	res.Ambiguous = rp == accum

	// Stop if there's nothing left to add, which guards against
	// rounding keeping accum just short of confidence.
	for accum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = samp.PMF(l - 1)
		} else {
			accum += rp
			r++
			rp = samp.PMF(r)
		}
	}
	res.Confidence = accum
	return l, r
}

// quantileCINormal finds the interval using the normal approximation
// of samp with a continuity correction.
func quantileCINormal(samp BinomialDist, confidence float64, res *QuantileCIResult) (l, r int, err error) {
	norm, err := samp.NormalApprox()
	if err != nil {
		return 0, 0, errors.Wrap(err, "QuantileCI")
	}
	l1, err := norm.Quantile((1 - confidence) / 2)
	if err != nil {
		return 0, 0, errors.Wrap(err, "QuantileCI")
	}
	r1 := 2*norm.Mu() - l1

	// Binomial point k covers [k-0.5, k+0.5] of the normal, so
	// round [l1, r1] out to half-integers and recover k.
	l = int(math.Floor(math.Floor(l1-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(r1-0.5)+0.5)) + 1

	// Pr[l <= X < r] under the continuity correction.
	mass := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = mass(l, r)

	// The interval is symmetric. Prefer the left-biased interval
	// if it still has enough mass.
	if biased := mass(l, r-1); biased >= confidence && biased < res.Confidence {
		res.Confidence, res.Ambiguous = biased, true
		r--
	}
	if l <= 0 && r >= samp.N()+1 {
		// The normal tails never quite reach 1, but an interval
		// covering the whole sample certainly holds the quantile.
		res.Confidence = 1
		res.Ambiguous = false
	}
	return l, r, nil
}
