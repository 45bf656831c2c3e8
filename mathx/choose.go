// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// smallFactLimit is the largest n for which Choose computes the
// binomial coefficient exactly by multiplication. Beyond this, it
// goes through the log-gamma function.
const smallFactLimit = 20

// Choose returns the binomial coefficient of n and k as a float64.
// It returns 0 if k < 0 or k > n.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if n <= smallFactLimit {
		// Exact. The intermediate product is always an
		// integer, so this never rounds.
		res := 1.0
		for i := 1; i <= k; i++ {
			res = res * float64(n-k+i) / float64(i)
		}
		return res
	}
	return math.Round(math.Exp(LogChoose(float64(n), float64(k))))
}

// LogChoose returns the natural logarithm of the generalized binomial
// coefficient Γ(n+1) / (Γ(k+1) Γ(n-k+1)). It returns -Inf if k < 0 or
// k > n.
func LogChoose(n, k float64) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return combin.LogGeneralizedBinomial(n, k)
}
