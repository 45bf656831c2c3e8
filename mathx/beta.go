// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "gonum.org/v1/gonum/mathext"

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b).
//
// If x < 0 or x > 1, returns NaN.
func BetaInc(x, a, b float64) float64 {
	if x < 0 || x > 1 {
		return nan
	}
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}
