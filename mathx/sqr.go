// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Sqr returns x².
func Sqr(x float64) float64 {
	return x * x
}
