// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

// aliasTable draws weighted indexes in constant time using Vose's
// alias method.
type aliasTable struct {
	prob  []float64
	alias []int
}

// newAliasTable builds an alias table for weights w. The weights must
// be non-negative with a positive sum. They need not sum to 1.
func newAliasTable(w []float64) aliasTable {
	n := len(w)
	var total float64
	for _, x := range w {
		total += x
	}

	t := aliasTable{make([]float64, n), make([]int, n)}
	scaled := make([]float64, n)
	var small, large []int
	for i, x := range w {
		scaled[i] = x * float64(n) / total
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}
	for len(small) > 0 && len(large) > 0 {
		s, l := small[len(small)-1], large[len(large)-1]
		small = small[:len(small)-1]
		t.prob[s], t.alias[s] = scaled[s], l
		scaled[l] = (scaled[l] + scaled[s]) - 1
		if scaled[l] < 1 {
			large = large[:len(large)-1]
			small = append(small, l)
		}
	}
	// Anything left over is 1 up to rounding error.
	for _, i := range large {
		t.prob[i], t.alias[i] = 1, i
	}
	for _, i := range small {
		t.prob[i], t.alias[i] = 1, i
	}
	return t
}

// draw returns a random index with probability proportional to its
// weight.
func (t aliasTable) draw(rng *rand.Rand) int {
	i := rng.Intn(len(t.prob))
	if rng.Float64() < t.prob[i] {
		return i
	}
	return t.alias[i]
}
