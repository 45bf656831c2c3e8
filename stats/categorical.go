// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// A Category is one outcome of a categorical distribution and its
// probability.
type Category[L any] struct {
	Label  L
	Weight float64
}

// CategoricalDist is a distribution over a finite set of labels.
//
// Weights are used as given. They are not normalized and their sum is
// not checked, so a caller that passes weights summing to something
// other than 1 will see PMF and CDF values scaled accordingly.
// Sampling draws in proportion to the weights either way.
type CategoricalDist[L any] struct {
	cmp     func(a, b L) int
	labels  []L
	weights []float64
	cum     []float64
	table   aliasTable
}

var _ Discrete[int] = (*CategoricalDist[int])(nil)
var _ Discrete[string] = (*CategoricalDist[string])(nil)

// NewCategoricalDist returns a categorical distribution over cats,
// ordering labels by their natural order.
func NewCategoricalDist[L cmp.Ordered](cats []Category[L]) (*CategoricalDist[L], error) {
	return NewCategoricalDistFunc(cats, cmp.Compare[L])
}

// NewCategoricalDistFunc is like NewCategoricalDist, but orders labels
// using cmp, which must be a strict weak ordering that returns a
// negative number when a < b, zero when a == b, and a positive number
// when a > b.
//
// It fails if cats is empty, if any weight is negative or NaN, if all
// weights are zero, or if two categories have equal labels.
func NewCategoricalDistFunc[L any](cats []Category[L], cmp func(a, b L) int) (*CategoricalDist[L], error) {
	const name = "CategoricalDist"
	if len(cats) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, name)
	}

	sorted := slices.Clone(cats)
	slices.SortStableFunc(sorted, func(a, b Category[L]) int {
		return cmp(a.Label, b.Label)
	})

	d := &CategoricalDist[L]{
		cmp:     cmp,
		labels:  make([]L, len(sorted)),
		weights: make([]float64, len(sorted)),
		cum:     make([]float64, len(sorted)),
	}
	var sum float64
	for i, c := range sorted {
		if !(c.Weight >= 0) || math.IsInf(c.Weight, 1) {
			return nil, invalidParam(name, "weight %v of %v must be finite and >= 0", c.Weight, c.Label)
		}
		if i > 0 && cmp(sorted[i-1].Label, c.Label) == 0 {
			return nil, invalidParam(name, "duplicate label %v", c.Label)
		}
		d.labels[i] = c.Label
		d.weights[i] = c.Weight
		sum += c.Weight
		d.cum[i] = sum
	}
	if sum == 0 {
		return nil, invalidParam(name, "weights must not all be zero")
	}
	d.table = newAliasTable(d.weights)
	return d, nil
}

// Labels returns the labels of d in increasing order.
func (d *CategoricalDist[L]) Labels() []L {
	return slices.Clone(d.labels)
}

// Weights returns the weights of d in the same order as Labels.
func (d *CategoricalDist[L]) Weights() []float64 {
	return slices.Clone(d.weights)
}

func (d *CategoricalDist[L]) String() string {
	var b strings.Builder
	b.WriteString("Categorical(")
	for i, l := range d.labels {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", l, d.weights[i])
	}
	b.WriteString(")")
	return b.String()
}

func (d *CategoricalDist[L]) find(label L) (int, bool) {
	return slices.BinarySearchFunc(d.labels, label, d.cmp)
}

// PMF returns the weight of label, or 0 if label is not a category
// of d.
func (d *CategoricalDist[L]) PMF(label L) float64 {
	if i, ok := d.find(label); ok {
		return d.weights[i]
	}
	return 0
}

// CDF returns the total weight of categories whose label is <= label.
// It returns 0 below the smallest label and 1 above the largest.
func (d *CategoricalDist[L]) CDF(label L) float64 {
	i, ok := d.find(label)
	switch {
	case ok:
		return d.cum[i]
	case i == 0:
		return 0
	case i == len(d.labels):
		return 1
	}
	// label falls strictly between two categories.
	return d.cum[i-1]
}

func (d *CategoricalDist[L]) Sample(rng *rand.Rand, n int) []L {
	return sample(rng, n, func(rng *rand.Rand) L {
		return d.labels[d.table.draw(rng)]
	})
}
