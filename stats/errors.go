// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParameter is returned by distribution constructors
	// when a parameter lies outside the distribution's domain.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrInvalidProbability is returned by Quantile when its
	// argument is not in [0, 1].
	ErrInvalidProbability = errors.New("probability out of range [0, 1]")

	// ErrEmptyInput is returned when a categorical distribution is
	// constructed from no categories.
	ErrEmptyInput = errors.New("empty input")

	// ErrEmptySample is returned by MLE when given no observations.
	ErrEmptySample = errors.New("empty sample")
)

// invalidParam returns an ErrInvalidParameter error for distribution
// dist describing the violated constraint.
func invalidParam(dist, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, dist+": "+format, args...)
}

// checkProb returns an ErrInvalidProbability error if p is not in
// [0, 1]. NaN is rejected.
func checkProb(dist string, p float64) error {
	if p >= 0 && p <= 1 {
		return nil
	}
	return errors.Wrapf(ErrInvalidProbability, "%s: quantile of %v", dist, p)
}

// emptySample returns an ErrEmptySample error for an MLE of dist.
func emptySample(dist string) error {
	return errors.Wrapf(ErrEmptySample, "%s: MLE", dist)
}
