// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements parametric probability distributions.
//
// Each distribution is an immutable value constructed by a validating
// NewXxxDist function. A distribution implements only the capability
// interfaces its mathematics supports: every distribution is a
// Sampler; continuous distributions implement Continuous and discrete
// ones implement Discrete; most implement Moments, while those whose
// moments exist only for some parameters implement OptionalMoments;
// and a few implement Estimable, fitting a new distribution to a
// sample by maximum likelihood.
//
// Distribution values are safe for concurrent use. Random number
// generators are not: see DefaultRand.
package stats // import "github.com/aclements/go-moredist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
