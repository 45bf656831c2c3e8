// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"time"

	"golang.org/x/exp/rand"
)

var defaultRand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// DefaultRand returns the generator used by Sample methods when they
// are passed a nil *rand.Rand.
//
// The default generator is shared by the whole process and is not
// safe for concurrent use. Programs that sample from multiple
// goroutines must pass each goroutine its own generator.
func DefaultRand() *rand.Rand {
	return defaultRand
}

// Seed reseeds the default generator.
func Seed(seed uint64) {
	defaultRand.Seed(seed)
}

func randOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return defaultRand
	}
	return rng
}

// srcOf returns rng as a gonum distuv source. A nil rng yields a nil
// Source rather than a non-nil interface holding a nil pointer.
func srcOf(rng *rand.Rand) rand.Source {
	if rng == nil {
		return nil
	}
	return rng
}
