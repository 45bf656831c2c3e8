// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999999 <= got && got*0.99999999 <= expect
}

func TestSqr(t *testing.T) {
	for x, want := range map[float64]float64{0: 0, 2: 4, -3: 9, 0.5: 0.25} {
		if got := Sqr(x); got != want {
			t.Errorf("Sqr(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestChoose(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{5, -1, 0},
		{5, 0, 1},
		{5, 2, 10},
		{5, 5, 1},
		{5, 6, 0},
		{20, 10, 184756},
		{30, 15, 155117520},
		{50, 25, 126410606437752},
	}
	for _, test := range tests {
		if got := Choose(test.n, test.k); !aeq(test.want, got) {
			t.Errorf("Choose(%d, %d) = %v, want %v", test.n, test.k, got, test.want)
		}
	}
}

func TestLogChoose(t *testing.T) {
	if got := LogChoose(10, 3); !aeq(math.Log(120), got) {
		t.Errorf("LogChoose(10, 3) = %v, want %v", got, math.Log(120))
	}
	if got := LogChoose(3, 4); !math.IsInf(got, -1) {
		t.Errorf("LogChoose(3, 4) = %v, want -Inf", got)
	}
}

func TestBetaInc(t *testing.T) {
	// I_x(1, 1) is the uniform CDF.
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := BetaInc(x, 1, 1); !aeq(x, got) && !(x == 0 && got == 0) {
			t.Errorf("BetaInc(%v, 1, 1) = %v, want %v", x, got, x)
		}
	}
	// I_x(a, 1) = x^a.
	if got := BetaInc(0.5, 3, 1); !aeq(0.125, got) {
		t.Errorf("BetaInc(0.5, 3, 1) = %v, want 0.125", got)
	}
	if got := BetaInc(-0.1, 1, 1); !math.IsNaN(got) {
		t.Errorf("BetaInc(-0.1, 1, 1) = %v, want NaN", got)
	}
}
