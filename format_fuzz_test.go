//go:build go1.18
// +build go1.18

package minicalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/minicalc"
)

func FuzzFormat(f *testing.F) {
	f.Add(0.0)
	f.Add(-2.5)
	f.Add(0.30000000000000004)
	f.Add(1e21)
	f.Add(1.5e-8)
	f.Add(math.MaxFloat64)
	f.Fuzz(func(t *testing.T, v float64) {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return
		}
		if v != 0 && math.Abs(v) < 0x1p-1022 {
			// Subnormals are rounded twice on the way back.
			return
		}
		s := minicalc.Format(v)
		r, err := minicalc.EvalString(s)
		if err != nil {
			t.Fatalf("%g formatted as %q, which failed: %v", v, s, err)
		}
		if r != v {
			t.Errorf("%g formatted as %q, which gave %g", v, s, r)
		}
	})
}
