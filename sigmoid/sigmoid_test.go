// Copyright 2026 go-sigmoid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sigmoid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseLogit_FixedPoints(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0.5},
		{-1, 0.2689414213699951},
		{1, 0.7310585786300049},
		{-10000, 0},
		{10000, 1},
		{math.Inf(-1), 0},
		{math.Inf(1), 1},
	}
	for _, tc := range tests {
		got := InverseLogit(tc.in)
		require.Equal(t, tc.want, got, "InverseLogit(%v)", tc.in)
	}
}

func TestInverseLogit_Saturation(t *testing.T) {
	// Strictly below the lower boundary: exactly 0.0, positive sign.
	for _, z := range []float64{
		math.Nextafter(LowerSaturation, math.Inf(-1)),
		-745, -1000, -1e6, -math.MaxFloat64,
	} {
		got := InverseLogit(z)
		require.Equal(t, 0.0, got, "InverseLogit(%v)", z)
		require.False(t, math.Signbit(got), "InverseLogit(%v) returned -0", z)
	}
	// At and above the upper boundary: exactly 1.0.
	for _, z := range []float64{
		UpperSaturation,
		math.Nextafter(UpperSaturation, math.Inf(1)),
		38, 710, 1e6, math.MaxFloat64,
	} {
		require.Equal(t, 1.0, InverseLogit(z), "InverseLogit(%v)", z)
	}
	// Just below the upper boundary the result is still distinguishable
	// from 1.0.
	below := InverseLogit(math.Nextafter(UpperSaturation, math.Inf(-1)))
	require.Equal(t, 1-0x1p-53, below)
}

// The differential that motivates the exponential-numerator form: at the
// lower saturation boundary the robust function still produces the smallest
// positive float64, while the reciprocal form has already collapsed to 0.0
// because its intermediate exp(-z) overflowed.
func TestInverseLogit_LowerBoundaryDifferential(t *testing.T) {
	z := LowerSaturation
	require.Equal(t, math.SmallestNonzeroFloat64, InverseLogit(z))

	reciprocal := 1 / (1 + math.Exp(-z))
	require.Equal(t, 0.0, reciprocal)
	require.True(t, math.IsInf(math.Exp(-z), 1), "exp(-z) should overflow at the boundary")
}

// The failure the high-end guard removes: unguarded, exp(z)/(exp(z)+1)
// evaluates Inf/(Inf+1) = NaN for a mathematically valid input.
func TestInverseLogit_HighEndGuardDifferential(t *testing.T) {
	e := math.Exp(10000)
	require.True(t, math.IsNaN(e/(e+1)), "unguarded exp-ratio form should produce NaN")
	require.Equal(t, 1.0, InverseLogit(10000))
}

func TestInverseLogit_RangeAndNoNaN(t *testing.T) {
	for z := -800.0; z <= 800.0; z += 0.13 {
		got := InverseLogit(z)
		require.False(t, math.IsNaN(got), "InverseLogit(%v) is NaN", z)
		require.GreaterOrEqual(t, got, 0.0, "InverseLogit(%v)", z)
		require.LessOrEqual(t, got, 1.0, "InverseLogit(%v)", z)
	}
	assert.True(t, math.IsNaN(InverseLogit(math.NaN())), "NaN should propagate")
}

func TestInverseLogit_Symmetry(t *testing.T) {
	// InverseLogit(z) + InverseLogit(-z) within one ulp of 1.0.
	check := func(z float64) {
		sum := InverseLogit(z) + InverseLogit(-z)
		require.LessOrEqual(t, math.Abs(sum-1), 0x1p-52, "symmetry at z=%v: sum=%v", z, sum)
	}
	for z := 0.0; z <= 100.0; z += 0.37 {
		check(z)
	}
	for _, z := range []float64{710, 745, 1e4, 1e300, math.Inf(1)} {
		check(z)
	}
}

func TestInverseLogit_Monotonic(t *testing.T) {
	grids := [][3]float64{
		// {lo, hi, step}; each grid crosses at least one region boundary.
		{-800, -700, 0.01},
		{-746, -744, 0.0001},
		{-60, 60, 0.01},
		{35, 39, 0.0001},
	}
	for _, g := range grids {
		prev := math.Inf(-1)
		prevZ := math.Inf(-1)
		for z := g[0]; z <= g[1]; z += g[2] {
			got := InverseLogit(z)
			require.GreaterOrEqual(t, got, prev,
				"InverseLogit decreased between %v and %v", prevZ, z)
			prev, prevZ = got, z
		}
	}
}

func TestBoundaryConstantOrdering(t *testing.T) {
	require.Less(t, LowerSaturation, ExpOverflowBound)
	require.Less(t, ExpOverflowBound, EpsCrossover)
	require.Less(t, EpsCrossover, MantissaCrossover)
	require.Less(t, MantissaCrossover, UpperSaturation)
}

func BenchmarkInverseLogit(b *testing.B) {
	z := -3.7
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = InverseLogit(z)
	}
	_ = sink
}
