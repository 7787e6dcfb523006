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

package eval

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sigmoid/sigmoid"
)

func TestEvaluate_ContractViolations(t *testing.T) {
	o := newTestOracle(t)
	_, err := o.Evaluate(sigmoid.InverseLogit, RefInverseLogit, nil)
	require.Error(t, err)
	_, err = o.Evaluate(sigmoid.InverseLogit, RefInverseLogit, []float64{})
	require.Error(t, err)
	_, err = o.Evaluate(nil, RefInverseLogit, []float64{1})
	require.Error(t, err)
	_, err = o.Evaluate(sigmoid.InverseLogit, nil, []float64{1})
	require.Error(t, err)
}

// A candidate that matches the reference identically scores perfectly.
func TestEvaluate_Identity(t *testing.T) {
	o := newTestOracle(t)
	identity := func(x *big.Float, prec uint) *big.Float {
		return new(big.Float).SetPrec(prec).Set(x)
	}
	inputs, err := Linspace(-3, 3, 41)
	require.NoError(t, err)

	rep, err := o.Evaluate(func(x float64) float64 { return x }, identity, inputs)
	require.NoError(t, err)
	require.Equal(t, 41, rep.N)
	require.Equal(t, 1.0, rep.ExactMatchRate)
	require.Equal(t, 0.0, rep.MeanAbsError)
	require.Equal(t, 0.0, rep.MaxAbsError)
	require.Equal(t, 0.0, rep.MeanBitDiff)
}

func TestEvaluate_Deterministic(t *testing.T) {
	o := newTestOracle(t)
	inputs, err := Linspace(-40, 40, 321)
	require.NoError(t, err)

	first, err := o.Evaluate(Reciprocal, RefInverseLogit, inputs)
	require.NoError(t, err)
	second, err := o.Evaluate(Reciprocal, RefInverseLogit, inputs)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// In the transitional-low region the reciprocal form has already collapsed
// to 0.0 while the true value is still a representable subnormal. The robust
// form tracks the oracle there; the reciprocal form never matches it.
func TestEvaluate_TransitionalLowRegion(t *testing.T) {
	o := newTestOracle(t)
	inputs, err := Linspace(-740, -712, 200)
	require.NoError(t, err)

	robust, err := o.Evaluate(sigmoid.InverseLogit, RefInverseLogit, inputs)
	require.NoError(t, err)
	recip, err := o.Evaluate(Reciprocal, RefInverseLogit, inputs)
	require.NoError(t, err)

	require.Equal(t, 0.0, recip.ExactMatchRate)
	require.Greater(t, robust.ExactMatchRate, 0.5)
	require.Less(t, robust.MaxAbsError, recip.MaxAbsError)
	require.Less(t, robust.MeanBitDiff, recip.MeanBitDiff)
}

// Above the overflow point the unguarded exp-ratio form emits NaN and the
// report carries that as NaN error statistics; the robust form is exact.
func TestEvaluate_HighEndNaNSurfaces(t *testing.T) {
	o := newTestOracle(t)
	inputs, err := Linspace(700, 720, 11)
	require.NoError(t, err)

	raw, err := o.Evaluate(ExpRatio, RefInverseLogit, inputs)
	require.NoError(t, err)
	require.True(t, math.IsNaN(raw.MaxAbsError))
	require.Less(t, raw.ExactMatchRate, 1.0)

	robust, err := o.Evaluate(sigmoid.InverseLogit, RefInverseLogit, inputs)
	require.NoError(t, err)
	require.Equal(t, 1.0, robust.ExactMatchRate)
	require.Equal(t, 0.0, robust.MaxAbsError)
}

// Swapping a candidate for a strictly more accurate one never lowers the
// exact-match rate on the same sweep.
func TestEvaluate_ExactMatchOrdering(t *testing.T) {
	o := newTestOracle(t)
	// Start at -744: between logit(0x1p-1074) and logit(0x0.8p-1074) the
	// saturated 0.0 is one subnormal step from the correctly rounded value,
	// an accepted inexactness that would muddy the ordering below.
	inputs, err := Linspace(-744, 40, 1000)
	require.NoError(t, err)

	robust, err := o.Evaluate(sigmoid.InverseLogit, RefInverseLogit, inputs)
	require.NoError(t, err)
	ratio, err := o.Evaluate(ExpRatio, RefInverseLogit, inputs)
	require.NoError(t, err)
	recip, err := o.Evaluate(Reciprocal, RefInverseLogit, inputs)
	require.NoError(t, err)

	require.GreaterOrEqual(t, robust.ExactMatchRate, ratio.ExactMatchRate)
	require.GreaterOrEqual(t, ratio.ExactMatchRate, recip.ExactMatchRate)
	require.Greater(t, robust.ExactMatchRate, recip.ExactMatchRate)
}
