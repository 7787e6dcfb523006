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

	"github.com/pkg/errors"
)

// Boundaries holds the five thresholds at which the numerical behavior of
// closed-form inverse-logit expressions changes qualitatively in float64.
// The fields are strictly ordered:
//
//	LowerSaturation < ExpOverflowBound < EpsCrossover < MantissaCrossover < UpperSaturation
//
// The values depend on the working type's mantissa and exponent widths. This
// derivation is written against float64 (the only width Go float arithmetic
// has); a port to another width must re-derive and re-verify all five rather
// than scale these.
type Boundaries struct {
	LowerSaturation   float64
	ExpOverflowBound  float64
	EpsCrossover      float64
	MantissaCrossover float64
	UpperSaturation   float64
}

// DeriveBoundaries computes the five thresholds through the oracle:
//
//   - LowerSaturation: logit of the smallest positive float64; below it the
//     correctly rounded inverse logit is exactly 0.0.
//   - ExpOverflowBound: -ln(MaxFloat64); below it exp(-z) overflows to +Inf.
//   - EpsCrossover: -ln(2^-52); beyond it exp(-z) is absorbed by 1+exp(-z).
//   - MantissaCrossover: ln(2^53); beyond it the +1 is absorbed by exp(z)+1.
//   - UpperSaturation: logit of the rounding midpoint between the largest
//     float64 below 1.0 and 1.0 (ties-to-even rounds the midpoint to 1.0, so
//     the saturated region is closed on the left).
//
// The strict total ordering of the results is verified; a violation returns
// an error rather than a partially usable set.
func DeriveBoundaries(o *Oracle) (Boundaries, error) {
	negLog := func(x *big.Float, prec uint) *big.Float {
		return new(big.Float).SetPrec(prec).Neg(RefLog(x, prec))
	}

	b := Boundaries{
		LowerSaturation:   o.Eval(RefLogit, math.SmallestNonzeroFloat64),
		ExpOverflowBound:  o.Eval(negLog, math.MaxFloat64),
		EpsCrossover:      o.Eval(negLog, 0x1p-52),
		MantissaCrossover: o.Eval(RefLog, 0x1p53),
	}

	// 1 - 2^-54 is not a float64, so the upper boundary input is built at
	// oracle precision directly.
	mid := new(big.Float).SetPrec(o.prec).Sub(
		big.NewFloat(1).SetPrec(o.prec),
		big.NewFloat(0x1p-54).SetPrec(o.prec),
	)
	b.UpperSaturation = o.evalBig(RefLogit, mid)

	if !(b.LowerSaturation < b.ExpOverflowBound &&
		b.ExpOverflowBound < b.EpsCrossover &&
		b.EpsCrossover < b.MantissaCrossover &&
		b.MantissaCrossover < b.UpperSaturation) {
		return Boundaries{}, errors.Errorf("eval: derived boundaries are not strictly ordered: %+v", b)
	}
	return b, nil
}
