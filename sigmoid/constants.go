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

// =============================================================================
// Region boundary constants for IEEE binary64
//
// The five thresholds below partition the input line into regions of
// qualitatively different numerical behavior:
//
//	(-Inf, LowerSaturation)                  saturate to 0.0
//	[LowerSaturation, ExpOverflowBound)      transitional low: exp(-z) would
//	                                         overflow, exp(z) is subnormal
//	[ExpOverflowBound, EpsCrossover)         stable
//	[EpsCrossover, MantissaCrossover)        transitional high: the +1 term
//	                                         starts being absorbed
//	[MantissaCrossover, UpperSaturation)     exp(z)+1 == exp(z) numerically
//	[UpperSaturation, +Inf)                  saturate to 1.0
//
// They are derived by eval.DeriveBoundaries over a high-precision oracle and
// baked in here as literals; the eval tests assert these literals match the
// derivation bit for bit. The values are specific to the float64 mantissa and
// exponent widths. A port to another float size must re-derive all five, not
// rescale them.
// =============================================================================

const (
	// LowerSaturation is the least input whose correctly rounded inverse
	// logit is still nonzero: the logit of 0x1p-1074, the smallest positive
	// float64. At this input the function returns exactly 0x1p-1074; below
	// it, exactly 0.0.
	LowerSaturation = -744.4400719213812

	// ExpOverflowBound is the input below which exp(-z) overflows to +Inf:
	// -ln(MaxFloat64). The reciprocal form 1/(1+exp(-z)) hard-saturates to
	// 0.0 here, about 35 units short of the true saturation point.
	ExpOverflowBound = -709.782712893384

	// EpsCrossover is the input beyond which 1+exp(-z) == 1 in float64
	// because exp(-z) drops below the machine epsilon of 1.0: -ln(0x1p-52).
	EpsCrossover = 36.04365338911715

	// MantissaCrossover is the input beyond which exp(z)+1 == exp(z) in
	// float64 because the unit in the last place of exp(z) reaches 1.0:
	// ln(0x1p53).
	MantissaCrossover = 36.7368005696771

	// UpperSaturation is the least input whose correctly rounded inverse
	// logit is exactly 1.0: the logit of the rounding midpoint between
	// 1-0x1p-53 and 1.0, which is ln(2^54 - 1). Ties-to-even rounds the
	// midpoint up, so saturation applies from this input inclusive.
	UpperSaturation = 37.42994775023705
)
