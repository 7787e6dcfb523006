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

import "math"

// InverseLogit computes the logistic sigmoid 1/(1+exp(-z)) for a float64,
// using the algebraically equivalent form exp(z)/(exp(z)+1).
//
// The exponential-numerator form is used instead of the textbook reciprocal
// form because the reciprocal form overflows its intermediate exp(-z) to +Inf
// for z < ExpOverflowBound (-709.78), collapsing to 0.0 about 35 units before
// the true saturation point at LowerSaturation (-744.44) and silently losing
// the entire subnormal output range. The exponential-numerator form degrades
// to evaluating exp(z) alone once the +1 term is absorbed, and exp(z)
// independently rounds to the correct answer across exactly that region.
//
// Unguarded, the exponential-numerator form returns Inf/(Inf+1) = NaN for
// large z; the UpperSaturation clamp removes that failure mode entirely.
//
// In [MantissaCrossover, UpperSaturation) the raw ratio jitters between 1.0
// and 1-0x1p-52 with the parity of exp(z)'s mantissa (the +1 ties either way
// under round-to-even), which both costs a ulp and breaks monotonicity. The
// correctly rounded value across that whole region is uniformly the largest
// float64 below 1.0, so that region dispatches the constant instead.
//
// InverseLogit is total: for every finite z the result is in [0, 1] and never
// NaN; -Inf maps to 0.0 and +Inf to 1.0. NaN propagates. It is monotone
// non-decreasing over the whole input line.
func InverseLogit(z float64) float64 {
	e := math.Exp(z)
	r := e / (e + 1)
	// Evaluate unconditionally, then select; comparisons and selects keep
	// the shape data-parallel safe.
	if z >= MantissaCrossover {
		r = 1 - 0x1p-53
	}
	if z >= UpperSaturation {
		r = 1
	}
	if z < LowerSaturation {
		r = 0
	}
	return r
}
