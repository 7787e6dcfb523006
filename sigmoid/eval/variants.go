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

	"github.com/ajroetker/go-sigmoid/sigmoid"
)

// Variant is one named closed-form inverse-logit formula under comparison.
// The set exists only for this harness: formula selection is a design-time
// decision baked into sigmoid.InverseLogit, not runtime dispatch.
type Variant struct {
	Name string
	Fn   Func
	// Ref is the ideal mathematical function the formula intends to compute;
	// all inverse-logit variants share RefInverseLogit.
	Ref RefFunc
}

// Variants returns the candidate formulas the harness compares, in a fixed
// order.
func Variants() []Variant {
	return []Variant{
		{Name: "reciprocal", Fn: Reciprocal, Ref: RefInverseLogit},
		{Name: "exp-ratio", Fn: ExpRatio, Ref: RefInverseLogit},
		{Name: "tanh", Fn: TanhForm, Ref: RefInverseLogit},
		{Name: "robust", Fn: sigmoid.InverseLogit, Ref: RefInverseLogit},
	}
}

// Reciprocal is the textbook form 1/(1+exp(-z)). Its intermediate exp(-z)
// overflows to +Inf for z < sigmoid.ExpOverflowBound, collapsing the result
// to 0.0 roughly 35 units before the true saturation point and discarding
// the entire subnormal output range.
func Reciprocal(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// ExpRatio is exp(z)/(exp(z)+1) with no saturation guards. It degrades
// gracefully at the low end but evaluates Inf/(Inf+1) = NaN once exp(z)
// overflows.
func ExpRatio(z float64) float64 {
	e := math.Exp(z)
	return e / (e + 1)
}

// TanhForm is the algebraic rewrite 0.5 + 0.5*tanh(z/2), included as a
// comparison point for the harness.
func TanhForm(z float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*z)
}
