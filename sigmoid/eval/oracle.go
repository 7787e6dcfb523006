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

// MinPrecision is the smallest accepted oracle mantissa width: 4x the
// float64 mantissa width. Below that the reference values cannot be trusted
// as ground truth.
const MinPrecision = 4 * 53

// DefaultPrecision is a comfortable default oracle width.
const DefaultPrecision = 256

// RefFunc evaluates an ideal mathematical function on big.Float values at
// the given mantissa precision. Implementations must be pure.
type RefFunc func(x *big.Float, prec uint) *big.Float

// Func is a float64 candidate formula under evaluation.
type Func func(float64) float64

// Oracle evaluates reference functions at an extended mantissa precision and
// rounds the results back to float64 with round-to-nearest, ties-to-even.
// Each Oracle is an independent, immutable configuration; there is no global
// precision state.
//
// For well-conditioned functions the returned float64 equals what an
// infinite-precision evaluation would round to. Near a cancellation point of
// the reference function itself the oracle silently inherits the reduced
// accuracy; it does not detect or signal that case.
type Oracle struct {
	prec uint
}

// NewOracle returns an oracle carrying prec mantissa bits. Precisions below
// MinPrecision are rejected.
func NewOracle(prec uint) (*Oracle, error) {
	if prec < MinPrecision {
		return nil, errors.Errorf("eval: oracle precision %d below minimum %d (4x the float64 mantissa width)", prec, MinPrecision)
	}
	return &Oracle{prec: prec}, nil
}

// Precision reports the oracle's mantissa width in bits.
func (o *Oracle) Precision() uint { return o.prec }

// Eval promotes x losslessly to the oracle precision, applies f, and rounds
// the result back to float64. NaN input yields NaN.
func (o *Oracle) Eval(f RefFunc, x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	xb := new(big.Float).SetPrec(o.prec).SetFloat64(x)
	return o.evalBig(f, xb)
}

func (o *Oracle) evalBig(f RefFunc, x *big.Float) float64 {
	y := f(x, o.prec)
	out, _ := y.Float64()
	return out
}
