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

	"github.com/pkg/errors"
)

// Report summarizes a candidate formula's accuracy against the oracle over
// one input sweep. All four axes are reported because they can disagree: a
// candidate can pair a high exact-match rate with a large worst-case error.
// No single field is the final metric.
//
// A Report is immutable once returned and fully deterministic: the same
// candidate, reference, oracle and inputs produce a bit-identical Report.
type Report struct {
	// N is the number of inputs evaluated.
	N int
	// ExactMatchRate is the fraction of inputs, in [0, 1], where the
	// candidate output equals the oracle output with absolute error exactly
	// zero.
	ExactMatchRate float64
	// MeanAbsError and MaxAbsError summarize |candidate - oracle|. If the
	// candidate produced NaN anywhere, both are NaN; that is the signal, not
	// a reporting defect.
	MeanAbsError float64
	MaxAbsError  float64
	// MeanBitDiff is the mean Hamming distance between candidate and oracle
	// bit patterns (see BitDiff).
	MeanBitDiff float64
}

// Evaluate scores candidate against ref over inputs. The reference is the
// ideal mathematical function the candidate is meant to compute, not the
// candidate's own expression, so the report measures fidelity to the true
// function rather than internal consistency.
//
// An empty input sweep is a contract violation and returns an error instead
// of degenerate statistics.
func (o *Oracle) Evaluate(candidate Func, ref RefFunc, inputs []float64) (Report, error) {
	if len(inputs) == 0 {
		return Report{}, errors.New("eval: empty input sequence")
	}
	if candidate == nil || ref == nil {
		return Report{}, errors.New("eval: nil candidate or reference function")
	}

	var (
		exact   int
		sumAbs  float64
		maxAbs  float64
		sumBits int
	)
	for _, x := range inputs {
		got := candidate(x)
		want := o.Eval(ref, x)

		absErr := math.Abs(got - want)
		if absErr == 0 {
			exact++
		}
		sumAbs += absErr
		if absErr > maxAbs || math.IsNaN(absErr) {
			maxAbs = absErr
		}
		sumBits += BitDiff(got, want)
	}

	n := float64(len(inputs))
	return Report{
		N:              len(inputs),
		ExactMatchRate: float64(exact) / n,
		MeanAbsError:   sumAbs / n,
		MaxAbsError:    maxAbs,
		MeanBitDiff:    float64(sumBits) / n,
	}, nil
}
