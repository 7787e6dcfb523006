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

// Linspace returns n evenly spaced float64 values from lo to hi inclusive,
// for building evaluation sweeps.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, errors.Errorf("eval: linspace needs at least 2 points, got %d", n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, errors.Errorf("eval: linspace endpoints must be finite, got [%v, %v]", lo, hi)
	}
	if lo >= hi {
		return nil, errors.Errorf("eval: linspace needs lo < hi, got [%v, %v]", lo, hi)
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	// Hit the right endpoint exactly regardless of step rounding.
	out[n-1] = hi
	return out, nil
}
