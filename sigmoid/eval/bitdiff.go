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
	"math/bits"
)

// BitDiff returns the Hamming distance between the raw bit patterns of two
// float64 values, in [0, 64]. Identical bit patterns (including identical
// signed zeros and identical NaN payloads) give 0; 0.0 vs -0.0 gives 1.
//
// The distance is a coarse proxy for how many low-order mantissa bits were
// lost, not an exact ULP distance: the two diverge near exponent boundaries
// and sign changes. Treat it as a diagnostic heuristic, not an error bound.
func BitDiff(a, b float64) int {
	return bits.OnesCount64(math.Float64bits(a) ^ math.Float64bits(b))
}
