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

// Block width for the batch transform, chosen once at init from CPU features
// (see dispatch_amd64.go / dispatch_other.go). Processing fixed-size blocks
// through array pointers eliminates bounds checks in the inner body and keeps
// the loop shape friendly to auto-vectorization; results are bit-identical to
// the scalar loop.

var (
	blockLanes int
	blockName  string
)

// BlockLanes reports the block width selected for TransformInverseLogit.
func BlockLanes() int { return blockLanes }

// BlockDispatch reports the name of the selected dispatch level.
func BlockDispatch() string { return blockName }

// TransformInverseLogit applies InverseLogit elementwise over
// min(len(in), len(out)) elements.
func TransformInverseLogit(in, out []float64) {
	n := min(len(in), len(out))
	i := 0
	if blockLanes >= 8 {
		for ; i+8 <= n; i += 8 {
			inverseLogitBlock8((*[8]float64)(in[i:]), (*[8]float64)(out[i:]))
		}
	}
	for ; i+4 <= n; i += 4 {
		inverseLogitBlock4((*[4]float64)(in[i:]), (*[4]float64)(out[i:]))
	}
	for ; i < n; i++ {
		out[i] = InverseLogit(in[i])
	}
}

func inverseLogitBlock8(in, out *[8]float64) {
	out[0] = InverseLogit(in[0])
	out[1] = InverseLogit(in[1])
	out[2] = InverseLogit(in[2])
	out[3] = InverseLogit(in[3])
	out[4] = InverseLogit(in[4])
	out[5] = InverseLogit(in[5])
	out[6] = InverseLogit(in[6])
	out[7] = InverseLogit(in[7])
}

func inverseLogitBlock4(in, out *[4]float64) {
	out[0] = InverseLogit(in[0])
	out[1] = InverseLogit(in[1])
	out[2] = InverseLogit(in[2])
	out[3] = InverseLogit(in[3])
}
