//go:build amd64

package sigmoid

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		blockLanes, blockName = 8, "avx512"
	case cpu.X86.HasAVX2:
		blockLanes, blockName = 4, "avx2"
	default:
		// SSE2 baseline: two float64 lanes.
		blockLanes, blockName = 2, "sse2"
	}
}
