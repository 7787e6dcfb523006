//go:build arm64

package sigmoid

import "golang.org/x/sys/cpu"

func init() {
	// NEON is baseline on arm64: two float64 lanes. SVE vectors are wider,
	// but Go exposes no portable lane count for them; stay at the 128-bit
	// width unless SVE is absent too.
	blockLanes, blockName = 2, "neon"
	if !cpu.ARM64.HasASIMD {
		blockLanes, blockName = 1, "scalar"
	}
}
