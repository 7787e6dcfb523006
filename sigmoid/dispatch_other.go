//go:build !amd64 && !arm64

package sigmoid

func init() {
	blockLanes, blockName = 1, "scalar"
}
