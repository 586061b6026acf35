package merkle

import "fmt"

// FixedDepthPath is an inclusion path padded to a constant number of
// elements, for consumers that need a uniform proof shape, e.g. a
// fixed-depth verification circuit. Used[i] reports whether Elements[i] is
// a real path element or padding; padding entries are no-ops during
// verification. The tree itself carries no depth constraint — padding is
// purely a boundary concern.
type FixedDepthPath[H comparable] struct {
	Elements []PathElement[H]
	Used     []bool
}

// FixDepth pads path to exactly depth elements. It fails with
// ErrConfiguration when the path is longer than the requested depth.
func FixDepth[H comparable](path Path[H], depth int) (FixedDepthPath[H], error) {
	if len(path) > depth {
		return FixedDepthPath[H]{}, fmt.Errorf("%w: path has %d elements, fixed depth is %d", ErrConfiguration, len(path), depth)
	}

	elements := make([]PathElement[H], depth)
	used := make([]bool, depth)
	copy(elements, path)
	for i := range path {
		used[i] = true
	}

	return FixedDepthPath[H]{Elements: elements, Used: used}, nil
}

// VerifyFixedDepth is VerifyProof for a fixed-depth path. Every element is
// replayed, padding included; a padding entry leaves the accumulator
// unchanged. As in VerifyProof, all candidates are computed at every step
// and selected by indexing, keeping the evaluation data-independent.
func VerifyFixedDepth[H comparable](hasher Hasher[H], path FixedDepthPath[H], leafHash H, root H) bool {
	if len(path.Elements) != len(path.Used) {
		return false
	}

	acc := leafHash
	for i, el := range path.Elements {
		candidates := [2]H{
			SideLeft:  hasher.HashChildren(el.Sibling, acc),
			SideRight: hasher.HashChildren(acc, el.Sibling),
		}
		advanced := [2]H{acc, candidates[el.Side&1]}
		acc = advanced[b2i(path.Used[i])]
	}
	return acc == root
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
