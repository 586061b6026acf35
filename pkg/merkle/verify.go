package merkle

// VerifyProof reports whether path proves that leafHash is a leaf of the
// tree whose root is root. It is standalone and pure: no tree instance is
// involved, only the hasher, and it never fails — for any well-typed inputs
// it returns a boolean, with a mismatched or wrong-length path simply
// producing an accumulator that differs from root.
//
// Replay starts at leafHash and folds in each sibling in path order, placing
// the sibling on the side its element names: HashChildren(sibling, acc) for
// SideLeft, HashChildren(acc, sibling) for SideRight. An empty path is valid
// exactly when leafHash equals root (single-leaf tree).
//
// Both combinations are computed at every step and the result is picked by
// indexing rather than branching, so the evaluation stays data-independent
// when side flags are secret witness values in a proof-carrying consumer.
func VerifyProof[H comparable](hasher Hasher[H], path Path[H], leafHash H, root H) bool {
	acc := leafHash
	for _, el := range path {
		candidates := [2]H{
			SideLeft:  hasher.HashChildren(el.Sibling, acc),
			SideRight: hasher.HashChildren(acc, el.Sibling),
		}
		// Masking to one bit makes an ill-formed Side value degrade into a
		// root mismatch instead of an index panic.
		acc = candidates[el.Side&1]
	}
	return acc == root
}
