package merkle

// Hasher is the hash capability injected into the tree. Node values are
// opaque to the tree itself: any fixed-width comparable type works, which
// keeps the engine independent of the hash algorithm and of any particular
// field or digest representation.
type Hasher[H comparable] interface {
	// HashLeaf maps a raw input item to its leaf hash.
	HashLeaf(item []byte) H

	// HashChildren combines a left and a right child hash into their parent.
	HashChildren(left, right H) H

	// LeafValue interprets item as an already-computed hash value and
	// returns an error if the encoding is not a valid value of H.
	LeafValue(item []byte) (H, error)
}

// Side identifies which side of the node being proven a path sibling
// occupies. The verifier places the sibling on that side before hashing:
// SideLeft means HashChildren(sibling, current), SideRight means
// HashChildren(current, sibling).
type Side uint8

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// PathElement is one step of an inclusion proof: the sibling hash at one
// tree level and the side it occupies.
type PathElement[H comparable] struct {
	Side    Side
	Sibling H
}

// Path is an inclusion proof, ordered from the leaf level upward. It is a
// plain value: together with the leaf hash and the hasher it fully
// determines the root recomputation, with no reference back to any tree.
//
// A path omits levels where the proven leaf's ancestor was promoted (an
// unpaired last node on an odd-length level), so its length can be shorter
// than the tree height.
type Path[H comparable] []PathElement[H]

// Tree is a binary merkle tree over an ordered leaf sequence.
//
// The level matrix is owned exclusively by the tree: levels[0] is the leaf
// level and levels[len(levels)-1] is the root level, each level holding
// ceil(len(below)/2) nodes. Accessors return copies, never views into the
// matrix.
//
// A Tree is not safe for concurrent use. Callers that share an instance
// must serialize mutating calls (UpdateLeaf*, AppendLeaf*) against each
// other and against in-flight Prove calls. VerifyProof has no shared state
// and needs no such coordination.
type Tree[H comparable] struct {
	hasher     Hasher[H]
	hashLeaves bool

	// leaves aliases levels[0]; both are replaced together on rebuild.
	leaves []H
	levels [][]H
}
