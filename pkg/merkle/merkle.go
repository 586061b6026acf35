// Package merkle implements a binary merkle hash tree with inclusion
// proofs and logarithmic-time single-leaf updates.
//
// Odd-length levels are handled by promotion: the unpaired last node is
// carried up to the parent level unchanged instead of being hashed with a
// copy of itself. This makes any leaf count valid without padding and
// without a power-of-two restriction.
package merkle

import "fmt"

// New builds a tree from raw input items. When hashLeaves is true each item
// is hashed once with the hasher's HashLeaf before becoming a leaf; when
// false each item must already encode a hash value and is decoded with
// LeafValue. An empty item sequence is legal and yields an empty tree with
// no root.
func New[H comparable](hasher Hasher[H], items [][]byte, hashLeaves bool) (*Tree[H], error) {
	if hasher == nil {
		return nil, fmt.Errorf("%w: hasher is required", ErrConfiguration)
	}

	t := &Tree[H]{hasher: hasher, hashLeaves: hashLeaves}

	leaves := make([]H, len(items))
	for i, item := range items {
		leaf, err := t.leafValue(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		leaves[i] = leaf
	}

	t.leaves = leaves
	t.rebuild()
	return t, nil
}

// NewFromLeaves builds a tree directly from leaf hashes. The input slice is
// copied; the caller keeps ownership of its own slice.
func NewFromLeaves[H comparable](hasher Hasher[H], leaves []H) (*Tree[H], error) {
	if hasher == nil {
		return nil, fmt.Errorf("%w: hasher is required", ErrConfiguration)
	}

	t := &Tree[H]{hasher: hasher}
	t.leaves = make([]H, len(leaves))
	copy(t.leaves, leaves)
	t.rebuild()
	return t, nil
}

// leafValue maps one raw item to a leaf hash according to the tree's leaf
// hashing configuration.
func (t *Tree[H]) leafValue(item []byte) (H, error) {
	if t.hashLeaves {
		return t.hasher.HashLeaf(item), nil
	}
	leaf, err := t.hasher.LeafValue(item)
	if err != nil {
		var zero H
		return zero, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return leaf, nil
}

// rebuild derives every level above the leaves from scratch. Each level is
// produced by scanning the level below in pairs; an unpaired last node on an
// odd-length level is promoted unchanged, never hashed with itself.
func (t *Tree[H]) rebuild() {
	if len(t.leaves) == 0 {
		t.levels = nil
		return
	}

	levels := make([][]H, 0)
	levels = append(levels, t.leaves)

	current := t.leaves
	for len(current) > 1 {
		next := make([]H, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, t.hasher.HashChildren(current[i], current[i+1]))
			} else {
				// Odd level: promote the unpaired node.
				next = append(next, current[i])
			}
		}
		levels = append(levels, next)
		current = next
	}

	t.levels = levels
}

// Root returns the root hash. It fails with ErrEmptyTree when the tree has
// no leaves, the only case in which no root is defined.
func (t *Tree[H]) Root() (H, error) {
	if len(t.levels) == 0 {
		var zero H
		return zero, ErrEmptyTree
	}
	return t.levels[len(t.levels)-1][0], nil
}

// LeafCount returns the number of leaves in the tree.
func (t *Tree[H]) LeafCount() int {
	return len(t.leaves)
}

// Height returns the number of levels, leaves included. An inclusion path
// never has more than Height()-1 elements. Zero for an empty tree.
func (t *Tree[H]) Height() int {
	return len(t.levels)
}

// Leaves returns a copy of the leaf hashes in tree order.
func (t *Tree[H]) Leaves() []H {
	out := make([]H, len(t.leaves))
	copy(out, t.leaves)
	return out
}

// Leaf returns the leaf hash at index.
func (t *Tree[H]) Leaf(index int) (H, error) {
	if index < 0 || index >= len(t.leaves) {
		var zero H
		return zero, fmt.Errorf("%w: index %d (tree has %d leaves)", ErrIndexOutOfRange, index, len(t.leaves))
	}
	return t.leaves[index], nil
}

// Prove generates the inclusion path for the leaf at index.
//
// The path is ordered from the leaf level upward. At each level the sibling
// hash is recorded together with the side it occupies relative to the
// leaf's ancestor; levels where the ancestor was promoted contribute no
// element, since no hash was performed there. A single-leaf tree yields an
// empty path.
func (t *Tree[H]) Prove(index int) (Path[H], error) {
	if len(t.leaves) == 0 {
		return nil, fmt.Errorf("%w: nothing to prove", ErrEmptyTree)
	}
	if index < 0 || index >= len(t.leaves) {
		return nil, fmt.Errorf("%w: index %d (tree has %d leaves)", ErrIndexOutOfRange, index, len(t.leaves))
	}

	path := make(Path[H], 0, len(t.levels)-1)
	idx := index

	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]

		if idx == len(nodes)-1 && len(nodes)%2 == 1 {
			// The ancestor was promoted at this level: no sibling exists
			// and no hash was performed, so the path skips it.
			idx /= 2
			continue
		}

		if idx%2 == 0 {
			path = append(path, PathElement[H]{Side: SideRight, Sibling: nodes[idx+1]})
		} else {
			path = append(path, PathElement[H]{Side: SideLeft, Sibling: nodes[idx-1]})
		}
		idx /= 2
	}

	return path, nil
}

// UpdateLeaf replaces the leaf at index with the leaf derived from item and
// recomputes the leaf's ancestor chain in place. Only O(log n) nodes are
// touched; the resulting level matrix is identical to a full rebuild with
// the one leaf replaced.
func (t *Tree[H]) UpdateLeaf(item []byte, index int) error {
	leaf, err := t.leafValue(item)
	if err != nil {
		return err
	}
	return t.UpdateLeafHash(leaf, index)
}

// UpdateLeafHash is UpdateLeaf for an already-computed leaf hash.
func (t *Tree[H]) UpdateLeafHash(newLeaf H, index int) error {
	if index < 0 || index >= len(t.leaves) {
		return fmt.Errorf("%w: index %d (tree has %d leaves)", ErrIndexOutOfRange, index, len(t.leaves))
	}

	// levels[0] aliases leaves, so this rewrites both.
	t.leaves[index] = newLeaf

	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]
		parent := idx / 2
		left := 2 * parent

		var node H
		if left+1 < len(nodes) {
			node = t.hasher.HashChildren(nodes[left], nodes[left+1])
		} else {
			// Promoted node: the parent is the child, unchanged.
			node = nodes[left]
		}

		t.levels[level+1][parent] = node
		idx = parent
	}

	return nil
}

// AppendLeaves appends raw items to the leaf sequence and rebuilds the
// tree. Appending is not incremental: the level structure changes with the
// leaf count, so a full rebuild keeps the matrix consistent.
func (t *Tree[H]) AppendLeaves(items [][]byte) error {
	leaves := make([]H, len(items))
	for i, item := range items {
		leaf, err := t.leafValue(item)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		leaves[i] = leaf
	}
	return t.AppendLeafHashes(leaves)
}

// AppendLeafHashes is AppendLeaves for already-computed leaf hashes.
func (t *Tree[H]) AppendLeafHashes(leaves []H) error {
	if len(leaves) == 0 {
		return nil
	}
	t.leaves = append(t.leaves, leaves...)
	t.rebuild()
	return nil
}

// IndexOf returns the tree index of the leaf derived from item, scanning
// leaves left to right. The second return value is false when no leaf
// matches or when item does not decode to a leaf value.
func (t *Tree[H]) IndexOf(item []byte) (int, bool) {
	leaf, err := t.leafValue(item)
	if err != nil {
		return 0, false
	}
	for i, l := range t.leaves {
		if l == leaf {
			return i, true
		}
	}
	return 0, false
}
