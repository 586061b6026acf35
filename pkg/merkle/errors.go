package merkle

import "errors"

var (
	// ErrConfiguration signals that the input leaf set or tree options
	// violate a structural precondition, e.g. an item that does not decode
	// to a hash value when leaf hashing is disabled.
	ErrConfiguration = errors.New("merkle: invalid configuration")

	// ErrIndexOutOfRange signals a leaf or proof index outside [0, leafCount).
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")

	// ErrEmptyTree signals a root or proof request on a tree with no leaves.
	ErrEmptyTree = errors.New("merkle: tree has no leaves")
)
