// Package sha3 provides a merkle hasher over SHA3-256 (the NIST padding,
// not the legacy keccak variant) with 32-byte nodes.
package sha3

import (
	"fmt"

	xsha3 "golang.org/x/crypto/sha3"
)

// HashSize is the node width in bytes.
const HashSize = 32

// Hasher implements merkle.Hasher[[32]byte] with SHA3-256.
type Hasher struct{}

// New returns a SHA3-256 merkle hasher.
func New() Hasher {
	return Hasher{}
}

// HashLeaf computes SHA3-256(item).
func (Hasher) HashLeaf(item []byte) [32]byte {
	return xsha3.Sum256(item)
}

// HashChildren computes SHA3-256(left || right).
func (Hasher) HashChildren(left, right [32]byte) [32]byte {
	data := make([]byte, 2*HashSize)
	copy(data[0:HashSize], left[:])
	copy(data[HashSize:], right[:])
	return xsha3.Sum256(data)
}

// LeafValue interprets item as an already-computed 32-byte hash.
func (Hasher) LeafValue(item []byte) ([32]byte, error) {
	if len(item) != HashSize {
		return [32]byte{}, fmt.Errorf("hash value must be %d bytes, got %d", HashSize, len(item))
	}
	return [32]byte(item), nil
}
