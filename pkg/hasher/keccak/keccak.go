// Package keccak provides a merkle hasher over keccak256 with 32-byte
// nodes, the combination used by Solidity verifiers: parents are
// keccak256(left || right).
package keccak

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// HashSize is the node width in bytes.
const HashSize = 32

// Hasher implements merkle.Hasher[[32]byte] with keccak256.
type Hasher struct{}

// New returns a keccak256 merkle hasher.
func New() Hasher {
	return Hasher{}
}

// HashLeaf computes keccak256(item).
func (Hasher) HashLeaf(item []byte) [32]byte {
	return [32]byte(crypto.Keccak256Hash(item))
}

// HashChildren computes keccak256(left || right).
func (Hasher) HashChildren(left, right [32]byte) [32]byte {
	data := make([]byte, 2*HashSize)
	copy(data[0:HashSize], left[:])
	copy(data[HashSize:], right[:])
	return [32]byte(crypto.Keccak256Hash(data))
}

// LeafValue interprets item as an already-computed 32-byte hash.
func (Hasher) LeafValue(item []byte) ([32]byte, error) {
	if len(item) != HashSize {
		return [32]byte{}, fmt.Errorf("hash value must be %d bytes, got %d", HashSize, len(item))
	}
	return [32]byte(item), nil
}
