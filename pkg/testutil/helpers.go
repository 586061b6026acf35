package testutil

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomHash generates a random 32-byte hash for testing.
func RandomHash() [32]byte {
	var hash [32]byte
	_, _ = rand.Read(hash[:]) // Ignore error in test helper
	return hash
}

// RandomHashes generates n random 32-byte hashes.
func RandomHashes(n int) [][32]byte {
	hashes := make([][32]byte, n)
	for i := range hashes {
		hashes[i] = RandomHash()
	}
	return hashes
}

// RandomItems generates n random 32-byte raw items.
func RandomItems(n int) [][]byte {
	items := make([][]byte, n)
	for i := range items {
		h := RandomHash()
		items[i] = h[:]
	}
	return items
}

// SequentialHashes generates n distinct deterministic 32-byte hashes, for
// tests that need reproducible trees.
func SequentialHashes(n int) [][32]byte {
	hashes := make([][32]byte, n)
	for i := range hashes {
		binary.BigEndian.PutUint64(hashes[i][24:], uint64(i+1))
	}
	return hashes
}
