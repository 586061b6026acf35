// Package mimc provides a merkle hasher over the BN254 MiMC permutation.
// Nodes are scalar field elements, which keeps trees and inclusion paths
// directly consumable by MiMC-based verification circuits.
package mimc

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// Hasher implements merkle.Hasher[fr.Element] with MiMC over the BN254
// scalar field.
type Hasher struct{}

// New returns a BN254 MiMC merkle hasher.
func New() Hasher {
	return Hasher{}
}

// HashLeaf reduces item into the scalar field (big-endian, mod r) and
// hashes the resulting element.
func (Hasher) HashLeaf(item []byte) fr.Element {
	var e fr.Element
	e.SetBytes(item)
	return hashElements(e)
}

// HashChildren computes MiMC(left, right).
func (Hasher) HashChildren(left, right fr.Element) fr.Element {
	return hashElements(left, right)
}

// LeafValue interprets item as the canonical 32-byte big-endian encoding of
// a field element; values at or above the field modulus are rejected.
func (Hasher) LeafValue(item []byte) (fr.Element, error) {
	if len(item) != fr.Bytes {
		return fr.Element{}, fmt.Errorf("field element must be %d bytes, got %d", fr.Bytes, len(item))
	}
	var e fr.Element
	if err := e.SetBytesCanonical(item); err != nil {
		return fr.Element{}, fmt.Errorf("item is not a canonical field element: %w", err)
	}
	return e, nil
}

func hashElements(elems ...fr.Element) fr.Element {
	h := frmimc.NewMiMC()
	for i := range elems {
		b := elems[i].Bytes()
		// Write only fails on a non-canonical encoding and Bytes is
		// canonical by construction.
		_, _ = h.Write(b[:])
	}
	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}
