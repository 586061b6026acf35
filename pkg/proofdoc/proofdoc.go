// Package proofdoc defines the JSON document form of an inclusion proof
// over 32-byte nodes, as emitted and consumed by the merkle tool and by
// external verifiers.
package proofdoc

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/merkle-engine-go/pkg/merkle"
)

// Proof is the typed form carried across the tool boundary.
type Proof struct {
	LeafIndex int
	Leaf      [32]byte
	Root      [32]byte
	Path      merkle.Path[[32]byte]
}

// Document is the JSON wire form of a Proof. All hashes are 0x-prefixed
// hex; sides name the side the sibling occupies, matching the verifier's
// placement rule.
type Document struct {
	LeafIndex int       `json:"leaf_index"`
	Leaf      string    `json:"leaf"`
	Root      string    `json:"root"`
	Path      []Element `json:"path"`
}

// Element is one path step in wire form.
type Element struct {
	Side    string `json:"side"` // "left" or "right"
	Sibling string `json:"sibling"`
}

// Encode renders p as an indented JSON document.
func Encode(p *Proof) ([]byte, error) {
	if p == nil {
		return nil, errors.New("proof is nil")
	}

	doc := Document{
		LeafIndex: p.LeafIndex,
		Leaf:      hexutil.Encode(p.Leaf[:]),
		Root:      hexutil.Encode(p.Root[:]),
		Path:      make([]Element, len(p.Path)),
	}
	for i, el := range p.Path {
		doc.Path[i] = Element{
			Side:    el.Side.String(),
			Sibling: hexutil.Encode(el.Sibling[:]),
		}
	}

	out, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal proof document")
	}
	return out, nil
}

// Decode parses a JSON proof document back into its typed form.
func Decode(data []byte) (*Proof, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal proof document")
	}

	leaf, err := parseHash(doc.Leaf)
	if err != nil {
		return nil, errors.Wrap(err, "invalid leaf hash")
	}
	root, err := parseHash(doc.Root)
	if err != nil {
		return nil, errors.Wrap(err, "invalid root hash")
	}

	path := make(merkle.Path[[32]byte], len(doc.Path))
	for i, el := range doc.Path {
		sibling, err := parseHash(el.Sibling)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid sibling hash at path element %d", i)
		}
		side, err := parseSide(el.Side)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid side at path element %d", i)
		}
		path[i] = merkle.PathElement[[32]byte]{Side: side, Sibling: sibling}
	}

	return &Proof{
		LeafIndex: doc.LeafIndex,
		Leaf:      leaf,
		Root:      root,
		Path:      path,
	}, nil
}

func parseHash(s string) ([32]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return [32]byte{}, err
	}
	if len(b) != 32 {
		return [32]byte{}, errors.Errorf("hash must be 32 bytes, got %d", len(b))
	}
	return [32]byte(b), nil
}

func parseSide(s string) (merkle.Side, error) {
	switch s {
	case "left":
		return merkle.SideLeft, nil
	case "right":
		return merkle.SideRight, nil
	default:
		return 0, errors.Errorf("side must be %q or %q, got %q", "left", "right", s)
	}
}
