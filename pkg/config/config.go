package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for merkle tool configuration
const (
	EnvMerkleLeavesFile = "MERKLE_LEAVES_FILE"
	EnvMerkleHasher     = "MERKLE_HASHER"
	EnvMerkleHashLeaves = "MERKLE_HASH_LEAVES"
	EnvMerkleVerbose    = "MERKLE_VERBOSE"
)

// HasherName selects the node hash function used by the tool.
type HasherName string

func (h HasherName) String() string {
	return string(h)
}

const (
	HasherKeccak HasherName = "keccak" // keccak256, Solidity-compatible
	HasherSHA3   HasherName = "sha3"   // SHA3-256 (NIST padding)
)

// SupportedHashers lists the hash functions the tool can instantiate.
// MiMC trees are library-only: their nodes are field elements rather than
// 32-byte digests and have no hex file representation here.
var SupportedHashers = []HasherName{HasherKeccak, HasherSHA3}

// GetSupportedHashersString returns supported hasher names for CLI help.
func GetSupportedHashersString() string {
	names := make([]string, len(SupportedHashers))
	for i, h := range SupportedHashers {
		names[i] = h.String()
	}
	return strings.Join(names, ", ")
}

// ToolConfig represents the complete configuration for the merkle tool.
type ToolConfig struct {
	// Input
	LeavesFile string `json:"leaves_file"` // Newline-delimited hex items, tree order

	// Tree construction
	Hasher     HasherName `json:"hasher"`
	HashLeaves bool       `json:"hash_leaves"` // Hash items once before treating them as leaves

	// Operational settings
	Verbose bool `json:"verbose"`
}

// Validate validates the merkle tool configuration.
func (c *ToolConfig) Validate() error {
	var allErrors field.ErrorList

	if c.LeavesFile == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("leavesFile"), "leaves file is required"))
	}

	supported := false
	for _, h := range SupportedHashers {
		if h == c.Hasher {
			supported = true
			break
		}
	}
	if !supported {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("hasher"), c.Hasher, SupportedHashers))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ParseHasherName validates a raw hasher name from flags or environment.
func ParseHasherName(name string) (HasherName, error) {
	h := HasherName(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range SupportedHashers {
		if h == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("unsupported hasher %q. Supported: %s", name, GetSupportedHashersString())
}
