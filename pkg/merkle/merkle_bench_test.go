package merkle_test

import (
	"fmt"
	"testing"

	wealdtree "github.com/wealdtech/go-merkletree/v2"
	"github.com/wealdtech/go-merkletree/v2/keccak256"

	"github.com/Layr-Labs/merkle-engine-go/pkg/hasher/keccak"
	"github.com/Layr-Labs/merkle-engine-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-engine-go/pkg/testutil"
)

var benchSizes = []int{10, 50, 100, 200, 1000}

// BenchmarkTreeBuild benchmarks tree construction with various sizes.
func BenchmarkTreeBuild(b *testing.B) {
	h := keccak.New()
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			leaves := testutil.RandomHashes(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = merkle.NewFromLeaves[[32]byte](h, leaves)
			}
		})
	}
}

// BenchmarkProve benchmarks proof generation.
func BenchmarkProve(b *testing.B) {
	h := keccak.New()
	for _, size := range benchSizes {
		leaves := testutil.RandomHashes(size)
		tree, _ := merkle.NewFromLeaves[[32]byte](h, leaves)

		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = tree.Prove(i % size)
			}
		})
	}
}

// BenchmarkVerifyProof benchmarks proof verification.
func BenchmarkVerifyProof(b *testing.B) {
	h := keccak.New()
	for _, size := range benchSizes {
		leaves := testutil.RandomHashes(size)
		tree, _ := merkle.NewFromLeaves[[32]byte](h, leaves)
		root, _ := tree.Root()
		path, _ := tree.Prove(0)

		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = merkle.VerifyProof[[32]byte](h, path, leaves[0], root)
			}
		})
	}
}

// BenchmarkUpdateLeaf benchmarks the O(log n) in-place update against the
// full rebuild it replaces.
func BenchmarkUpdateLeaf(b *testing.B) {
	h := keccak.New()
	for _, size := range benchSizes {
		leaves := testutil.RandomHashes(size)
		tree, _ := merkle.NewFromLeaves[[32]byte](h, leaves)
		newLeaf := testutil.RandomHash()

		b.Run(fmt.Sprintf("Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = tree.UpdateLeafHash(newLeaf, i%size)
			}
		})
	}
}

// BenchmarkWealdtechComparison benchmarks the same build/prove/verify cycle
// on wealdtech/go-merkletree for a cross-implementation baseline.
func BenchmarkWealdtechComparison(b *testing.B) {
	for _, size := range benchSizes {
		items := testutil.RandomItems(size)

		b.Run(fmt.Sprintf("Wealdtech_Leaves_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tree, err := wealdtree.NewTree(
					wealdtree.WithData(items),
					wealdtree.WithHashType(keccak256.New()),
				)
				if err != nil {
					b.Fatal(err)
				}
				proof, err := tree.GenerateProof(items[0], 0)
				if err != nil {
					b.Fatal(err)
				}
				ok, err := wealdtree.VerifyProofUsing(items[0], false, proof, [][]byte{tree.Root()}, keccak256.New())
				if err != nil || !ok {
					b.Fatal("wealdtech proof did not verify")
				}
			}
		})

		b.Run(fmt.Sprintf("Engine_Leaves_%d", size), func(b *testing.B) {
			h := keccak.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tree, err := merkle.New[[32]byte](h, items, true)
				if err != nil {
					b.Fatal(err)
				}
				path, err := tree.Prove(0)
				if err != nil {
					b.Fatal(err)
				}
				root, err := tree.Root()
				if err != nil {
					b.Fatal(err)
				}
				if !merkle.VerifyProof[[32]byte](h, path, h.HashLeaf(items[0]), root) {
					b.Fatal("proof did not verify")
				}
			}
		})
	}
}
