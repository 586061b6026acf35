package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-engine-go/pkg/config"
	"github.com/Layr-Labs/merkle-engine-go/pkg/hasher/keccak"
	"github.com/Layr-Labs/merkle-engine-go/pkg/hasher/sha3"
	"github.com/Layr-Labs/merkle-engine-go/pkg/logger"
	"github.com/Layr-Labs/merkle-engine-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-engine-go/pkg/proofdoc"
)

func main() {
	app := &cli.App{
		Name:  "merkle-tool",
		Usage: "Merkle hash-tree engine CLI",
		Description: `Builds binary merkle trees over ordered leaf files, generates compact
inclusion proofs, and verifies proofs against a root hash.

Leaf files are newline-delimited 0x-prefixed hex items in tree order;
blank lines and lines starting with # are ignored.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "leaves-file",
				Aliases: []string{"f"},
				Usage:   "Path to the newline-delimited hex leaf file",
				EnvVars: []string{config.EnvMerkleLeavesFile},
			},
			&cli.StringFlag{
				Name:    "hasher",
				Usage:   fmt.Sprintf("Node hash function: %s", config.GetSupportedHashersString()),
				Value:   config.HasherKeccak.String(),
				EnvVars: []string{config.EnvMerkleHasher},
			},
			&cli.BoolFlag{
				Name:    "hash-leaves",
				Usage:   "Hash each item once before it becomes a leaf (disable when items are already hash values)",
				Value:   true,
				EnvVars: []string{config.EnvMerkleHashLeaves},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvMerkleVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "Build the tree and print its root hash",
				Action: runRoot,
			},
			{
				Name:  "prove",
				Usage: "Generate an inclusion proof for one leaf",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Leaf index to prove, 0-based in tree order",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write the proof document to this file instead of stdout",
					},
				},
				Action: runProve,
			},
			{
				Name:  "verify",
				Usage: "Verify a proof document against its embedded root",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "proof",
						Aliases:  []string{"p"},
						Usage:    "Path to the JSON proof document",
						Required: true,
					},
				},
				Action: runVerify,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runRoot(c *cli.Context) error {
	l, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	tree, err := buildTree(l, cfg)
	if err != nil {
		return err
	}

	root, err := tree.Root()
	if err != nil {
		return err
	}

	fmt.Println(hexutil.Encode(root[:]))
	return nil
}

func runProve(c *cli.Context) error {
	l, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	tree, err := buildTree(l, cfg)
	if err != nil {
		return err
	}

	index := c.Int("index")
	path, err := tree.Prove(index)
	if err != nil {
		return errors.Wrapf(err, "failed to prove leaf %d", index)
	}

	leaf, err := tree.Leaf(index)
	if err != nil {
		return err
	}
	root, err := tree.Root()
	if err != nil {
		return err
	}

	doc, err := proofdoc.Encode(&proofdoc.Proof{
		LeafIndex: index,
		Leaf:      leaf,
		Root:      root,
		Path:      path,
	})
	if err != nil {
		return err
	}

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, doc, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write proof document to %s", out)
		}
		l.Info("wrote proof document",
			zap.String("file", out),
			zap.Int("leaf_index", index),
			zap.Int("path_length", len(path)),
		)
		return nil
	}

	fmt.Println(string(doc))
	return nil
}

func runVerify(c *cli.Context) error {
	l, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	data, err := os.ReadFile(c.String("proof"))
	if err != nil {
		return errors.Wrap(err, "failed to read proof document")
	}

	proof, err := proofdoc.Decode(data)
	if err != nil {
		return err
	}

	h := newHasher(cfg.Hasher)
	if merkle.VerifyProof(h, proof.Path, proof.Leaf, proof.Root) {
		l.Info("proof is valid",
			zap.Int("leaf_index", proof.LeafIndex),
			zap.Int("path_length", len(proof.Path)),
		)
		fmt.Println("valid")
		return nil
	}

	fmt.Println("invalid")
	return cli.Exit("proof does not reproduce the claimed root", 1)
}

// setup creates the logger and assembles the tool configuration from
// flags and environment.
func setup(c *cli.Context) (*zap.Logger, *config.ToolConfig, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	hasherName, err := config.ParseHasherName(c.String("hasher"))
	if err != nil {
		return nil, nil, err
	}

	cfg := &config.ToolConfig{
		LeavesFile: c.String("leaves-file"),
		Hasher:     hasherName,
		HashLeaves: c.Bool("hash-leaves"),
		Verbose:    c.Bool("verbose"),
	}
	return l, cfg, nil
}

func newHasher(name config.HasherName) merkle.Hasher[[32]byte] {
	switch name {
	case config.HasherSHA3:
		return sha3.New()
	default:
		return keccak.New()
	}
}

func buildTree(l *zap.Logger, cfg *config.ToolConfig) (*merkle.Tree[[32]byte], error) {
	items, err := readItems(cfg.LeavesFile)
	if err != nil {
		return nil, err
	}

	tree, err := merkle.New(newHasher(cfg.Hasher), items, cfg.HashLeaves)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tree")
	}

	l.Debug("built merkle tree",
		zap.String("hasher", cfg.Hasher.String()),
		zap.Bool("hash_leaves", cfg.HashLeaves),
		zap.Int("leaves", tree.LeafCount()),
		zap.Int("height", tree.Height()),
	)
	return tree, nil
}

// readItems loads the newline-delimited hex item file.
func readItems(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open leaves file %s", path)
	}
	defer func() { _ = f.Close() }()

	var items [][]byte
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		item, err := hexutil.Decode(line)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex item on line %d", lineNo)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read leaves file %s", path)
	}
	return items, nil
}
