package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hashseq"
	"github.com/lox/hashseq/internal/config"
	"github.com/lox/hashseq/internal/randutil"
)

// HashCmd derives a sequence of hash values from each input
type HashCmd struct {
	Count   int      `kong:"short='n',help='Number of derived hash values per input (defaults to the profile setting)'"`
	Profile string   `kong:"help='Key profile name from the config file'"`
	Config  string   `kong:"default='hashseq.hcl',help='Path to the HCL config file'"`
	Seed    *int64   `kong:"help='Derive keys deterministically from a seed instead of a profile'"`
	Random  bool     `kong:"help='Draw keys from the OS entropy source (not reproducible)'"`
	Hex     bool     `kong:"help='Print digests as fixed-width hex instead of decimal'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
	Files   []string `kong:"arg,optional,help='Files to hash; empty reads stdin'"`
}

func (c *HashCmd) Run() error {
	logger := setupLogger(c.Debug)

	builder, count, err := c.resolveBuilder(logger)
	if err != nil {
		return err
	}
	if c.Count > 0 {
		count = c.Count
	}
	logger.Debug("resolved hashing setup", "hashes", count, "inputs", len(c.Files))

	if len(c.Files) == 0 {
		digests, err := hashStream(builder, os.Stdin, count)
		if err != nil {
			return fmt.Errorf("failed to hash stdin: %w", err)
		}
		fmt.Printf("-\t%s\n", c.render(digests))
		return nil
	}

	// Hash the files concurrently, then report in argument order.
	results := make([][]hashseq.Digest, len(c.Files))
	g, ctx := errgroup.WithContext(context.Background())
	for i, name := range c.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", name, err)
			}
			defer f.Close()

			digests, err := hashStream(builder, f, count)
			if err != nil {
				return fmt.Errorf("failed to hash %s: %w", name, err)
			}
			results[i] = digests
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range c.Files {
		fmt.Printf("%s\t%s\n", name, c.render(results[i]))
	}
	return nil
}

// resolveBuilder picks the key source: explicit seed, OS entropy, or a
// profile from the config file.
func (c *HashCmd) resolveBuilder(logger *log.Logger) (hashseq.PairBuilder, int, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return hashseq.PairBuilder{}, 0, err
	}
	profile, err := cfg.Profile(c.Profile)
	if err != nil {
		return hashseq.PairBuilder{}, 0, err
	}

	switch {
	case c.Seed != nil:
		logger.Debug("deriving keys from seed", "seed", *c.Seed)
		return hashseq.NewRandom(randutil.New(*c.Seed)), profile.Hashes, nil
	case c.Random:
		seed := randutil.Seed()
		logger.Info("drew random seed", "seed", seed)
		return hashseq.NewRandom(randutil.New(seed)), profile.Hashes, nil
	default:
		logger.Debug("using key profile", "profile", profile.Name)
		builder, err := profile.Builder()
		if err != nil {
			return hashseq.PairBuilder{}, 0, err
		}
		return builder, profile.Hashes, nil
	}
}

func (c *HashCmd) render(digests []hashseq.Digest) string {
	parts := make([]string, len(digests))
	for i, d := range digests {
		if c.Hex {
			parts[i] = fmt.Sprintf("%016x", d.Uint64())
		} else {
			parts[i] = d.String()
		}
	}
	return strings.Join(parts, " ")
}

func hashStream(builder hashseq.PairBuilder, r io.Reader, count int) ([]hashseq.Digest, error) {
	h := builder.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Seq().Take(count), nil
}
