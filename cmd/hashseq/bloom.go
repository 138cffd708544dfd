package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lox/hashseq/bloom"
)

// BloomCmd builds a bloom filter from a member file and tests candidate
// keys, as a worked example of drawing k probes from the digest sequence.
type BloomCmd struct {
	Members    string   `kong:"arg,help='Newline-delimited file of set members'"`
	Candidates []string `kong:"arg,optional,help='Keys to test; empty reads keys from stdin'"`
	Rate       float64  `kong:"default='0.01',help='Target false positive rate'"`
	Debug      bool     `kong:"help='Enable debug logging'"`
}

func (c *BloomCmd) Run() error {
	logger := setupLogger(c.Debug)

	members, err := readLines(c.Members)
	if err != nil {
		return fmt.Errorf("failed to read members: %w", err)
	}
	if len(members) == 0 {
		return fmt.Errorf("member file %s is empty", c.Members)
	}

	filter := bloom.New(uint64(len(members)), c.Rate)
	for _, m := range members {
		filter.AddString(m)
	}
	logger.Info("built filter",
		"members", filter.Count(),
		"bits", filter.Bits(),
		"probes", filter.K(),
		"fill", fmt.Sprintf("%.4f", filter.FillRatio()),
		"estimated_fp", fmt.Sprintf("%.6f", filter.EstimatedFalsePositiveRate()),
	)

	candidates := c.Candidates
	if len(candidates) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			candidates = append(candidates, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read candidates: %w", err)
		}
	}

	for _, key := range candidates {
		verdict := "no"
		if filter.TestString(key) {
			verdict = "maybe"
		}
		fmt.Printf("%s\t%s\n", key, verdict)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
