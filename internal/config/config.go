// Package config loads named key profiles for the hashseq CLI from HCL
// files. A profile fixes the four SipHash key words and a default number of
// derived hashes, so teams can share reproducible hashing setups.
//
//	default_profile = "ci"
//
//	profile "ci" {
//	  keys1  = ["0x0", "0x0"]
//	  keys2  = ["0x1", "0x1"]
//	  hashes = 10
//	}
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hashseq"
)

// Config is the full CLI configuration.
type Config struct {
	DefaultProfile string    `hcl:"default_profile,optional"`
	Profiles       []Profile `hcl:"profile,block"`
}

// Profile is one named key set. Key words are written as integer literal
// strings (decimal or 0x-prefixed hex) because HCL numbers lose precision
// past 2^53.
type Profile struct {
	Name   string   `hcl:"name,label"`
	Keys1  []string `hcl:"keys1"`
	Keys2  []string `hcl:"keys2"`
	Hashes int      `hcl:"hashes,optional"`
}

// Default returns the configuration used when no file is present: a single
// "default" profile with the zero/one key pairs and 10 hashes.
func Default() *Config {
	return &Config{
		DefaultProfile: "default",
		Profiles: []Profile{
			{
				Name:   "default",
				Keys1:  []string{"0x0", "0x0"},
				Keys2:  []string{"0x1", "0x1"},
				Hashes: 10,
			},
		},
	}
}

// Load reads an HCL config file. A missing file is not an error: the
// defaults are returned.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}

	if cfg.DefaultProfile == "" && len(cfg.Profiles) > 0 {
		cfg.DefaultProfile = cfg.Profiles[0].Name
	}
	for i := range cfg.Profiles {
		if cfg.Profiles[i].Hashes == 0 {
			cfg.Profiles[i].Hashes = 10
		}
	}
	return &cfg, nil
}

// Profile returns the named profile, or the default profile when name is
// empty.
func (c *Config) Profile(name string) (*Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}

// Builder constructs the pair factory described by the profile.
func (p *Profile) Builder() (hashseq.PairBuilder, error) {
	keys1, err := parseKeys(p.Keys1)
	if err != nil {
		return hashseq.PairBuilder{}, fmt.Errorf("profile %q keys1: %w", p.Name, err)
	}
	keys2, err := parseKeys(p.Keys2)
	if err != nil {
		return hashseq.PairBuilder{}, fmt.Errorf("profile %q keys2: %w", p.Name, err)
	}
	return hashseq.New(keys1, keys2), nil
}

func parseKeys(words []string) (hashseq.Keys, error) {
	if len(words) != 2 {
		return hashseq.Keys{}, fmt.Errorf("expected 2 key words, got %d", len(words))
	}
	k0, err := strconv.ParseUint(words[0], 0, 64)
	if err != nil {
		return hashseq.Keys{}, fmt.Errorf("invalid key word %q: %w", words[0], err)
	}
	k1, err := strconv.ParseUint(words[1], 0, 64)
	if err != nil {
		return hashseq.Keys{}, fmt.Errorf("invalid key word %q: %w", words[1], err)
	}
	return hashseq.Keys{K0: k0, K1: k1}, nil
}
