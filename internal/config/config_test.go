package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hashseq"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hashseq.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.DefaultProfile)
	p, err := cfg.Profile("")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Hashes)

	b, err := p.Builder()
	require.NoError(t, err)

	// Default profile must match the library's documented example keys.
	want := hashseq.SumString(hashseq.New(hashseq.Keys{K0: 0, K1: 0}, hashseq.Keys{K0: 1, K1: 1}), "x").Take(3)
	assert.Equal(t, want, hashseq.SumString(b, "x").Take(3))
}

func TestLoadProfiles(t *testing.T) {
	path := writeConfig(t, `
default_profile = "ci"

profile "ci" {
  keys1  = ["0xdeadbeef", "12345"]
  keys2  = ["0x1", "0x2"]
  hashes = 5
}

profile "prod" {
  keys1 = ["1", "2"]
  keys2 = ["3", "4"]
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	ci, err := cfg.Profile("")
	require.NoError(t, err)
	assert.Equal(t, "ci", ci.Name)
	assert.Equal(t, 5, ci.Hashes)

	prod, err := cfg.Profile("prod")
	require.NoError(t, err)
	assert.Equal(t, 10, prod.Hashes, "hashes defaults to 10")

	_, err = cfg.Profile("staging")
	assert.ErrorContains(t, err, "unknown profile")

	b, err := ci.Builder()
	require.NoError(t, err)
	want := hashseq.New(hashseq.Keys{K0: 0xdeadbeef, K1: 12345}, hashseq.Keys{K0: 1, K1: 2})
	assert.Equal(t, hashseq.SumString(want, "x").Take(2), hashseq.SumString(b, "x").Take(2))
}

func TestLoadRejectsBadHCL(t *testing.T) {
	path := writeConfig(t, `profile "broken" {`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestBuilderRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{
			name:    "wrong arity",
			profile: Profile{Name: "p", Keys1: []string{"1"}, Keys2: []string{"3", "4"}},
			wantErr: "expected 2 key words",
		},
		{
			name:    "unparseable word",
			profile: Profile{Name: "p", Keys1: []string{"1", "2"}, Keys2: []string{"xyz", "4"}},
			wantErr: "invalid key word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.profile.Builder()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
