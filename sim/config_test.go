package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCacheConfig_ClassicFormat(t *testing.T) {
	path := writeConfigFile(t, "trace.config",
		"Number of sets: 4\nSet size: 2\nLine size: 16\n")

	config, err := LoadCacheConfig(path)
	require.NoError(t, err)
	assert.Equal(t, CacheConfig{NumSets: 4, Associativity: 2, LineSize: 16}, config)
}

func TestLoadCacheConfig_YAMLFormat(t *testing.T) {
	path := writeConfigFile(t, "cache.yaml",
		"num_sets: 256\nassociativity: 4\nline_size: 32\n")

	config, err := LoadCacheConfig(path)
	require.NoError(t, err)
	assert.Equal(t, CacheConfig{NumSets: 256, Associativity: 4, LineSize: 32}, config)
}

func TestLoadCacheConfig_MissingFile(t *testing.T) {
	_, err := LoadCacheConfig(filepath.Join(t.TempDir(), "nope.config"))
	assert.Error(t, err)
}

func TestLoadCacheConfig_MalformedClassic(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"too few lines", "Number of sets: 4\n"},
		{"wrong label", "Sets: 4\nSet size: 2\nLine size: 16\n"},
		{"non-integer value", "Number of sets: four\nSet size: 2\nLine size: 16\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, "trace.config", tt.contents)
			_, err := LoadCacheConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadCacheConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "cache.yml", "num_sets: [not an int\n")
	_, err := LoadCacheConfig(path)
	assert.Error(t, err)
}

func TestCacheConfig_ValidateRejectsBadGeometry(t *testing.T) {
	_, err := CacheConfig{NumSets: 6, Associativity: 2, LineSize: 16}.Validate()
	assert.Error(t, err)

	g, err := CacheConfig{NumSets: 4, Associativity: 2, LineSize: 16}.Validate()
	require.NoError(t, err)
	assert.Equal(t, uint(4), g.OffsetBits)
	assert.Equal(t, uint(2), g.IndexBits)
}
