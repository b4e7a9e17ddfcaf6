// sim/config.go
package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CacheConfig carries the three raw geometry integers read from a
// configuration file, before validation.
type CacheConfig struct {
	NumSets       int `yaml:"num_sets"`
	Associativity int `yaml:"associativity"`
	LineSize      int `yaml:"line_size"`
}

// classicKeys maps the labels of the classic three-line config format to
// their field position. The file reads:
//
//	Number of sets: 4
//	Set size: 2
//	Line size: 16
var classicKeys = []string{"Number of sets", "Set size", "Line size"}

// LoadCacheConfig reads a cache configuration file. Files ending in .yaml or
// .yml use the YAML format (num_sets, associativity, line_size); anything
// else is parsed as the classic three-line format.
func LoadCacheConfig(path string) (CacheConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CacheConfig{}, fmt.Errorf("cannot open config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLConfig(data)
	default:
		return parseClassicConfig(data)
	}
}

func parseYAMLConfig(data []byte) (CacheConfig, error) {
	var config CacheConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CacheConfig{}, fmt.Errorf("invalid YAML config: %w", err)
	}
	return config, nil
}

func parseClassicConfig(data []byte) (CacheConfig, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < len(classicKeys) {
		return CacheConfig{}, fmt.Errorf("invalid config format: expected %d lines, got %d",
			len(classicKeys), len(lines))
	}

	values := make([]int, len(classicKeys))
	for i, key := range classicKeys {
		label, rest, found := strings.Cut(strings.TrimSpace(lines[i]), ":")
		if !found || strings.TrimSpace(label) != key {
			return CacheConfig{}, fmt.Errorf("invalid config format: line %d must start with %q", i+1, key+":")
		}
		v, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return CacheConfig{}, fmt.Errorf("invalid config format: %s is not an integer: %w", key, err)
		}
		values[i] = v
	}

	return CacheConfig{
		NumSets:       values[0],
		Associativity: values[1],
		LineSize:      values[2],
	}, nil
}

// Validate runs geometry validation on the raw configuration.
func (c CacheConfig) Validate() (Geometry, error) {
	return ValidateGeometry(c.NumSets, c.Associativity, c.LineSize)
}
