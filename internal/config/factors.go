package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bespaarplan/rekenkern/internal/engine"
)

// LoadFactors returns the engine factor tables, with overrides from the
// YAML file at path merged over the defaults. An empty path returns the
// defaults unchanged.
//
// Overrides are partial: yaml.Unmarshal fills only the keys present in the
// file, so a deployment can pin a single constant (say, the grid CO2
// factor) without restating the whole table.
func LoadFactors(path string) (engine.Factors, error) {
	factors := engine.DefaultFactors()
	if path == "" {
		return factors, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return factors, fmt.Errorf("reading factors file: %w", err)
	}

	if err := yaml.Unmarshal(data, &factors); err != nil {
		return factors, fmt.Errorf("parsing factors file %s: %w", path, err)
	}

	return factors, nil
}
