// Package config loads print profiles: small YAML files carrying the
// per-printer parameters that would otherwise be repeated on every
// invocation.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the tunable print parameters. Zero values mean "not set";
// the CLI falls back to its flag defaults for those.
type Profile struct {
	// LayerHeight is the print's layer height in mm.
	LayerHeight float64 `yaml:"layer_height"`

	// ExtrusionMultiplier scales each shifted block's opening extrusion.
	ExtrusionMultiplier float64 `yaml:"extrusion_multiplier"`
}

// LoadProfile reads and parses a profile YAML file. Unknown fields are
// rejected to catch typos, and negative values are invalid.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	if err := validateProfile(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

func validateProfile(p *Profile) error {
	if p.LayerHeight < 0 {
		return fmt.Errorf("layer_height must be positive, got %g", p.LayerHeight)
	}
	if p.ExtrusionMultiplier < 0 {
		return fmt.Errorf("extrusion_multiplier must be positive, got %g", p.ExtrusionMultiplier)
	}
	return nil
}
