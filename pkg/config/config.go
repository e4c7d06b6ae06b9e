// Package config pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	errInvalidDuration   = fmt.Errorf("invalid duration")
	errMissingCredential = errors.New("missing required credential")
)

// LoadFile is a generic helper that loads a JSON file from path into
// the struct pointed to by dst.
func LoadFile(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	if d, ok := cfg.(Defaulter); ok {
		d.ApplyDefaults()
	}

	if v, ok := cfg.(Validator); ok {
		return v.Validate()
	}

	return nil
}

// LoadAndValidate loads a configuration file and validates it if possible.
func LoadAndValidate(path string, cfg interface{}) error {
	if err := LoadFile(path, cfg); err != nil {
		return err
	}

	return ValidateConfig(cfg)
}

// LoadServerConfig builds a ServerConfig from an optional JSON file.
// With an empty path the configuration comes entirely from defaults
// and the environment.
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if path != "" {
		if err := LoadAndValidate(path, cfg); err != nil {
			return nil, err
		}

		return cfg, nil
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
