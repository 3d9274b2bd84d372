package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the file at jsonPath and unmarshals it into a fresh
// [StructuredConfig]. Field names are mapped via the `json` struct tags.
//
// Returns a wrapped error if the file cannot be read or is not valid JSON.
func parseJSON(jsonPath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing JSON config file: %w", err)
	}

	return cfg, nil
}
