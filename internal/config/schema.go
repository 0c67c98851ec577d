package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema produces a JSON schema for the configuration, suitable for
// editor completion of config.toml via taplo or similar.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/termfab/config.schema.json"
	schema.Title = "termfab Configuration"
	schema.Description = "Configuration schema for termfab, a floating terminal launcher for TUI workspaces"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
