// Package config loads UI options from an optional YAML file into the
// flat name→string map the UI consumes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the conventional config file location
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "editerm", "config.yml")
}

// Load reads a YAML mapping of scalar values from path. A missing file
// yields an empty map; a malformed file is an error. Non-string
// scalars are rendered back to their literal text, so `wheel_scroll_amount: 5`
// arrives as "5".
func Load(path string) (map[string]string, error) {
	options := make(map[string]string)
	if path == "" {
		return options, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return options, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for name, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("config option %q: expected a scalar value", name)
		}
		options[name] = node.Value
	}
	return options, nil
}
