package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCredentials reads the two-line developer credential file (spec §6):
// first line dev_id, second line dev_key.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCredentialsFileNotFound
		}
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) == "" || strings.TrimSpace(lines[1]) == "" {
		return nil, ErrCredentialsMalformed
	}

	return &Credentials{
		DevID:  strings.TrimSpace(lines[0]),
		DevKey: strings.TrimSpace(lines[1]),
	}, nil
}

// LoadPoolConfig reads an optional pool-tuning file. If path is empty, the
// defaults are returned unchanged. The file may be JSON or YAML; format is
// inferred from the ".yaml"/".yml" extension, falling back to JSON.
func LoadPoolConfig(path string) (*PoolConfig, error) {
	cfg := DefaultPoolConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading pool config file: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPoolConfigFormat, err)
		}
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolConfigFormat, err)
	}
	return cfg, nil
}
