// Package config loads the two external configuration surfaces described
// in spec §6: the plain-text developer credential file, and an optional
// pool-tuning file that overrides client defaults.
package config

import (
	"fmt"
	"time"
)

// Credentials holds the developer id and key read from the credential
// file. Immutable once loaded (spec §3's "credentials" field).
type Credentials struct {
	DevID  string
	DevKey string
}

// Duration wraps time.Duration so pool config files can write "30s"
// instead of a raw nanosecond count, in both JSON and YAML.
type Duration time.Duration

// UnmarshalJSON accepts a Go duration string, e.g. "30s".
func (d *Duration) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML accepts a Go duration string, e.g. "30s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// PoolConfig tunes client behavior beyond the provider-mandated quotas.
// Unlike Credentials, every field here has a sane default and the file is
// entirely optional.
type PoolConfig struct {
	BaseURL        string   `json:"baseUrl" yaml:"baseUrl"`
	PersistPath    string   `json:"persistPath" yaml:"persistPath"`
	WaveSize       int      `json:"waveSize" yaml:"waveSize"`
	RequestTimeout Duration `json:"requestTimeout" yaml:"requestTimeout"`
	DebugDumpPath  string   `json:"debugDumpPath" yaml:"debugDumpPath"`
}

// DefaultPoolConfig mirrors the teacher's config.DefaultConfig() pattern:
// a complete, usable configuration with no file present.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		BaseURL:        "https://api.smitegame.com/smiteapi.svc",
		PersistPath:    "sessions.txt",
		WaveSize:       45,
		RequestTimeout: Duration(30 * time.Second),
		DebugDumpPath:  "debug_dump.json",
	}
}
