package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the parser settings that can be read from a YAML file.
type Config struct {
	// ReportUnresolved makes the parser emit UnresolvedSymbol diagnostics
	// for identifiers that are not bound where they are used.
	ReportUnresolved bool `yaml:"report_unresolved"`

	// MaxDiagnostics limits how many diagnostics are passed to the sink.
	// 0 means no limit.
	MaxDiagnostics int `yaml:"max_diagnostics"`
}

// DecodeConfig reads a YAML configuration from r. An empty document yields
// the zero Config.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config failed: %w", err)
	}

	if cfg.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("max_diagnostics must not be negative, got %d", cfg.MaxDiagnostics)
	}

	return cfg, nil
}

// LoadConfig reads the configuration file at path. If the file does not
// exist, the zero Config is returned.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
