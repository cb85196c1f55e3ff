// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds connection defaults loaded from the optional config
// file. All fields are optional; flags and environment variables take
// precedence over file values.
type Config struct {
	// BusAddress is the session bus address to connect to. Empty means
	// the standard session bus (DBUS_SESSION_BUS_ADDRESS).
	BusAddress string

	// CallTimeout bounds each remote call. Zero means no client-side
	// timeout beyond what the bus transport imposes.
	CallTimeout time.Duration
}

// rawConfig is the on-disk YAML shape. Durations are written as Go
// duration strings ("30s", "1m") rather than bare nanosecond counts.
type rawConfig struct {
	BusAddress  string `yaml:"bus_address"`
	CallTimeout string `yaml:"call_timeout"`
}

// DefaultConfigPath returns the well-known config file location,
// ~/.config/permstore/config.yaml (respecting XDG_CONFIG_HOME via
// os.UserConfigDir).
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(configDir, "permstore", "config.yaml"), nil
}

// LoadConfig reads the config file at path. If path is empty, the
// default location is used, and a missing file there is not an error —
// the zero Config is returned so every setting falls back to its flag
// or environment default. An explicitly given path must exist: a
// silently ignored --config would be worse than a failure.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	config := &Config{BusAddress: raw.BusAddress}
	if raw.CallTimeout != "" {
		timeout, err := time.ParseDuration(raw.CallTimeout)
		if err != nil {
			return nil, fmt.Errorf("config file %s: call_timeout: %w", path, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("config file %s: call_timeout must not be negative", path)
		}
		config.CallTimeout = timeout
	}

	return config, nil
}
