// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfigFile(t, "bus_address: unix:path=/tmp/test-bus\ncall_timeout: 45s\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.BusAddress != "unix:path=/tmp/test-bus" {
		t.Errorf("BusAddress = %q, want the file value", config.BusAddress)
	}
	if config.CallTimeout != 45*time.Second {
		t.Errorf("CallTimeout = %v, want 45s", config.CallTimeout)
	}
}

func TestLoadConfig_MissingDefaultFileIsNotAnError(t *testing.T) {
	// Point the default location at an empty directory.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.BusAddress != "" || config.CallTimeout != 0 {
		t.Errorf("config = %+v, want zero values for a missing default file", config)
	}
}

func TestLoadConfig_MissingExplicitFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() = nil, want error for a missing explicit path")
	}
}

func TestLoadConfig_EmptyFieldsUseZeroValues(t *testing.T) {
	path := writeConfigFile(t, "bus_address: \"\"\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.CallTimeout != 0 {
		t.Errorf("CallTimeout = %v, want 0 when unset", config.CallTimeout)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "bus_address: [unclosed\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() = nil, want error for malformed YAML")
	}
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"unparseable", "call_timeout: soon\n"},
		{"negative", "call_timeout: -5s\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeConfigFile(t, test.contents)
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("LoadConfig() = nil, want error")
			}
		})
	}
}
