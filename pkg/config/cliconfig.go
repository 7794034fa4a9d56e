package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/vesselhq/vessel/pkg/version"
)

// CLIConfig holds the defaults a user stores once (typically written by
// `vessel login`) instead of passing flags on every invocation. Flags and
// environment variables always win over it.
type CLIConfig struct {
	Endpoint string `json:"endpoint,omitempty"`
	Token    string `json:"token,omitempty"`

	location string
}

func (c *CLIConfig) Location() string {
	return c.location
}

func (c *CLIConfig) Save() error {
	if c.location == "" {
		return errors.New("config location is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.location), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.location, data, 0600)
}

// ReadCLIConfig reads the config file at the given path, or the default
// location when path is empty. A missing file yields an empty config.
func ReadCLIConfig(path string) (*CLIConfig, error) {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, version.ProgramName, "config.json")
	}

	result := &CLIConfig{
		location: path,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return result, nil
	} else if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return result, nil
}
