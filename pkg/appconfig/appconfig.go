// Package appconfig reads the project config file that deploys write next
// to an app's sources, caching which platform app the directory belongs to.
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigFile = "vessel.yaml"

type Config struct {
	AppID string `yaml:"app_id,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Owner string `yaml:"owner,omitempty"`
}

func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &config, nil
}

// AppID returns the cached app id for dir, or "" when the config exists
// but carries none.
func AppID(dir string) (string, error) {
	config, err := Load(dir)
	if err != nil {
		return "", err
	}
	return config.AppID, nil
}
