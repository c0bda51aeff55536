package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Manifest is the package metadata of the CLI hosting the engine.
type Manifest struct {
	Name      string        `json:"name" yaml:"name" toml:"name"`
	Version   string        `json:"version" yaml:"version" toml:"version"`
	CLIEngine EngineSection `json:"cli-engine" yaml:"cli-engine" toml:"cli-engine"`
}

// EngineSection holds engine-specific manifest settings.
type EngineSection struct {
	Dirname string `json:"dirname" yaml:"dirname" toml:"dirname"`
}

// LoadManifest reads a manifest file. The format follows the extension:
// .toml, .yaml/.yml, anything else is JSON (package.json).
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
