package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Parse decodes a scene file. Unknown keys are rejected so typos surface
// instead of silently falling back to zero values.
func Parse(data []byte) (Scene, error) {
	var cfg Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, errors.New("empty scene file")
		}
		return cfg, err
	}
	return cfg, nil
}

// Load loads a scene configuration.
// Search order: customPath -> ~/.shapemotion/scenes/<id>.yaml -> ./scenes/<id>.yaml -> embedded default
func Load(id, customPath string, embedded []byte) (Scene, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withID(cfg, id), nil
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return withID(cfg, id), nil
			}
		}
	}

	// Try local scenes directory
	if data, err := os.ReadFile(filepath.Join("scenes", filename)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return withID(cfg, id), nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(embedded)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to parse embedded scene %s: %w", id, err)
	}
	return withID(cfg, id), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapemotion", "scenes", filename)
}

func withID(cfg Scene, id string) Scene {
	if cfg.ID == "" {
		cfg.ID = id
	}
	return cfg
}
