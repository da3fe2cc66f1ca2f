package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const configDirName = ".intake"

var userHomeDir = os.UserHomeDir

// LoadGlobalConfig reads ~/.intake/config.json if it exists.
func LoadGlobalConfig() (RawConfig, bool, error) {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return RawConfig{}, false, nil
	}

	path := filepath.Join(home, configDirName, "config.json")
	return loadConfigFile(path)
}

// LoadProjectConfig reads <projectRoot>/.intake/config.json if it exists.
func LoadProjectConfig(projectRoot string) (RawConfig, bool, error) {
	if projectRoot == "" {
		return RawConfig{}, false, nil
	}

	path := filepath.Join(projectRoot, configDirName, "config.json")
	return loadConfigFile(path)
}

// Load reads global and project configs and returns the resolved config.
// Precedence per key: project > global > defaults.
func Load(projectRoot string) (ResolvedConfig, error) {
	globalCfg, _, err := LoadGlobalConfig()
	if err != nil {
		return ResolvedConfig{}, err
	}
	projectCfg, _, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return ResolvedConfig{}, err
	}
	return Resolve(projectCfg, globalCfg), nil
}

// loadConfigFile reads one layer. A missing file is simply not present; a
// malformed or unsupported-version file is treated the same way rather than
// failing every command that touches config.
func loadConfigFile(path string) (RawConfig, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	var cfg RawConfig
	if err := dec.Decode(&cfg); err != nil {
		return RawConfig{}, false, nil
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return RawConfig{}, false, nil
	}
	if cfg.SchemaVersion != nil && *cfg.SchemaVersion != SchemaVersion {
		return RawConfig{}, false, nil
	}

	return cfg, true, nil
}
