// Package config resolves vsh's configuration directory and optional
// config.yaml, using an env-var-first / XDG-fallback resolution order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "vsh"

const (
	envConfigDir    = "VSH_CONFIG_DIR"
	envHistoryFile  = "VSH_HISTORY_FILE"
	defaultPrompt   = "vsh> "
	configFileName  = "config.yaml"
	historyFileName = "history"
)

// File is the optional config.yaml shape.
type File struct {
	Prompt         string            `yaml:"prompt"`
	VarlinkAliases map[string]string `yaml:"varlink_aliases"`
}

// Config is vsh's fully resolved runtime configuration.
type Config struct {
	Dir            string
	HistoryFile    string
	Prompt         string
	VarlinkAliases map[string]string
}

// Load resolves the config directory, history file path, and optional
// config.yaml. A missing directory or file is not an error (same
// silent-skip convention).
func Load() (*Config, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Dir:         dir,
		HistoryFile: resolveHistoryFile(dir),
		Prompt:      defaultPrompt,
	}

	f, err := readConfigFile(filepath.Join(dir, configFileName))
	if err != nil {
		return nil, err
	}
	if f != nil {
		if f.Prompt != "" {
			cfg.Prompt = f.Prompt
		}
		cfg.VarlinkAliases = f.VarlinkAliases
	}
	return cfg, nil
}

func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

func resolveHistoryFile(dir string) string {
	if v := os.Getenv(envHistoryFile); v != "" {
		return v
	}
	return filepath.Join(dir, historyFileName)
}

func readConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &f, nil
}

// ResolveAddr expands addr through VarlinkAliases if it names a
// configured alias, otherwise returns addr unchanged.
func (c *Config) ResolveAddr(addr string) string {
	if c == nil {
		return addr
	}
	if expanded, ok := c.VarlinkAliases[addr]; ok {
		return expanded
	}
	return addr
}
