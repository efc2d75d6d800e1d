package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// searchNames lists the file names tried in order inside each config directory.
func searchNames() []string {
	exts := FormatExtensions()
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = "runner" + ext
	}
	return names
}

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.{yaml,yml,toml} ->
// ./configs/runner.{yaml,yml,toml} -> embedded default.
// Files are overlaid on the defaults, so a file may set only the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range searchNames() {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			// A broken user file falls through to the next candidate.
			if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("runner"), &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data in the given format ("yaml" or "toml") over the defaults.
func Decode(data []byte, format string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

// FormatExtensions returns supported file extensions, in search order.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// loadFile reads and decodes a config file, picking the format by extension.
func loadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "yaml"
	}

	cfg, err := Decode(data, format)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// searchDirs lists the user and local config directories.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".runner", "configs"))
	}
	return append(dirs, "configs")
}
