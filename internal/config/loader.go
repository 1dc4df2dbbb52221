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

const configFilename = "config.yaml"

var userHomeDir = os.UserHomeDir

func LoadGlobalConfig() (RawConfig, bool, error) {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(filepath.Join(home, ".fimgen", configFilename))
}

func LoadProjectConfig(projectRoot string) (RawConfig, bool, error) {
	if projectRoot == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(filepath.Join(projectRoot, ".fimgen", configFilename))
}

// LoadConfig reads global and project configs and returns the resolved
// config. Precedence per key: project > global > defaults.
func LoadConfig(projectRoot string) (ResolvedConfig, error) {
	globalCfg, _, err := LoadGlobalConfig()
	if err != nil {
		return ResolvedConfig{}, err
	}
	projectCfg, _, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return ResolvedConfig{}, err
	}
	return ResolveConfig(projectCfg, globalCfg), nil
}

func loadConfigFile(path string) (RawConfig, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var cfg RawConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return RawConfig{}, true, nil
		}
		return RawConfig{}, false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// WriteDefault writes the starter config template at
// <projectRoot>/.fimgen/config.yaml, atomically. Existing files are
// left untouched.
func WriteDefault(projectRoot string) (string, error) {
	dir := filepath.Join(projectRoot, ".fimgen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	path := filepath.Join(dir, configFilename)

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := atomicWriteFile(path, []byte(defaultTemplate), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

const defaultTemplate = `# fimgen configuration. Project values override ~/.fimgen/config.yaml.
generation:
  cursorsPerRecord: 3
  # prefix_suffix_middle | suffix_prefix_middle | zed_format | mixed
  format: mixed
  # 0 seeds from the clock; any other value makes runs reproducible.
  seed: 0
mining:
  maxCommits: 100
  minChangedLines: 1
dataset:
  outputDir: dataset
  testFraction: 0.1
`
