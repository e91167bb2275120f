package cliapp

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfigYAML []byte

// Config holds CLI-wide defaults that flags may override. The clustering
// engine itself takes no configuration. Only Rule is read, by the cluster
// subcommand when --rule is not given; InputFormat and OutputFormat are
// parsed but no subcommand reads them, and there are no --input-format or
// --output-format flags.
type Config struct {
	Rule         string `yaml:"rule"`
	InputFormat  string `yaml:"input_format"`
	OutputFormat string `yaml:"output_format"`
}

// configDir returns the XDG config directory for hclust.
func configDir() string {
	return filepath.Join(homeDir(), ".config", "hclust")
}

// resolveConfigPath finds the config file following priority:
// explicit path > ~/.config/hclust/config.yaml > ./config.yaml. An empty
// result with a nil error means no config file was found and defaults
// alone apply.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(configDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// loadConfig resolves and parses the effective config, falling back to the
// embedded defaults when no file is found.
func loadConfig(explicitPath string) (*Config, error) {
	path, err := resolveConfigPath(explicitPath)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return parseConfig(defaultConfigYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parseConfig(data)
}

// parseConfig parses YAML bytes into a Config, pre-populated with defaults
// so a partial file only overrides the fields it names.
func parseConfig(data []byte) (*Config, error) {
	cfg := &Config{
		Rule:         "single",
		InputFormat:  "csv",
		OutputFormat: "text",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
