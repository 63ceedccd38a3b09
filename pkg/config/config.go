// Package config handles loading, merging, and validation of application
// configuration.
//
// Configuration is layered. Later layers win:
//
//   - built-in defaults
//   - the configuration embedded in the binary, if any
//   - the user file at $XDG_CONFIG_HOME/<app>/config.yaml, or the path in
//     <APP>_CONFIG, or the path passed to SetConfigPath
//   - environment variables <APP>_NO_INTERACTION, <APP>_MAX_ATTEMPTS,
//     <APP>_LOG_LEVEL and <APP>_NO_COLOR (NO_COLOR is honored as well)
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Loader handles loading configurations from various sources.
type Loader struct {
	cliName      string
	embeddedFS   *embed.FS
	embeddedPath string
	configPath   string
	envPrefix    string
}

// NewLoader creates a new configuration loader. embeddedFS may be nil.
func NewLoader(cliName string, embeddedFS *embed.FS, embeddedPath string) *Loader {
	return &Loader{
		cliName:      cliName,
		embeddedFS:   embeddedFS,
		embeddedPath: embeddedPath,
		envPrefix:    strings.ToUpper(strings.ReplaceAll(cliName, "-", "_")),
	}
}

// SetConfigPath makes the loader read the user configuration from path.
func (l *Loader) SetConfigPath(path string) {
	l.configPath = path
}

// EnvPrefix returns the prefix of the environment variables read.
func (l *Loader) EnvPrefix() string {
	return l.envPrefix
}

// LoadConfig loads, merges and validates configuration from all sources.
// Priority: ENV > User Config > Embedded > Default
func (l *Loader) LoadConfig() (*Config, error) {
	config := Default(l.cliName)

	if l.embeddedFS != nil {
		embedded, err := l.loadEmbeddedConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded config: %w", err)
		}
		config = mergeConfigs(config, embedded)
	}

	user, err := l.loadUserConfig()
	if err != nil {
		return nil, err
	}
	config = mergeConfigs(config, user)

	if err := l.applyEnvironmentOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := NewValidator().Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEmbeddedConfig loads the configuration embedded in the binary.
func (l *Loader) loadEmbeddedConfig() (*Config, error) {
	if l.embeddedFS == nil {
		return nil, fmt.Errorf("no embedded filesystem provided")
	}

	data, err := l.embeddedFS.ReadFile(l.embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse embedded config: %w", err)
	}

	return &config, nil
}

// loadUserConfig loads the user configuration file. A missing file yields
// an empty configuration unless the path was set explicitly.
func (l *Loader) loadUserConfig() (*Config, error) {
	configPath := l.UserConfigPath()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) && l.configPath == "" {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config %s: %w", configPath, err)
	}

	return &config, nil
}

// UserConfigPath returns the path of the user configuration file.
func (l *Loader) UserConfigPath() string {
	if l.configPath != "" {
		return l.configPath
	}

	// If user specified custom path via environment
	if customPath := os.Getenv(l.envPrefix + "_CONFIG"); customPath != "" {
		return customPath
	}

	// Use XDG config directory
	return filepath.Join(xdg.ConfigHome, l.cliName, "config.yaml")
}

// applyEnvironmentOverrides applies environment variable overrides.
func (l *Loader) applyEnvironmentOverrides(config *Config) error {
	v := viper.New()

	bindings := map[string][]string{
		"no_interaction": {l.envPrefix + "_NO_INTERACTION"},
		"max_attempts":   {l.envPrefix + "_MAX_ATTEMPTS"},
		"log_level":      {l.envPrefix + "_LOG_LEVEL"},
		"output":         {l.envPrefix + "_OUTPUT"},
		"no_color":       {l.envPrefix + "_NO_COLOR", "NO_COLOR"},
	}
	for key, envVars := range bindings {
		if err := v.BindEnv(append([]string{key}, envVars...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if raw := v.GetString("no_interaction"); raw != "" {
		b, err := parseBool(raw)
		if err != nil {
			return fmt.Errorf("%s_NO_INTERACTION: %w", l.envPrefix, err)
		}
		config.Interaction.NoInteraction = &b
	}

	if raw := v.GetString("max_attempts"); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s_MAX_ATTEMPTS: %q is not an integer", l.envPrefix, raw)
		}
		config.Interaction.MaxAttempts = n
	}

	if level := v.GetString("log_level"); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}

	if format := v.GetString("output"); format != "" {
		config.Output.Format = strings.ToLower(format)
	}

	// Any non-empty NO_COLOR disables color.
	if v.GetString("no_color") != "" {
		config.Output.Color = "never"
	}

	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", raw)
}

// SaveUserConfig saves user configuration to the user config path.
func (l *Loader) SaveUserConfig(config *Config) error {
	configPath := l.UserConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
