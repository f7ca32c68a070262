/*
Package config manages TOML config for anaserve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/anaserve/anaserve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Find     FindConfig     `toml:"find"`
	Server   ServerConfig   `toml:"server"`
	Wordlist WordlistConfig `toml:"wordlist"`
}

// FindConfig has lookup related options shared by the CLI and the server.
type FindConfig struct {
	// DefaultLimit caps result counts when a request names no limit.
	// 0 means unlimited in the CLI; the server still applies its MaxLimit.
	DefaultLimit int `toml:"default_limit"`
	// MinGroupSize is the smallest anagram group the groups listing reports.
	MinGroupSize int `toml:"min_group_size"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit    int `toml:"max_limit"`
	MaxQueryLen int `toml:"max_query_len"`
}

// WordlistConfig holds wordlist options.
type WordlistConfig struct {
	// Path of the wordlist file; empty selects the embedded default list.
	Path   string `toml:"path"`
	Dedupe bool   `toml:"dedupe"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "anaserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/anaserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Find: FindConfig{
			DefaultLimit: 100,
			MinGroupSize: 2,
		},
		Server: ServerConfig{
			MaxLimit:    256,
			MaxQueryLen: 64,
		},
		Wordlist: WordlistConfig{
			Path:   "",
			Dedupe: false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections of a broken config still decode;
// everything else keeps its default.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if findSection, ok := utils.ExtractSection(raw, "find"); ok {
		extractFindConfig(findSection, &config.Find)
	}
	if serverSection, ok := utils.ExtractSection(raw, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if wordlistSection, ok := utils.ExtractSection(raw, "wordlist"); ok {
		extractWordlistConfig(wordlistSection, &config.Wordlist)
	}
	return config, nil
}

// extractFindConfig extracts find configuration from a map
func extractFindConfig(data map[string]any, find *FindConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		find.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_group_size"); ok {
		find.MinGroupSize = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		server.MaxQueryLen = val
	}
}

// extractWordlistConfig extracts wordlist configuration from a map
func extractWordlistConfig(data map[string]any, wl *WordlistConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		wl.Path = val
	}
	if val, ok := utils.ExtractBool(data, "dedupe"); ok {
		wl.Dedupe = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
