package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/studioutils/studioutils/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyStudioURL   = "studio_url"
	KeyBasePath    = "base_path"
	KeyCatalogFile = "catalog_file"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyListenAddr  = "listen_addr"
	KeyOpenCommand = "open_command"
)

// Default values applied by Load.
const (
	DefaultBasePath   = "/desk"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "console"
	DefaultListenAddr = "127.0.0.1:3434"
)

// Keys lists every key the CLI understands, in display order.
var Keys = []string{
	KeyStudioURL,
	KeyBasePath,
	KeyCatalogFile,
	KeyLogLevel,
	KeyLogFormat,
	KeyListenAddr,
	KeyOpenCommand,
}

// Dir returns the path to the config directory (~/.studioutils/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.studioutils/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyStudioURL, branding.StudioURL())
	viper.SetDefault(KeyBasePath, DefaultBasePath)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyLogFormat, DefaultLogFormat)
	viper.SetDefault(KeyListenAddr, DefaultListenAddr)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is one of the documented configuration keys.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file. Only the
// keys already in the file and the one being set are written; defaults,
// environment overrides and flags never leak into the file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
