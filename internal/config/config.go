// Package config loads application settings from an optional YAML file,
// LINGOBUDDY_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "LINGOBUDDY"
	AppName   = "lingobuddy"

	DefaultProvider = "gtranslate"
	DefaultSource   = "en"
	DefaultTarget   = "fr"
	DefaultLogLevel = "warn"
)

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
	Project     string `mapstructure:"project"`
	APIKey      string `mapstructure:"api_key"`
}

type MyMemoryConfig struct {
	Email string `mapstructure:"email"`
}

type SystranConfig struct {
	Key string `mapstructure:"key"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DB      string `mapstructure:"db"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Provider string         `mapstructure:"provider"`
	Source   string         `mapstructure:"source"`
	Target   string         `mapstructure:"target"`
	Check    bool           `mapstructure:"check"`
	Google   GoogleConfig   `mapstructure:"google"`
	MyMemory MyMemoryConfig `mapstructure:"mymemory"`
	Systran  SystranConfig  `mapstructure:"systran"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      LogConfig      `mapstructure:"log"`
}

// SetDefaults registers every key so environment variables are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("source", DefaultSource)
	v.SetDefault("target", DefaultTarget)
	v.SetDefault("check", false)
	v.SetDefault("google.credentials", "")
	v.SetDefault("google.project", "")
	v.SetDefault("google.api_key", "")
	v.SetDefault("mymemory.email", "")
	v.SetDefault("systran.key", "")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.db", DefaultDBPath())
	v.SetDefault("log.level", DefaultLogLevel)
}

// Setup prepares v: defaults, environment binding and the config file. An
// explicit cfgFile must exist; the default file is optional.
func Setup(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, AppName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	return &cfg, nil
}

// DefaultDBPath is where the translation memory lives unless configured.
func DefaultDBPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", AppName, "memory.db")
	}
	return filepath.Join(dir, AppName, "memory.db")
}
