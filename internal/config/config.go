package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds the log file location. The TUI owns stdout, so logs go to
// a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds the defaults used until the child changes them in the
// settings tab; after that the sqlite settings rows win.
type UIConfig struct {
	Difficulty string
	Feedback   string
}

// Load reads configuration from file and env. Env var overrides use prefix OWLET_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "owlet")
	v.SetDefault("database.path", filepath.Join(dataDir, "owlet.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "owlet.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.difficulty", "easy")
	v.SetDefault("ui.feedback", "cheerful")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("OWLET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "owlet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("OWLET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("OWLET_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "owlet", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.difficulty", cfg.UI.Difficulty)
	v.Set("ui.feedback", cfg.UI.Feedback)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
