package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo configuration.
type Config struct {
	UI   UIConfig
	Data DataConfig
	Log  LogConfig
}

// UIConfig holds widget presentation settings.
type UIConfig struct {
	Variant     string
	Size        string
	Selectable  string
	TableHeight int `mapstructure:"table_height"`
}

// DataConfig points at an optional TOML file of table rows. Empty uses the
// built-in rows.
type DataConfig struct {
	Path string
}

// LogConfig holds the rolling log file settings.
type LogConfig struct {
	Level      string
	Format     string
	Filename   string
	MaxSize    int `mapstructure:"max_size"`
	MaxDays    int `mapstructure:"max_days"`
	MaxBackups int `mapstructure:"max_backups"`
}

// Load reads configuration from file and env. Env var overrides use prefix WIDGETDEMO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.variant", "outlined")
	v.SetDefault("ui.size", "md")
	v.SetDefault("ui.selectable", "multiple")
	v.SetDefault("ui.table_height", 6)
	v.SetDefault("data.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.filename", filepath.Join(os.TempDir(), "widgetdemo.log"))
	v.SetDefault("log.max_size", 16)
	v.SetDefault("log.max_days", 7)
	v.SetDefault("log.max_backups", 3)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WIDGETDEMO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "widgetdemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WIDGETDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; an explicit one must load
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TableHeight < 3 {
		c.UI.TableHeight = 3
	}
	return c, nil
}
