package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"sreddy.dev/data"
	"sreddy.dev/internal/models"
)

// Config holds all application configuration.
// Values come from the config file, PORTFOLIO_* env vars and CLI flags.
type Config struct {
	ServerAddr string        `mapstructure:"server_addr"`
	DataDir    string        `mapstructure:"data_dir"` // empty means the embedded seed content
	StaticDir  string        `mapstructure:"static_dir"`
	Log        LogConfig     `mapstructure:"log"`
	Metrics    MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// MetricsConfig holds prometheus settings
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SetDefaults registers built-in defaults for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("data_dir", "")
	v.SetDefault("static_dir", "static")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", true)
}

// BindEnv makes every key overridable via PORTFOLIO_<KEY>, with dots as underscores
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads settings from the global viper instance
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads settings from v, applying defaults for anything unset
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log.format %q (want text or json)", cfg.Log.Format)
	}

	return &cfg, nil
}

// ContentFS returns the filesystem content is read from
func (c *Config) ContentFS() fs.FS {
	if c.DataDir == "" {
		return data.FS
	}
	return os.DirFS(c.DataDir)
}

// ContentSource describes where content is read from, for logs
func (c *Config) ContentSource() string {
	if c.DataDir == "" {
		return "embedded"
	}
	return c.DataDir
}

// Content holds the three read-only datasets served by the site
type Content struct {
	Projects *models.ProjectList
	Profile  *models.Profile
	Skills   *models.SkillList
}

// LoadContent reads and validates every dataset from the configured source
func (c *Config) LoadContent() (*Content, error) {
	return LoadContent(c.ContentFS())
}
