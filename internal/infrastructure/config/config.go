package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Project ProjectConfig
	Log     LogConfig
	Tagging TaggingConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// ProjectConfig holds project document settings
type ProjectConfig struct {
	Path string // project document database file
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// TaggingConfig holds the category allow-list and the per-run toggles
type TaggingConfig struct {
	Categories       []string // allow-list of taggable category names
	ToggleVisibility bool     // skip elements not visible in the view
	CheckBlankTag    bool     // delete freshly created tags with blank text
	TagWindowsInPlan bool     // tag windows in floor plans with a leader
}

// defaultCategories is the built-in allow-list of taggable categories
var defaultCategories = []string{
	"Doors",
	"Windows",
	"Walls",
	"Floors",
	"Ceilings",
	"Furniture",
	"Plumbing Fixtures",
	"Lighting Fixtures",
	"Mechanical Equipment",
	"Rooms",
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SPEEDDRAFT_ prefix (e.g. SPEEDDRAFT_LOG_LEVEL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/speeddraft")

	applyDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("SPEEDDRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Project: ProjectConfig{
			Path: v.GetString("project.path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Tagging: TaggingConfig{
			Categories:       v.GetStringSlice("tagging.categories"),
			ToggleVisibility: v.GetBool("tagging.toggle_visibility"),
			CheckBlankTag:    v.GetBool("tagging.check_blank_tag"),
			TagWindowsInPlan: v.GetBool("tagging.tag_windows_in_plan"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults registers the built-in defaults with viper
func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "speed-draft")
	v.SetDefault("app.env", "development")

	v.SetDefault("project.path", "project.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("tagging.categories", defaultCategories)
	v.SetDefault("tagging.toggle_visibility", true)
	v.SetDefault("tagging.check_blank_tag", true)
	v.SetDefault("tagging.tag_windows_in_plan", false)
}

// validate checks the configuration for values the application cannot run with
func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console; got %q", c.Log.Format)
	}

	if c.Project.Path == "" {
		return fmt.Errorf("project.path must not be empty")
	}

	if len(c.Tagging.Categories) == 0 {
		return fmt.Errorf("tagging.categories must not be empty")
	}

	return nil
}
