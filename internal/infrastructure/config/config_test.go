package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "speed-draft", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "project.db", cfg.Project.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, defaultCategories, cfg.Tagging.Categories)
	assert.True(t, cfg.Tagging.ToggleVisibility)
	assert.True(t, cfg.Tagging.CheckBlankTag)
	assert.False(t, cfg.Tagging.TagWindowsInPlan)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SPEEDDRAFT_LOG_LEVEL", "debug")
	t.Setenv("SPEEDDRAFT_PROJECT_PATH", "office-tower.db")
	t.Setenv("SPEEDDRAFT_TAGGING_TAG_WINDOWS_IN_PLAN", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "office-tower.db", cfg.Project.Path)
	assert.True(t, cfg.Tagging.TagWindowsInPlan)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SPEEDDRAFT_LOG_LEVEL", "verbose")

	_, err := Load()

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Project: ProjectConfig{Path: "project.db"},
			Log:     LogConfig{Level: "info", Format: "console", Output: "stdout"},
			Tagging: TaggingConfig{Categories: []string{"Doors"}},
		}
	}

	assert.NoError(t, valid().validate())

	badLevel := valid()
	badLevel.Log.Level = "trace"
	assert.Error(t, badLevel.validate())

	badFormat := valid()
	badFormat.Log.Format = "xml"
	assert.Error(t, badFormat.validate())

	noPath := valid()
	noPath.Project.Path = ""
	assert.Error(t, noPath.validate())

	noCategories := valid()
	noCategories.Tagging.Categories = nil
	assert.Error(t, noCategories.validate())
}
