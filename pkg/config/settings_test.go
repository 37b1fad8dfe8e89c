package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OMNI_USER_CONFIG", "")
	t.Setenv("OMNI_LOG_FILE", "")
	t.Setenv("OMNI_NO_COLOR", "")
	t.Setenv("OMNI_UPDATE_USER_CONFIG", "")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "no", s.UpdateUserConfig)
	assert.False(t, s.NoColor)
	assert.Empty(t, s.LogFile)
	assert.Equal(t, filepath.Join("omni", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(s.UserConfigFile)), filepath.Base(s.UserConfigFile)))
}

func TestLoadSettings_Environment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OMNI_USER_CONFIG", "~/omni.toml")
	t.Setenv("OMNI_LOG_FILE", "/tmp/omni-test.log")
	t.Setenv("OMNI_NO_COLOR", "1")
	t.Setenv("OMNI_UPDATE_USER_CONFIG", "ask")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "omni.toml"), s.UserConfigFile)
	assert.Equal(t, "/tmp/omni-test.log", s.LogFile)
	assert.True(t, s.NoColor)
	assert.Equal(t, "ask", s.UpdateUserConfig)
}

func TestDefaultSettingsContent(t *testing.T) {
	assert.Contains(t, DefaultSettingsContent(), "update_user_config")
}
