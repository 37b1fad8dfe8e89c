package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is an isolated git repository plus HOME and XDG dirs
type TestEnvironment struct {
	// RepoRoot is the root of a freshly initialized git repository
	RepoRoot string

	// HomeDir is the fake home directory
	HomeDir string

	// ConfigHome is $XDG_CONFIG_HOME inside HomeDir
	ConfigHome string

	// UserConfigFile is where the user configuration lives in this environment
	UserConfigFile string

	t *testing.T
}

// NewTestEnvironment creates the directories, initializes the repository
// and points HOME, XDG_CONFIG_HOME, XDG_STATE_HOME and OMNI_USER_CONFIG at them.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		RepoRoot:   filepath.Join(base, "repo"),
		HomeDir:    filepath.Join(base, "home"),
		ConfigHome: filepath.Join(base, "home", ".config"),
		t:          t,
	}
	env.UserConfigFile = filepath.Join(env.ConfigHome, "omni", "config.yaml")

	for _, dir := range []string{env.RepoRoot, env.HomeDir, env.ConfigHome} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	InitRepo(t, env.RepoRoot)

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	t.Setenv("OMNI_USER_CONFIG", env.UserConfigFile)
	t.Setenv("OMNI_GIT_REPO_ROOT", "")

	return env
}

// WriteRepoFile writes content to a path relative to the repository root
func (e *TestEnvironment) WriteRepoFile(rel, content string) string {
	e.t.Helper()
	return WriteFile(e.t, filepath.Join(e.RepoRoot, rel), content)
}

// WriteUserConfig writes the user configuration file
func (e *TestEnvironment) WriteUserConfig(content string) {
	e.t.Helper()
	WriteFile(e.t, e.UserConfigFile, content)
}

// ReadUserConfig returns the user configuration file content, or "" if missing
func (e *TestEnvironment) ReadUserConfig() string {
	e.t.Helper()
	data, err := os.ReadFile(e.UserConfigFile)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(e.t, err)
	return string(data)
}

// InitRepo initializes a git repository at dir
func InitRepo(t *testing.T, dir string) {
	t.Helper()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Chdir changes into dir for the duration of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}
