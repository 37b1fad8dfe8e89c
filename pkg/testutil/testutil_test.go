package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/omni/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	assert.DirExists(t, filepath.Join(env.RepoRoot, ".git"))
	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.Equal(t, env.UserConfigFile, os.Getenv("OMNI_USER_CONFIG"))
	assert.Empty(t, env.ReadUserConfig())

	env.WriteUserConfig("path: {}\n")
	assert.Equal(t, "path: {}\n", env.ReadUserConfig())

	path := env.WriteRepoFile(".omni/config.yaml", "up: []\n")
	assert.FileExists(t, path)
}

func TestJournal(t *testing.T) {
	j := NewJournal()
	j.Script("go", 1, types.DirectionUp, types.Stop)

	ctor := RecordingConstructor(j, "go")
	product, err := ctor(nil, 1)
	require.NoError(t, err)
	op, ok := product.(types.Operation)
	require.True(t, ok)

	assert.Equal(t, types.Stop, op.Up(context.Background()))
	assert.Equal(t, types.ContinueSuccess, op.Down(context.Background()))
	assert.Equal(t, []string{"go#1.up", "go#1.down"}, j.Keys())
	assert.Equal(t, []int{1, 1}, j.Indexes())
}
