package runner

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRun(t *testing.T) {
	requireShell(t)

	var out bytes.Buffer
	r := &Exec{Stdout: &out, Stderr: &out, Logger: zerolog.Nop()}
	dir := t.TempDir()

	require.NoError(t, r.Run(context.Background(), dir, "sh", "-c", "echo hello; pwd"))
	assert.Contains(t, out.String(), "hello")

	err := r.Run(context.Background(), dir, "sh", "-c", "exit 3")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	assert.Contains(t, err.Error(), "sh -c exit 3")
}

func TestExecSucceeds(t *testing.T) {
	requireShell(t)

	r := &Exec{Logger: zerolog.Nop()}
	assert.True(t, r.Succeeds(context.Background(), "", "sh", "-c", "true"))
	assert.False(t, r.Succeeds(context.Background(), "", "sh", "-c", "false"))
	assert.False(t, r.Succeeds(context.Background(), "", "definitely-not-a-command-omni"))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder("brew install jq", "rbenv *")

	require.NoError(t, r.Run(context.Background(), "", "brew", "install", "wget"))
	require.Error(t, r.Run(context.Background(), "", "brew", "install", "jq"))
	assert.False(t, r.Succeeds(context.Background(), "/repo", "rbenv", "local", "3.3.0"))
	assert.True(t, r.Succeeds(context.Background(), ".", "go", "version"))

	assert.Equal(t, []string{
		"brew install wget",
		"brew install jq",
		"(/repo) rbenv local 3.3.0",
		"go version",
	}, r.Commands())
}
