package up

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/registry"
	"github.com/arthur-debert/omni/pkg/testutil"
	"github.com/arthur-debert/omni/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(j *testutil.Journal, names ...string) *registry.Registry {
	reg := registry.New()
	for _, name := range names {
		reg.MustRegister(name, testutil.RecordingConstructor(j, name))
	}
	return reg
}

func prepare(t *testing.T, reg *registry.Registry, raw interface{}) []types.Operation {
	t.Helper()
	ops, err := Prepare(reg, raw)
	require.NoError(t, err)
	return ops
}

func TestPrepareBuildsInstancesInOrder(t *testing.T) {
	j := testutil.NewJournal()
	reg := newTestRegistry(j, "go", "bundler")

	ops := prepare(t, reg, []interface{}{
		"go",
		map[string]interface{}{"bundler": map[string]interface{}{"flag": true}},
	})

	require.Len(t, ops, 2)
	assert.Equal(t, "go", ops[0].Type())
	assert.Equal(t, 0, ops[0].Index())
	assert.Empty(t, ops[0].Config())
	assert.Equal(t, "bundler", ops[1].Type())
	assert.Equal(t, 1, ops[1].Index())
	assert.Equal(t, map[string]interface{}{"flag": true}, ops[1].Config())
	assert.Empty(t, j.Calls(), "preparing must not invoke any action")
}

func TestPrepareFailsBeforeAnythingRuns(t *testing.T) {
	j := testutil.NewJournal()
	reg := newTestRegistry(j, "go")

	ops, err := Prepare(reg, []interface{}{"go", "frobnicate"})
	require.Error(t, err)
	assert.Nil(t, ops)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOperation))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["index"])
	assert.Empty(t, j.Calls(), "go's up must never be called")
}

func TestPrepareLateMalformedEntry(t *testing.T) {
	j := testutil.NewJournal()
	reg := newTestRegistry(j, "go")

	raw := []interface{}{"go", "go", "go", "go", "go", map[string]interface{}{"go": nil, "x": nil}}
	_, err := Prepare(reg, raw)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidOperation))
	assert.Equal(t, 5, errors.GetErrorDetails(err)["index"])
	assert.Empty(t, j.Calls())
}

func TestRunUpUsesDeclarationOrder(t *testing.T) {
	j := testutil.NewJournal()
	reg := newTestRegistry(j, "a", "b", "c")
	ops := prepare(t, reg, []interface{}{"a", "b", "c"})

	report, err := NewExecutor(Options{Operations: ops}).Run(context.Background(), types.DirectionUp)
	require.NoError(t, err)

	assert.Equal(t, []string{"a#0.up", "b#1.up", "c#2.up"}, j.Keys())
	assert.Equal(t, []int{0, 1, 2}, report.Visited)
	assert.False(t, report.Stopped)
	assert.Equal(t, -1, report.StoppedAt)
}

func TestRunDownIsMirrorOfUp(t *testing.T) {
	raw := []interface{}{"a", "b", "c", "d"}

	upJournal := testutil.NewJournal()
	upOps := prepare(t, newTestRegistry(upJournal, "a", "b", "c", "d"), raw)
	_, err := NewExecutor(Options{Operations: upOps}).Run(context.Background(), types.DirectionUp)
	require.NoError(t, err)

	downJournal := testutil.NewJournal()
	downOps := prepare(t, newTestRegistry(downJournal, "a", "b", "c", "d"), raw)
	_, err = NewExecutor(Options{Operations: downOps}).Run(context.Background(), types.DirectionDown)
	require.NoError(t, err)

	up := upJournal.Indexes()
	down := downJournal.Indexes()
	require.Len(t, down, len(up))
	for i := range up {
		assert.Equal(t, up[i], down[len(down)-1-i])
	}
	assert.Equal(t, []string{"d#3.down", "c#2.down", "b#1.down", "a#0.down"}, downJournal.Keys())
}

func TestRunDoesNotReorderOperations(t *testing.T) {
	j := testutil.NewJournal()
	ops := prepare(t, newTestRegistry(j, "a", "b"), []interface{}{"a", "b"})

	exec := NewExecutor(Options{Operations: ops})
	_, err := exec.Run(context.Background(), types.DirectionDown)
	require.NoError(t, err)

	assert.Equal(t, "a", ops[0].Type())
	assert.Equal(t, "b", ops[1].Type())
}

func TestRunShortCircuitsOnStop(t *testing.T) {
	tests := []struct {
		name      string
		direction types.Direction
		stopType  string
		stopIndex int
		expected  []string
	}{
		{
			name:      "stop in the middle going up",
			direction: types.DirectionUp,
			stopType:  "b",
			stopIndex: 1,
			expected:  []string{"a#0.up", "b#1.up"},
		},
		{
			name:      "stop at first going up",
			direction: types.DirectionUp,
			stopType:  "a",
			stopIndex: 0,
			expected:  []string{"a#0.up"},
		},
		{
			name:      "stop going down",
			direction: types.DirectionDown,
			stopType:  "c",
			stopIndex: 2,
			expected:  []string{"d#3.down", "c#2.down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := testutil.NewJournal()
			j.Script(tt.stopType, tt.stopIndex, tt.direction, types.Stop)
			ops := prepare(t, newTestRegistry(j, "a", "b", "c", "d"), []interface{}{"a", "b", "c", "d"})

			report, err := NewExecutor(Options{Operations: ops}).Run(context.Background(), tt.direction)
			require.NoError(t, err, "a stop is not an error")

			assert.Equal(t, tt.expected, j.Keys())
			assert.True(t, report.Stopped)
			assert.Equal(t, tt.stopIndex, report.StoppedAt)
		})
	}
}

func TestRunSkipContinues(t *testing.T) {
	j := testutil.NewJournal()
	j.Script("a", 0, types.DirectionUp, types.ContinueSkip)
	ops := prepare(t, newTestRegistry(j, "a", "b"), []interface{}{"a", "b"})

	report, err := NewExecutor(Options{Operations: ops}).Run(context.Background(), types.DirectionUp)
	require.NoError(t, err)

	assert.Equal(t, []string{"a#0.up", "b#1.up"}, j.Keys())
	assert.Equal(t, []types.Result{types.ContinueSkip, types.ContinueSuccess}, report.Results)
	assert.False(t, report.Stopped)
}

func TestRunUnknownDirection(t *testing.T) {
	j := testutil.NewJournal()
	ops := prepare(t, newTestRegistry(j, "a"), []interface{}{"a"})

	_, err := NewExecutor(Options{Operations: ops}).Run(context.Background(), types.Direction("sideways"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownDirection))
	assert.Empty(t, j.Calls())
}

// cwdOperation records the working directory its actions see
type cwdOperation struct {
	types.BaseOperation
	seen  *string
	panic bool
}

func (c *cwdOperation) Up(context.Context) types.Result {
	wd, _ := os.Getwd()
	*c.seen = wd
	if c.panic {
		panic("boom")
	}
	return types.ContinueSuccess
}

func (c *cwdOperation) Down(ctx context.Context) types.Result { return c.Up(ctx) }

func resolved(t *testing.T, path string) string {
	t.Helper()
	out, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return out
}

func TestRunChangesIntoRootAndRestores(t *testing.T) {
	root := t.TempDir()
	elsewhere := t.TempDir()
	testutil.Chdir(t, elsewhere)

	var seen string
	op := &cwdOperation{BaseOperation: types.NewBaseOperation("cwd", nil, 0), seen: &seen}

	_, err := NewExecutor(Options{Root: root, Operations: []types.Operation{op}}).Run(context.Background(), types.DirectionUp)
	require.NoError(t, err)

	assert.Equal(t, resolved(t, root), resolved(t, seen))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, resolved(t, elsewhere), resolved(t, wd))
}

func TestRunRestoresDirectoryOnPanic(t *testing.T) {
	root := t.TempDir()
	elsewhere := t.TempDir()
	testutil.Chdir(t, elsewhere)

	var seen string
	op := &cwdOperation{BaseOperation: types.NewBaseOperation("cwd", nil, 0), seen: &seen, panic: true}

	assert.Panics(t, func() {
		_, _ = NewExecutor(Options{Root: root, Operations: []types.Operation{op}}).Run(context.Background(), types.DirectionUp)
	})

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, resolved(t, elsewhere), resolved(t, wd))
}

func TestRunMissingRoot(t *testing.T) {
	j := testutil.NewJournal()
	ops := prepare(t, newTestRegistry(j, "a"), []interface{}{"a"})

	_, err := NewExecutor(Options{Root: filepath.Join(t.TempDir(), "missing"), Operations: ops}).
		Run(context.Background(), types.DirectionUp)
	require.Error(t, err)
	assert.Empty(t, j.Calls())
}
