package operations

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/omni/pkg/types"
)

// GoType is the up configuration name of the go operation
const GoType = "go"

type goConfig struct {
	Dir string `mapstructure:"dir"`
}

// Go downloads the module dependencies of a Go module in the repository
type Go struct {
	types.BaseOperation
	cfg  goConfig
	deps Deps
}

func newGo(deps Deps) types.Constructor {
	return func(config map[string]interface{}, index int) (interface{}, error) {
		var cfg goConfig
		if err := decodeConfig(deps, GoType, config, &cfg); err != nil {
			return nil, err
		}
		if cfg.Dir == "" {
			cfg.Dir = "."
		}
		return &Go{
			BaseOperation: types.NewBaseOperation(GoType, config, index),
			cfg:           cfg,
			deps:          deps,
		}, nil
	}
}

// Up runs go mod download when the directory holds a go.mod
func (g *Go) Up(ctx context.Context) types.Result {
	if _, err := os.Stat(filepath.Join(g.cfg.Dir, "go.mod")); err != nil {
		g.deps.Reporter.Info(g, "no go.mod in %s", g.cfg.Dir)
		return types.ContinueSkip
	}

	if err := g.deps.Runner.Run(ctx, g.cfg.Dir, "go", "mod", "download"); err != nil {
		return fail(g.deps, g, err, "go mod download")
	}

	g.deps.Reporter.Success(g, "dependencies downloaded")
	return types.ContinueSuccess
}

// Down has nothing to undo: the module cache is shared
func (g *Go) Down(context.Context) types.Result {
	return types.ContinueSkip
}
