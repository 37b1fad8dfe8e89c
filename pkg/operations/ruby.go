package operations

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/omni/pkg/types"
)

// RubyType is the up configuration name of the ruby operation
const RubyType = "ruby"

type rubyConfig struct {
	Version string `mapstructure:"version"`
}

// Ruby installs a Ruby version with rbenv and pins it for the repository
type Ruby struct {
	types.BaseOperation
	cfg  rubyConfig
	deps Deps
}

func newRuby(deps Deps) types.Constructor {
	return func(config map[string]interface{}, index int) (interface{}, error) {
		var cfg rubyConfig
		if err := decodeConfig(deps, RubyType, config, &cfg); err != nil {
			return nil, err
		}
		if cfg.Version == "" {
			return nil, fmt.Errorf("ruby operation requires a version")
		}
		return &Ruby{
			BaseOperation: types.NewBaseOperation(RubyType, config, index),
			cfg:           cfg,
			deps:          deps,
		}, nil
	}
}

// Up installs the version if missing and writes .ruby-version
func (r *Ruby) Up(ctx context.Context) types.Result {
	if err := r.deps.Runner.Run(ctx, "", "rbenv", "install", "--skip-existing", r.cfg.Version); err != nil {
		return fail(r.deps, r, err, "rbenv install "+r.cfg.Version)
	}
	if err := r.deps.Runner.Run(ctx, "", "rbenv", "local", r.cfg.Version); err != nil {
		return fail(r.deps, r, err, "rbenv local "+r.cfg.Version)
	}

	r.deps.Reporter.Success(r, "using ruby %s", r.cfg.Version)
	return types.ContinueSuccess
}

// Down unpins the repository's Ruby version; the install is kept
func (r *Ruby) Down(ctx context.Context) types.Result {
	if _, err := os.Stat(".ruby-version"); os.IsNotExist(err) {
		return types.ContinueSkip
	}

	if err := r.deps.Runner.Run(ctx, "", "rbenv", "local", "--unset"); err != nil {
		return fail(r.deps, r, err, "rbenv local --unset")
	}

	r.deps.Reporter.Success(r, "unpinned ruby %s", r.cfg.Version)
	return types.ContinueSuccess
}
