package operations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/omni/pkg/types"
)

// BundlerType is the up configuration name of the bundler operation
const BundlerType = "bundler"

const defaultBundlePath = "vendor/bundle"

type bundlerConfig struct {
	Gemfile string `mapstructure:"gemfile"`
	Path    string `mapstructure:"path"`
}

// Bundler installs the repository's gems into a repository-local path
type Bundler struct {
	types.BaseOperation
	cfg  bundlerConfig
	deps Deps
}

func newBundler(deps Deps) types.Constructor {
	return func(config map[string]interface{}, index int) (interface{}, error) {
		var cfg bundlerConfig
		if err := decodeConfig(deps, BundlerType, config, &cfg); err != nil {
			return nil, err
		}
		if cfg.Path == "" {
			cfg.Path = defaultBundlePath
		}
		if filepath.IsAbs(cfg.Path) || escapes(cfg.Path) {
			return nil, fmt.Errorf("bundler path %q must be inside the repository", cfg.Path)
		}
		return &Bundler{
			BaseOperation: types.NewBaseOperation(BundlerType, config, index),
			cfg:           cfg,
			deps:          deps,
		}, nil
	}
}

func (b *Bundler) gemfile() string {
	if b.cfg.Gemfile != "" {
		return b.cfg.Gemfile
	}
	return "Gemfile"
}

// Up configures the local bundle path and runs bundle install
func (b *Bundler) Up(ctx context.Context) types.Result {
	if _, err := os.Stat(b.gemfile()); err != nil {
		b.deps.Reporter.Info(b, "no %s found", b.gemfile())
		return types.ContinueSkip
	}

	if err := b.deps.Runner.Run(ctx, "", "bundle", "config", "set", "--local", "path", b.cfg.Path); err != nil {
		return fail(b.deps, b, err, "bundle config")
	}

	args := []string{"install"}
	if b.cfg.Gemfile != "" {
		args = append(args, "--gemfile="+b.cfg.Gemfile)
	}
	if err := b.deps.Runner.Run(ctx, "", "bundle", args...); err != nil {
		return fail(b.deps, b, err, "bundle install")
	}

	b.deps.Reporter.Success(b, "gems installed in %s", b.cfg.Path)
	return types.ContinueSuccess
}

// Down removes the installed gems and the local bundle path setting
func (b *Bundler) Down(ctx context.Context) types.Result {
	if _, err := os.Stat(b.cfg.Path); os.IsNotExist(err) {
		return types.ContinueSkip
	}

	if err := os.RemoveAll(b.cfg.Path); err != nil {
		return fail(b.deps, b, err, "remove "+b.cfg.Path)
	}
	if err := b.deps.Runner.Run(ctx, "", "bundle", "config", "unset", "--local", "path"); err != nil {
		return fail(b.deps, b, err, "bundle config")
	}

	b.deps.Reporter.Success(b, "removed %s", b.cfg.Path)
	return types.ContinueSuccess
}

func escapes(rel string) bool {
	clean := filepath.Clean(rel)
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
