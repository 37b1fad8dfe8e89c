package operations

import (
	"context"
	"fmt"

	"github.com/arthur-debert/omni/pkg/types"
)

// HomebrewType is the up configuration name of the homebrew operation
const HomebrewType = "homebrew"

type brewInstall struct {
	Formula string `mapstructure:"formula"`
	Cask    string `mapstructure:"cask"`
}

func (b brewInstall) name() string {
	if b.Cask != "" {
		return b.Cask
	}
	return b.Formula
}

func (b brewInstall) kindFlag() string {
	if b.Cask != "" {
		return "--cask"
	}
	return "--formula"
}

type homebrewConfig struct {
	Tap     []string      `mapstructure:"tap"`
	Install []brewInstall `mapstructure:"install"`
}

// Homebrew taps repositories and installs formulae and casks
type Homebrew struct {
	types.BaseOperation
	cfg  homebrewConfig
	deps Deps
}

func newHomebrew(deps Deps) types.Constructor {
	return func(config map[string]interface{}, index int) (interface{}, error) {
		var cfg homebrewConfig
		hook := stringToStructHook(func(s string) brewInstall { return brewInstall{Formula: s} })
		if err := decodeConfig(deps, HomebrewType, config, &cfg, hook); err != nil {
			return nil, err
		}
		for i, install := range cfg.Install {
			if install.Formula != "" && install.Cask != "" {
				return nil, fmt.Errorf("homebrew install %d: formula and cask are mutually exclusive", i)
			}
			if install.name() == "" {
				return nil, fmt.Errorf("homebrew install %d: missing formula or cask name", i)
			}
		}
		return &Homebrew{
			BaseOperation: types.NewBaseOperation(HomebrewType, config, index),
			cfg:           cfg,
			deps:          deps,
		}, nil
	}
}

// Up taps every tap, then installs everything not installed yet
func (h *Homebrew) Up(ctx context.Context) types.Result {
	changed := false

	for _, tap := range h.cfg.Tap {
		if err := h.deps.Runner.Run(ctx, "", "brew", "tap", tap); err != nil {
			return fail(h.deps, h, err, "tap "+tap)
		}
		h.deps.Reporter.Success(h, "tapped %s", tap)
		changed = true
	}

	for _, install := range h.cfg.Install {
		name := install.name()
		if h.deps.Runner.Succeeds(ctx, "", "brew", "list", install.kindFlag(), name) {
			h.deps.Reporter.Info(h, "%s already installed", name)
			continue
		}

		args := []string{"install"}
		if install.Cask != "" {
			args = append(args, "--cask")
		}
		args = append(args, name)
		if err := h.deps.Runner.Run(ctx, "", "brew", args...); err != nil {
			return fail(h.deps, h, err, "install "+name)
		}
		h.deps.Reporter.Success(h, "installed %s", name)
		changed = true
	}

	if !changed {
		return types.ContinueSkip
	}
	return types.ContinueSuccess
}

// Down leaves packages installed: they are shared system state and no
// record of which repository installed them is kept.
func (h *Homebrew) Down(context.Context) types.Result {
	if len(h.cfg.Install) > 0 || len(h.cfg.Tap) > 0 {
		h.deps.Logger.Info().
			Int("index", h.Index()).
			Msg("Homebrew packages are left installed")
	}
	return types.ContinueSkip
}
