package operations

import (
	"context"
	"fmt"

	"github.com/arthur-debert/omni/pkg/types"
)

// CustomType is the up configuration name of the custom operation
const CustomType = "custom"

type customConfig struct {
	Name   string `mapstructure:"name"`
	Meet   string `mapstructure:"meet"`
	Met    string `mapstructure:"met?"`
	Unmeet string `mapstructure:"unmeet"`
	Dir    string `mapstructure:"dir"`
}

// Custom runs shell snippets: met? checks whether the environment is
// already set up, meet sets it up, unmeet tears it down.
type Custom struct {
	types.BaseOperation
	cfg  customConfig
	deps Deps
}

func newCustom(deps Deps) types.Constructor {
	return func(config map[string]interface{}, index int) (interface{}, error) {
		var cfg customConfig
		if err := decodeConfig(deps, CustomType, config, &cfg); err != nil {
			return nil, err
		}
		if cfg.Meet == "" {
			return nil, fmt.Errorf("custom operation requires a meet command")
		}
		if cfg.Dir == "" {
			cfg.Dir = "."
		}
		return &Custom{
			BaseOperation: types.NewBaseOperation(CustomType, config, index),
			cfg:           cfg,
			deps:          deps,
		}, nil
	}
}

func (c *Custom) label() string {
	if c.cfg.Name != "" {
		return c.cfg.Name
	}
	return c.cfg.Meet
}

// Up runs meet unless met? reports the work is already done
func (c *Custom) Up(ctx context.Context) types.Result {
	if c.cfg.Met != "" && c.deps.Runner.Succeeds(ctx, c.cfg.Dir, "bash", "-c", c.cfg.Met) {
		c.deps.Reporter.Info(c, "%s: already met", c.label())
		return types.ContinueSkip
	}

	if err := c.deps.Runner.Run(ctx, c.cfg.Dir, "bash", "-c", c.cfg.Meet); err != nil {
		return fail(c.deps, c, err, c.label()+": meet failed")
	}

	c.deps.Reporter.Success(c, "%s: done", c.label())
	return types.ContinueSuccess
}

// Down runs unmeet when one is configured
func (c *Custom) Down(ctx context.Context) types.Result {
	if c.cfg.Unmeet == "" {
		return types.ContinueSkip
	}

	if err := c.deps.Runner.Run(ctx, c.cfg.Dir, "bash", "-c", c.cfg.Unmeet); err != nil {
		return fail(c.deps, c, err, c.label()+": unmeet failed")
	}

	c.deps.Reporter.Success(c, "%s: reverted", c.label())
	return types.ContinueSuccess
}
