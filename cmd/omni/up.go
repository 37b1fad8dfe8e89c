package omni

import (
	"context"

	"github.com/arthur-debert/omni/pkg/config"
	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/arthur-debert/omni/pkg/pathmerge"
	"github.com/arthur-debert/omni/pkg/paths"
	"github.com/arthur-debert/omni/pkg/types"
	"github.com/arthur-debert/omni/pkg/up"
	"github.com/arthur-debert/omni/pkg/userconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newDirectionCmd creates the up or down command; both share one flow
func newDirectionCmd(app *App, direction types.Direction) *cobra.Command {
	var (
		mode     pathmerge.Mode
		complete bool
	)

	short := MsgUpShort
	if direction == types.DirectionDown {
		short = MsgDownShort
	}

	cmd := &cobra.Command{
		Use:     direction.String(),
		Short:   short,
		Long:    MsgUpLong,
		Example: MsgUpExample,
		// Arguments are rejected in RunE so that --complete works regardless
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if complete {
				printCompletion(cmd)
				return nil
			}

			if len(args) > 0 {
				return errors.New(errors.ErrTooManyArgs, MsgErrTooManyArgs).
					WithDetail("args", args)
			}

			if !cmd.Flags().Changed(FlagUpdateUserConfig) && app.settings != nil {
				def, err := pathmerge.ParseMode(app.settings.UpdateUserConfig)
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidFlag, MsgErrInvalidMode, "OMNI_UPDATE_USER_CONFIG", app.settings.UpdateUserConfig)
				}
				mode = def
			}

			return app.run(cmd.Context(), direction, mode)
		},
	}

	flags := cmd.Flags()
	flags.Var(pathmerge.NewModeFlag(&mode, pathmerge.ModeNo), FlagUpdateUserConfig, MsgFlagUpdateUserConfig)
	flags.Lookup(FlagUpdateUserConfig).NoOptDefVal = string(pathmerge.ModeAsk)
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == FlagHandlePath {
			name = FlagUpdateUserConfig
		}
		return pflag.NormalizedName(name)
	})

	flags.BoolVar(&complete, FlagComplete, false, "")
	_ = flags.MarkHidden(FlagComplete)

	return cmd
}

// run executes the up configuration, then reconciles path contributions
func (a *App) run(ctx context.Context, direction types.Direction, mode pathmerge.Mode) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.GetLogger("cmd." + direction.String())
	render := a.renderer()

	root, err := paths.FindRepoRoot("")
	if err != nil {
		return err
	}
	logger.Debug().Str("root", root).Msg("Repository root found")

	cfg, err := config.LoadRepoConfig(root)
	if err != nil {
		return err
	}

	rawUp, shouldHandleUp := cfg.Up()

	var contribution pathmerge.Contribution
	if mode != pathmerge.ModeNo {
		contribution, err = cfg.Path()
		if err != nil {
			return err
		}
	}
	shouldUpdateUserConfig := mode != pathmerge.ModeNo && !contribution.Empty()

	if !shouldHandleUp && !shouldUpdateUserConfig {
		render.Messagef(direction.String(), MsgNothingToDo, render.Italic("up"))
		return nil
	}

	if shouldHandleUp {
		reg, err := a.NewRegistry()
		if err != nil {
			return err
		}

		// Every operation is validated before the first one runs
		ops, err := up.Prepare(reg, rawUp)
		if err != nil {
			return err
		}

		report, err := up.NewExecutor(up.Options{Root: root, Operations: ops}).Run(ctx, direction)
		if err != nil {
			return err
		}
		if report.Stopped {
			logger.Info().Msgf(MsgStopped, report.StoppedAt, direction)
		}
	}

	if shouldUpdateUserConfig {
		reconciler := &pathmerge.Reconciler{
			Store:    userconfig.NewStore(a.settings.UserConfigFile),
			Prompter: a.prompter(),
			Out:      a.Err,
		}
		outcome, err := reconciler.Reconcile(ctx, direction, contribution, mode == pathmerge.ModeYes)
		if err != nil {
			return err
		}
		logger.Debug().Str("outcome", outcome.String()).Msg("User configuration reconciled")
	}

	return nil
}
