package omni

import (
	"fmt"

	"github.com/arthur-debert/omni/internal/version"
	"github.com/arthur-debert/omni/pkg/config"
	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/arthur-debert/omni/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(app *App) *cobra.Command {
	app.withDefaults()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "omni",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			app.settings = settings

			logging.Setup(logging.Options{
				Verbosity: verbosity,
				LogFile:   settings.LogFile,
				NoColor:   settings.NoColor,
				Console:   app.Err,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetIn(app.In)
	rootCmd.SetOut(app.Out)
	rootCmd.SetErr(app.Err)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidFlag, "invalid option")
	})

	rootCmd.AddCommand(newDirectionCmd(app, types.DirectionUp))
	rootCmd.AddCommand(newDirectionCmd(app, types.DirectionDown))

	return rootCmd
}

// Execute runs the command line args and returns the process exit status.
// Errors are reported on app.Err as "omni: <command>: <message>".
func Execute(app *App, args []string) int {
	rootCmd := NewRootCmd(app)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	dir := ""
	if cmd != nil && cmd != rootCmd {
		dir = cmd.Name()
	}

	log.Debug().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Interface("details", errors.GetErrorDetails(err)).
		Msg("Command failed")
	app.renderer().Errorf(dir, "%s", errors.UserMessage(err))
	return 1
}

func printCompletion(cmd *cobra.Command) {
	for _, flag := range completionFlags {
		fmt.Fprintln(cmd.OutOrStdout(), flag)
	}
}
