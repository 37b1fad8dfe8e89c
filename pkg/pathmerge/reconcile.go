package pathmerge

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/arthur-debert/omni/pkg/prompt"
	"github.com/arthur-debert/omni/pkg/style"
	"github.com/arthur-debert/omni/pkg/types"
	"github.com/arthur-debert/omni/pkg/userconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// PathKey is the user configuration key holding the path section
const PathKey = "path"

// Outcome is what a reconciliation did to the user configuration
type Outcome int

const (
	// OutcomeSkipped means the direction never touches the user configuration
	OutcomeSkipped Outcome = iota
	// OutcomeUnchanged means the configuration already held the merge result
	OutcomeUnchanged
	// OutcomeApplied means the merge result was written
	OutcomeApplied
	// OutcomeDeclined means the user did not confirm the write
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeApplied:
		return "applied"
	case OutcomeDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// Updater is the locked read-modify-write access to the user configuration
type Updater interface {
	Update(fn userconfig.UpdateFunc) (bool, error)
}

// Reconciler merges a repository's path contribution into the user configuration
type Reconciler struct {
	Store    Updater
	Prompter prompt.Prompter

	// Out receives the merge preview; defaults to stderr
	Out io.Writer

	// Logger defaults to the "pathmerge" component logger
	Logger *zerolog.Logger
}

// Reconcile merges contribution into the stored path section.
// Nothing is written when the merge changes nothing, when direction is
// down, or when the user does not confirm. force skips the confirmation.
func (r *Reconciler) Reconcile(ctx context.Context, direction types.Direction, contribution Contribution, force bool) (Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !direction.Valid() {
		return OutcomeSkipped, errors.Newf(errors.ErrUnknownDirection, "unknown operation %s", direction)
	}

	logger := logging.GetLogger("pathmerge")
	if r.Logger != nil {
		logger = *r.Logger
	}

	// Paths are only ever added; down leaves them for the user to remove
	if direction == types.DirectionDown {
		logger.Debug().Msg("Path reconciliation skipped on down")
		return OutcomeSkipped, nil
	}

	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	render := style.NewRenderer(out)
	dir := direction.String()

	outcome := OutcomeUnchanged
	_, err := r.Store.Update(func(doc userconfig.Document) (bool, error) {
		previous := doc[PathKey]
		existing, err := FromValue(previous)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrUserConfig, "invalid path section in user configuration")
		}

		merged := Merge(existing, contribution)
		if Equal(merged, previous) {
			logger.Debug().Msg("User configuration already contains the repository paths")
			return false, nil
		}

		render.Messagef(dir, "The current repository is declaring paths for omni commands.")
		render.Messagef(dir, "The following paths are going to be set in your configuration:")
		render.Block(PathKey, dumpYAML(merged.ToMap()), render.Styles().Added)
		if !existing.Empty() {
			render.Messagef(dir, "Previous configuration contained:")
			render.Block(PathKey, dumpYAML(previous), render.Styles().Removed)
		}

		if !force {
			answer := r.Prompter.Confirm(ctx, "Do you want to continue?")
			logger.Debug().Str("answer", answer.String()).Msg("Path confirmation")
			if !answer.Proceed() {
				render.Messagef(dir, "Skipped handling path.")
				outcome = OutcomeDeclined
				return false, nil
			}
		}

		render.Messagef(dir, "Handled path.")
		doc[PathKey] = merged.ToMap()
		outcome = OutcomeApplied
		return true, nil
	})
	if err != nil {
		return OutcomeUnchanged, err
	}

	logger.Info().Str("outcome", outcome.String()).Msg("Path reconciliation finished")
	return outcome, nil
}

func dumpYAML(v interface{}) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	_ = enc.Close()
	return buf.String()
}
