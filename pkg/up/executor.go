package up

import (
	"context"
	"os"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/arthur-debert/omni/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// Root is the directory operations run from (the repository root)
	Root string

	// Operations in declaration order, as returned by Prepare
	Operations []types.Operation

	// Logger defaults to the "up.executor" component logger
	Logger *zerolog.Logger
}

// Executor runs prepared operations in one direction
type Executor struct {
	root       string
	operations []types.Operation
	logger     zerolog.Logger
}

// Report describes what a run did
type Report struct {
	Direction types.Direction

	// Visited holds the index of every invoked operation, in invocation order
	Visited []int

	// Results holds the outcome of each invoked operation, parallel to Visited
	Results []types.Result

	// Stopped is true when an operation returned types.Stop
	Stopped bool

	// StoppedAt is the index of the operation that stopped the run, or -1
	StoppedAt int
}

// NewExecutor creates a new executor instance
func NewExecutor(opts Options) *Executor {
	logger := logging.GetLogger("up.executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Executor{
		root:       opts.Root,
		operations: opts.Operations,
		logger:     logger,
	}
}

// Order returns the operations in the order direction executes them.
// The executor's own slice is never reordered.
func (e *Executor) Order(direction types.Direction) []types.Operation {
	ordered := make([]types.Operation, len(e.operations))
	copy(ordered, e.operations)

	if direction == types.DirectionDown {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}
	return ordered
}

// Run invokes every operation for direction from the root directory,
// one at a time, until one returns types.Stop.
//
// A Stop is not an error: Run returns normally with Report.Stopped set.
// The working directory is restored before Run returns.
func (e *Executor) Run(ctx context.Context, direction types.Direction) (report Report, err error) {
	report = Report{Direction: direction, StoppedAt: -1}

	if !direction.Valid() {
		return report, errors.Newf(errors.ErrUnknownDirection, "unknown operation %s", direction).
			WithDetail("direction", string(direction))
	}

	restore, err := chdir(e.root)
	if err != nil {
		return report, err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	done := logging.LogOperationStart(e.logger, string(direction))
	defer done()

	for _, op := range e.Order(direction) {
		result := types.Act(ctx, op, direction)

		report.Visited = append(report.Visited, op.Index())
		report.Results = append(report.Results, result)

		e.logger.Debug().
			Str("type", op.Type()).
			Int("index", op.Index()).
			Str("direction", string(direction)).
			Str("result", result.String()).
			Msg("Operation finished")

		if !result.Continue() {
			report.Stopped = true
			report.StoppedAt = op.Index()
			e.logger.Info().
				Str("type", op.Type()).
				Int("index", op.Index()).
				Msg("Operation requested stop, skipping remaining operations")
			break
		}
	}

	return report, nil
}

// chdir switches to dir and returns a function restoring the previous
// working directory. An empty dir leaves the working directory alone.
func chdir(dir string) (func() error, error) {
	noop := func() error { return nil }
	if dir == "" {
		return noop, nil
	}

	previous, err := os.Getwd()
	if err != nil {
		return noop, errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
	}
	if err := os.Chdir(dir); err != nil {
		return noop, errors.Wrapf(err, errors.ErrInternal, "failed to change directory to %s", dir)
	}

	return func() error {
		if err := os.Chdir(previous); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to restore directory %s", previous)
		}
		return nil
	}, nil
}
