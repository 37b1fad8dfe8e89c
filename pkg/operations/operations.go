package operations

import (
	"io"
	"os"
	"reflect"

	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/arthur-debert/omni/pkg/registry"
	"github.com/arthur-debert/omni/pkg/runner"
	"github.com/arthur-debert/omni/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// Deps are the collaborators shared by all built-in operations
type Deps struct {
	Runner   runner.Runner
	Reporter *Reporter
	Logger   zerolog.Logger
}

// DefaultDeps runs real commands and reports to stderr
func DefaultDeps() Deps {
	return Deps{
		Runner:   runner.NewExec(),
		Reporter: NewReporter(os.Stderr),
		Logger:   logging.GetLogger("operations"),
	}
}

// Register adds every built-in operation type to reg
func Register(reg *registry.Registry, deps Deps) error {
	if deps.Reporter == nil {
		deps.Reporter = NewReporter(io.Discard)
	}

	constructors := map[string]types.Constructor{
		CustomType:   newCustom(deps),
		HomebrewType: newHomebrew(deps),
		GoType:       newGo(deps),
		BundlerType:  newBundler(deps),
		RubyType:     newRuby(deps),
	}
	for name, ctor := range constructors {
		if err := reg.Register(name, ctor); err != nil {
			return err
		}
	}
	return nil
}

// decodeConfig decodes an operation configuration into target.
// Keys the operation does not use are kept in its config and only logged.
func decodeConfig(deps Deps, opType string, config map[string]interface{}, target interface{}, hooks ...mapstructure.DecodeHookFunc) error {
	hooks = append(hooks, mapstructure.StringToSliceHookFunc(","))
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		Metadata:         &md,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(config); err != nil {
		return err
	}
	if len(md.Unused) > 0 {
		deps.Logger.Debug().
			Str("operation", opType).
			Strs("keys", md.Unused).
			Msg("Ignoring unknown configuration keys")
	}
	return nil
}

// stringToStructHook lets a bare string stand for a struct, built by fn
func stringToStructHook[T any](fn func(string) T) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		var zero T
		if f.Kind() != reflect.String || t != reflect.TypeOf(zero) {
			return data, nil
		}
		return fn(reflect.ValueOf(data).String()), nil
	}
}

// Reporter prints one line per operation outcome for the user
type Reporter struct {
	success *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		success: pterm.Success.WithWriter(w),
		info:    pterm.Info.WithWriter(w),
		warning: pterm.Warning.WithWriter(w),
		failure: pterm.Error.WithWriter(w),
	}
}

// Success reports a completed step
func (r *Reporter) Success(op types.Operation, format string, args ...interface{}) {
	r.success.Printfln(prefixed(op, format), args...)
}

// Info reports a step that needed nothing done
func (r *Reporter) Info(op types.Operation, format string, args ...interface{}) {
	r.info.Printfln(prefixed(op, format), args...)
}

// Warning reports something the user should know about
func (r *Reporter) Warning(op types.Operation, format string, args ...interface{}) {
	r.warning.Printfln(prefixed(op, format), args...)
}

// Failure reports the cause of a Stop
func (r *Reporter) Failure(op types.Operation, format string, args ...interface{}) {
	r.failure.Printfln(prefixed(op, format), args...)
}

func prefixed(op types.Operation, format string) string {
	return op.Type() + ": " + format
}

// fail logs and reports err, then returns types.Stop
func fail(deps Deps, op types.Operation, err error, what string) types.Result {
	deps.Logger.Error().
		Err(err).
		Str("type", op.Type()).
		Int("index", op.Index()).
		Msg(what)
	deps.Reporter.Failure(op, "%s: %v", what, err)
	return types.Stop
}
