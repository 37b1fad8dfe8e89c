package types

// Result is the outcome of invoking an operation action.
//
// It is deliberately not a boolean: both ContinueSuccess and ContinueSkip
// let the pipeline proceed, only Stop halts it. The zero value is
// ContinueSkip, so an action that reports nothing does not stop anything.
type Result int

const (
	// ContinueSkip means the action had nothing to do
	ContinueSkip Result = iota

	// ContinueSuccess means the action completed
	ContinueSuccess

	// Stop halts the pipeline; remaining operations are not invoked.
	// This is a voluntary short-circuit, not an error.
	Stop
)

// Continue reports whether the pipeline should proceed to the next operation
func (r Result) Continue() bool {
	return r != Stop
}

func (r Result) String() string {
	switch r {
	case ContinueSuccess:
		return "success"
	case ContinueSkip:
		return "skip"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// ResultFromBool maps a success flag to ContinueSuccess or Stop
func ResultFromBool(ok bool) Result {
	if ok {
		return ContinueSuccess
	}
	return Stop
}
