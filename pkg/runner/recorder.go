package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/omni/pkg/errors"
)

// Recorder is a Runner that records commands instead of executing them.
// It is used by operation tests.
type Recorder struct {
	mu       sync.Mutex
	commands []string

	// Failures lists command lines (or prefixes ending in "*") that fail
	Failures []string
}

// NewRecorder creates a Recorder where the given command lines fail
func NewRecorder(failures ...string) *Recorder {
	return &Recorder{Failures: failures}
}

// Run implements Runner
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) error {
	line := r.record(dir, name, args)
	if r.fails(line) {
		return errors.Newf(errors.ErrCommandFailed, "command failed: %s", line)
	}
	return nil
}

// Succeeds implements Runner
func (r *Recorder) Succeeds(_ context.Context, dir, name string, args ...string) bool {
	return !r.fails(r.record(dir, name, args))
}

// Commands returns every recorded command line, in order
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}

func (r *Recorder) record(dir, name string, args []string) string {
	line := commandLine(name, args)
	r.mu.Lock()
	defer r.mu.Unlock()
	if dir != "" && dir != "." {
		r.commands = append(r.commands, fmt.Sprintf("(%s) %s", dir, line))
	} else {
		r.commands = append(r.commands, line)
	}
	return line
}

func (r *Recorder) fails(line string) bool {
	for _, f := range r.Failures {
		if prefix, ok := strings.CutSuffix(f, "*"); ok {
			if strings.HasPrefix(line, prefix) {
				return true
			}
			continue
		}
		if f == line {
			return true
		}
	}
	return false
}
