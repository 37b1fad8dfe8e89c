package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/arthur-debert/omni/pkg/types"
)

// Call is one recorded action invocation
type Call struct {
	Type      string
	Index     int
	Direction types.Direction
}

func (c Call) String() string {
	return fmt.Sprintf("%s#%d.%s", c.Type, c.Index, c.Direction)
}

// Journal records action invocations across operations, in order
type Journal struct {
	mu    sync.Mutex
	calls []Call

	// Results scripts the outcome per "type#index.direction" key;
	// unscripted calls return types.ContinueSuccess.
	Results map[string]types.Result
}

// NewJournal creates an empty journal
func NewJournal() *Journal {
	return &Journal{Results: map[string]types.Result{}}
}

// Script sets the result returned when the given operation runs in direction
func (j *Journal) Script(opType string, index int, direction types.Direction, result types.Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Results[Call{Type: opType, Index: index, Direction: direction}.String()] = result
}

func (j *Journal) record(c Call) types.Result {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = append(j.calls, c)
	if r, ok := j.Results[c.String()]; ok {
		return r
	}
	return types.ContinueSuccess
}

// Calls returns a copy of the recorded calls
func (j *Journal) Calls() []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Call, len(j.calls))
	copy(out, j.calls)
	return out
}

// Keys returns the recorded calls rendered as "type#index.direction"
func (j *Journal) Keys() []string {
	calls := j.Calls()
	keys := make([]string, len(calls))
	for i, c := range calls {
		keys[i] = c.String()
	}
	return keys
}

// Indexes returns the operation index of each recorded call
func (j *Journal) Indexes() []int {
	calls := j.Calls()
	idx := make([]int, len(calls))
	for i, c := range calls {
		idx[i] = c.Index
	}
	return idx
}

// RecordingOperation is an operation that records its invocations in a Journal
type RecordingOperation struct {
	types.BaseOperation
	journal *Journal
}

// Up records the call and returns the scripted result
func (r *RecordingOperation) Up(context.Context) types.Result {
	return r.journal.record(Call{Type: r.Type(), Index: r.Index(), Direction: types.DirectionUp})
}

// Down records the call and returns the scripted result
func (r *RecordingOperation) Down(context.Context) types.Result {
	return r.journal.record(Call{Type: r.Type(), Index: r.Index(), Direction: types.DirectionDown})
}

// RecordingConstructor returns a constructor producing RecordingOperations of opType
func RecordingConstructor(j *Journal, opType string) types.Constructor {
	return func(config map[string]interface{}, index int) (interface{}, error) {
		return &RecordingOperation{
			BaseOperation: types.NewBaseOperation(opType, config, index),
			journal:       j,
		}, nil
	}
}
