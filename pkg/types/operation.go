package types

import (
	"context"
)

// Operation is the contract every operation type implements.
//
// Up and Down are independent actions; either may block on external
// tools. An action that fails is expected to report the cause itself and
// return Stop.
type Operation interface {
	// Type returns the canonical operation type name (e.g. "homebrew")
	Type() string

	// Index returns the position of the operation in the up configuration
	Index() int

	// Config returns the operation configuration as declared
	Config() map[string]interface{}

	// Up brings the operation's part of the environment up
	Up(ctx context.Context) Result

	// Down tears the operation's part of the environment down
	Down(ctx context.Context) Result
}

// Constructor builds an operation from its configuration and index.
//
// The product is returned as interface{} so that a registered constructor
// whose product does not satisfy Operation is detected at validation time
// rather than at compile time of the caller.
type Constructor func(config map[string]interface{}, index int) (interface{}, error)

// BaseOperation carries the descriptor fields shared by all operations.
// Embed it to satisfy Type, Index and Config.
type BaseOperation struct {
	OpType   string
	OpIndex  int
	OpConfig map[string]interface{}
}

// NewBaseOperation creates a BaseOperation, normalizing a nil config to an empty map
func NewBaseOperation(opType string, config map[string]interface{}, index int) BaseOperation {
	if config == nil {
		config = map[string]interface{}{}
	}
	return BaseOperation{OpType: opType, OpIndex: index, OpConfig: config}
}

func (b BaseOperation) Type() string                   { return b.OpType }
func (b BaseOperation) Index() int                     { return b.OpIndex }
func (b BaseOperation) Config() map[string]interface{} { return b.OpConfig }

// Act invokes the action of op matching direction.
// Callers must validate direction first; an unknown direction yields Stop.
func Act(ctx context.Context, op Operation, direction Direction) Result {
	switch direction {
	case DirectionUp:
		return op.Up(ctx)
	case DirectionDown:
		return op.Down(ctx)
	default:
		return Stop
	}
}
