package core

import (
	"context"
	"fmt"
)

// Executor is the unit of work bound to a graph node. It receives the shared
// state and returns a partial result; it must not retain the state beyond
// the call. Blocking work should respect ctx cancellation.
type Executor interface {
	Execute(ctx context.Context, st *State) (Result, error)
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(ctx context.Context, st *State) (Result, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, st *State) (Result, error) {
	return f(ctx, st)
}

// Decider is the external decision capability: given the state and the set
// of allowed targets it proposes the next node as a free-form token. The
// token is treated as untrusted and is normalized and checked by the
// engine's fallback policy. Implementations must not mutate the state.
type Decider interface {
	Decide(ctx context.Context, st *State, targets []NodeID) (string, error)
}

// DecideFunc adapts an ordinary function to the Decider interface.
type DecideFunc func(ctx context.Context, st *State, targets []NodeID) (string, error)

// Decide implements Decider.
func (f DecideFunc) Decide(ctx context.Context, st *State, targets []NodeID) (string, error) {
	return f(ctx, st, targets)
}

// Actor is the external action capability used by worker nodes: it performs
// the node's task over the conversation so far and returns the resulting
// text.
type Actor interface {
	Act(ctx context.Context, st *State) (string, error)
}

// ActorFunc adapts an ordinary function to the Actor interface.
type ActorFunc func(ctx context.Context, st *State) (string, error)

// Act implements Actor.
func (f ActorFunc) Act(ctx context.Context, st *State) (string, error) {
	return f(ctx, st)
}

// DecisionError wraps a failure of the decision capability. It aborts the
// current run; an out-of-set decision value is not a DecisionError (the
// fallback policy handles that case).
type DecisionError struct {
	Err error
}

// Error implements the error interface.
func (e *DecisionError) Error() string {
	return fmt.Sprintf("decision capability failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecisionError) Unwrap() error { return e.Err }

// ActionError wraps a failure of the action capability. It aborts the
// current run.
type ActionError struct {
	Err error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	return fmt.Sprintf("action capability failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ActionError) Unwrap() error { return e.Err }
