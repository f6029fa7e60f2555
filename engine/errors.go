package engine

import (
	"fmt"

	"github.com/hupe1980/agentgraph/core"
)

// NodeExecutionError reports a node executor failure. The run is aborted
// fail-fast: none of the failing step's messages are committed.
type NodeExecutionError struct {
	Node core.NodeID
	Err  error
}

// Error implements the error interface.
func (e *NodeExecutionError) Error() string {
	return fmt.Sprintf("node %q execution failed: %v", string(e.Node), e.Err)
}

// Unwrap returns the underlying cause.
func (e *NodeExecutionError) Unwrap() error { return e.Err }

// StepBudgetExceededError reports a run that consumed its entire step budget
// without reaching the terminal target. It usually signals a routing cycle.
type StepBudgetExceededError struct {
	MaxSteps int
}

// Error implements the error interface.
func (e *StepBudgetExceededError) Error() string {
	return fmt.Sprintf("step budget of %d exceeded without reaching terminal target", e.MaxSteps)
}

// MissingEdgeError reports a node without an outgoing edge encountered at
// run time.
type MissingEdgeError struct {
	Node core.NodeID
}

// Error implements the error interface.
func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("node %q has no outgoing edge", string(e.Node))
}
