package graph

import (
	"fmt"

	"github.com/hupe1980/agentgraph/core"
)

// DuplicateNodeError reports an attempt to register a node id twice.
type DuplicateNodeError struct {
	ID core.NodeID
}

// Error implements the error interface.
func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q already registered", string(e.ID))
}

// UnknownNodeError reports a lookup of an unregistered node id.
type UnknownNodeError struct {
	ID core.NodeID
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("node %q not registered", string(e.ID))
}

// ValidationRule names the specific rule a graph definition violated.
type ValidationRule string

const (
	// RuleEntryExists requires the entry node to be registered.
	RuleEntryExists ValidationRule = "entry-exists"
	// RuleEdgeSourceExists requires every edge source to be registered.
	RuleEdgeSourceExists ValidationRule = "edge-source-exists"
	// RuleTargetClosure requires every edge target and allowed target to be
	// a registered node or End.
	RuleTargetClosure ValidationRule = "target-closure"
	// RuleDefaultAllowed requires a conditional edge's fallback default to
	// be a member of its allowed-target set.
	RuleDefaultAllowed ValidationRule = "default-allowed"
	// RuleDeciderPresent requires a conditional edge to carry a decision
	// capability.
	RuleDeciderPresent ValidationRule = "decider-present"
	// RuleReachability requires every node to be reachable from the entry.
	RuleReachability ValidationRule = "reachability"
)

// ValidationError is the construction-time, fatal error returned by Compile.
// No partially valid graph is ever produced alongside it.
type ValidationError struct {
	Rule   ValidationRule
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("graph validation failed (%s): %s", e.Rule, e.Detail)
}

func validationErrorf(rule ValidationRule, format string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, Detail: fmt.Sprintf(format, args...)}
}
