package graph

import "github.com/hupe1980/agentgraph/core"

// KeywordRule is one deterministic fallback rule: if any keyword occurs in
// the originating message content, route to Target. Rules are evaluated in
// order; the first match wins. Keyword matching is case-insensitive.
type KeywordRule struct {
	Keywords []string
	Target   core.NodeID
}

// Conditional describes decision-driven routing out of a node. The decision
// capability proposes a target; its output is normalized and checked against
// Targets by the engine. When the proposal does not resolve, the two-tier
// fallback applies: Rules first, then Default. Default must be a member of
// Targets.
type Conditional struct {
	Decide  core.Decider
	Targets []core.NodeID
	Rules   []KeywordRule
	Default core.NodeID
}

// AllowsTarget reports whether id is in the allowed-target set.
func (c *Conditional) AllowsTarget(id core.NodeID) bool {
	for _, t := range c.Targets {
		if t == id {
			return true
		}
	}
	return false
}

// Edge is the single outgoing transition rule of a node. When Cond is nil
// the edge is unconditional and To is the fixed next node; otherwise Cond
// governs routing and To is unused.
type Edge struct {
	From core.NodeID
	To   core.NodeID
	Cond *Conditional
}

// IsConditional reports whether the edge routes through a decision.
func (e Edge) IsConditional() bool { return e.Cond != nil }

// targets returns every node id this edge may transition to, End included.
func (e Edge) targets() []core.NodeID {
	if e.Cond == nil {
		return []core.NodeID{e.To}
	}
	return e.Cond.Targets
}
