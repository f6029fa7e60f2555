package graph

import "github.com/hupe1980/agentgraph/core"

// Graph is a compiled, immutable executable graph. It is produced exclusively
// by Builder.Compile and is safe to share read-only across concurrent runs.
// No registration is possible after compilation.
type Graph struct {
	nodes map[core.NodeID]core.Executor
	order []core.NodeID
	edges map[core.NodeID]Edge
	entry core.NodeID
}

// Entry returns the node a run starts at.
func (g *Graph) Entry() core.NodeID { return g.entry }

// Node returns the executor bound to id, failing with UnknownNodeError if
// the id is absent.
func (g *Graph) Node(id core.NodeID) (core.Executor, error) {
	ex, ok := g.nodes[id]
	if !ok {
		return nil, &UnknownNodeError{ID: id}
	}
	return ex, nil
}

// Edge returns the outgoing edge of id, if one was declared.
func (g *Graph) Edge(id core.NodeID) (Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns all node ids in registration order.
func (g *Graph) Nodes() []core.NodeID {
	out := make([]core.NodeID, len(g.order))
	copy(out, g.order)
	return out
}
