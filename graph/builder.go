package graph

import (
	"fmt"

	"github.com/hupe1980/agentgraph/core"
)

// Builder accumulates nodes and edges and compiles them into an immutable
// Graph. A Builder is single-use and not safe for concurrent mutation; build
// the graph once at startup and share the compiled result instead.
type Builder struct {
	registry *Registry
	edges    map[core.NodeID]Edge
	entry    core.NodeID
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		registry: NewRegistry(),
		edges:    make(map[core.NodeID]Edge),
	}
}

// AddNode registers a node executor under id.
func (b *Builder) AddNode(id core.NodeID, ex core.Executor) error {
	if id == "" {
		return fmt.Errorf("node id cannot be empty")
	}
	if id == core.End {
		return fmt.Errorf("node id %q is reserved for the terminal target", string(core.End))
	}
	return b.registry.Register(id, ex)
}

// AddEdge declares the unconditional transition from -> to. Each node may
// carry at most one outgoing edge definition.
func (b *Builder) AddEdge(from, to core.NodeID) error {
	return b.addEdge(Edge{From: from, To: to})
}

// AddConditionalEdge declares decision-driven routing out of from. The
// Conditional's allowed targets, fallback rules and default are validated at
// compile time.
func (b *Builder) AddConditionalEdge(from core.NodeID, cond Conditional) error {
	return b.addEdge(Edge{From: from, Cond: &cond})
}

func (b *Builder) addEdge(e Edge) error {
	if _, exists := b.edges[e.From]; exists {
		return fmt.Errorf("node %q already has an outgoing edge", string(e.From))
	}
	b.edges[e.From] = e
	return nil
}

// SetEntry declares the node a run starts at.
func (b *Builder) SetEntry(id core.NodeID) { b.entry = id }

// Compile validates the accumulated definition and freezes it into a Graph.
// Validation checks, in order: the entry exists, every edge source exists,
// every edge target is a registered node or End, conditional edges carry a
// decider and an allowed default, and every node is reachable from the entry
// (conditional edges are treated as the set of their possible traversals).
// It fails with a ValidationError naming the violated rule; no partially
// valid graph is ever returned.
func (b *Builder) Compile() (*Graph, error) {
	if !b.registry.Has(b.entry) {
		return nil, validationErrorf(RuleEntryExists, "entry node %q is not registered", string(b.entry))
	}
	for from, e := range b.edges {
		if !b.registry.Has(from) {
			return nil, validationErrorf(RuleEdgeSourceExists, "edge source %q is not registered", string(from))
		}
		for _, t := range e.targets() {
			if t == core.End {
				continue
			}
			if !b.registry.Has(t) {
				return nil, validationErrorf(RuleTargetClosure, "edge from %q targets unknown node %q", string(from), string(t))
			}
		}
		if e.Cond != nil {
			if e.Cond.Decide == nil {
				return nil, validationErrorf(RuleDeciderPresent, "conditional edge from %q has no decision capability", string(from))
			}
			if !e.Cond.AllowsTarget(e.Cond.Default) {
				return nil, validationErrorf(RuleDefaultAllowed, "conditional edge from %q declares default %q outside its allowed targets", string(from), string(e.Cond.Default))
			}
		}
	}
	if err := b.checkReachability(); err != nil {
		return nil, err
	}

	nodes := make(map[core.NodeID]core.Executor, len(b.registry.order))
	for _, id := range b.registry.IDs() {
		ex, _ := b.registry.Get(id)
		nodes[id] = ex
	}
	edges := make(map[core.NodeID]Edge, len(b.edges))
	for from, e := range b.edges {
		edges[from] = e
	}
	return &Graph{nodes: nodes, order: b.registry.IDs(), edges: edges, entry: b.entry}, nil
}

// checkReachability walks the edge table from the entry treating conditional
// edges as the set of their possible traversals.
func (b *Builder) checkReachability() error {
	visited := map[core.NodeID]bool{}
	queue := []core.NodeID{b.entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == core.End || visited[id] {
			continue
		}
		visited[id] = true
		if e, ok := b.edges[id]; ok {
			queue = append(queue, e.targets()...)
		}
	}
	for _, id := range b.registry.IDs() {
		if !visited[id] {
			return validationErrorf(RuleReachability, "node %q is not reachable from entry %q", string(id), string(b.entry))
		}
	}
	return nil
}
