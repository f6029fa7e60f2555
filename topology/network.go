package topology

import (
	"context"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/graph"
)

// NetworkOptions configures the Network preset.
type NetworkOptions struct {
	// Entry is the node a run starts at. Defaults to the first node.
	Entry core.NodeID
}

// Network builds the full-mesh topology: every node may route to any node
// (itself included) or end the run. There is no separate routing oracle –
// each node's action output carries its routing intent as an in-band marker
// ("[ROUTE:target]"), which is stripped into the structured next-hint side
// channel before the message is stored. Output without a marker, or with a
// marker naming an unknown node, ends the run.
func Network(nodes []Worker, optFns ...func(o *NetworkOptions)) (*graph.Graph, error) {
	if len(nodes) == 0 {
		return nil, &graph.ValidationError{Rule: graph.RuleEntryExists, Detail: "network topology requires at least one node"}
	}

	opts := NetworkOptions{Entry: nodes[0].ID}
	for _, fn := range optFns {
		fn(&opts)
	}

	ids := make([]core.NodeID, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	targets := append(append([]core.NodeID{}, ids...), core.End)

	b := graph.NewBuilder()
	for _, n := range nodes {
		if err := b.AddNode(n.ID, networkExecutor(n.ID, n.Actor)); err != nil {
			return nil, err
		}
	}
	for _, n := range nodes {
		if err := b.AddConditionalEdge(n.ID, graph.Conditional{
			Decide:  NextHintDecider(),
			Targets: targets,
			Default: core.End,
		}); err != nil {
			return nil, err
		}
	}
	b.SetEntry(opts.Entry)

	return b.Compile()
}

// networkExecutor runs the node's action capability, splits the route marker
// out of its output and stores the cleaned content.
func networkExecutor(id core.NodeID, actor core.Actor) core.Executor {
	return core.ExecutorFunc(func(ctx context.Context, st *core.State) (core.Result, error) {
		out, err := actor.Act(ctx, st)
		if err != nil {
			return core.Result{}, &core.ActionError{Err: err}
		}
		target, cleaned := ParseRouteMarker(out)
		// No marker means the node considers the task done. The hint must
		// be overwritten every step so a predecessor's route cannot leak.
		hint := core.End
		if target != "" {
			hint = core.NodeID(target)
		}
		return core.Result{
			Messages: []core.Message{core.NewAgentMessage(id, cleaned)},
			NextHint: hint,
		}, nil
	})
}
