package topology

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/graph"
)

// Team groups a mid-tier lead node with its specialist workers. The first
// member is the team's static fallback choice.
type Team struct {
	ID      core.NodeID
	Members []Worker
}

// HierarchicalOptions configures the Hierarchical preset.
type HierarchicalOptions struct {
	// Root is the id of the top-level node. Defaults to "root".
	Root core.NodeID
}

// Hierarchical builds the three-tier tree topology: a root node routes each
// request to one of a fixed set of team nodes; a team node invoked by the
// root delegates down to one of its workers; workers report back
// unconditionally to their team; a team node invoked by anything other than
// the root reports up unconditionally to the root, which then ends the run.
//
// Caller identity is read from the author tag of the most recent message –
// team nodes are small state machines keyed on it. A team invoked with an
// empty or ambiguous history is treated as having received a worker report
// and reports up.
func Hierarchical(decider core.Decider, teams []Team, optFns ...func(o *HierarchicalOptions)) (*graph.Graph, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("hierarchical topology requires at least one team")
	}
	for _, t := range teams {
		if len(t.Members) == 0 {
			return nil, fmt.Errorf("team %q has no members", string(t.ID))
		}
	}

	opts := HierarchicalOptions{Root: "root"}
	for _, fn := range optFns {
		fn(&opts)
	}

	teamIDs := make([]core.NodeID, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	b := graph.NewBuilder()
	if err := b.AddNode(opts.Root, rootExecutor(opts.Root, decider, teamIDs)); err != nil {
		return nil, err
	}
	if err := b.AddConditionalEdge(opts.Root, graph.Conditional{
		Decide:  NextHintDecider(),
		Targets: append(append([]core.NodeID{}, teamIDs...), core.End),
		Default: teamIDs[0],
	}); err != nil {
		return nil, err
	}

	for _, t := range teams {
		memberIDs := make([]core.NodeID, 0, len(t.Members))
		for _, m := range t.Members {
			memberIDs = append(memberIDs, m.ID)
		}
		if err := b.AddNode(t.ID, teamExecutor(t.ID, opts.Root, decider, memberIDs)); err != nil {
			return nil, err
		}
		if err := b.AddConditionalEdge(t.ID, graph.Conditional{
			Decide:  NextHintDecider(),
			Targets: append(append([]core.NodeID{}, memberIDs...), opts.Root),
			Default: opts.Root,
		}); err != nil {
			return nil, err
		}
		for _, m := range t.Members {
			if err := b.AddNode(m.ID, workerExecutor(m.ID, m.Actor)); err != nil {
				return nil, err
			}
			if err := b.AddEdge(m.ID, t.ID); err != nil {
				return nil, err
			}
		}
	}
	b.SetEntry(opts.Root)

	return b.Compile()
}

// rootExecutor assigns fresh requests to a team and ends the run once a team
// reports back up.
func rootExecutor(root core.NodeID, decider core.Decider, teamIDs []core.NodeID) core.Executor {
	return core.ExecutorFunc(func(ctx context.Context, st *core.State) (core.Result, error) {
		last, ok := st.Last()
		if ok && !last.Author.IsUser() {
			// A team reported back up; the request is done.
			return core.Result{NextHint: core.End}, nil
		}

		token, err := decider.Decide(ctx, st, teamIDs)
		if err != nil {
			return core.Result{}, &core.DecisionError{Err: err}
		}
		target, resolved := core.ResolveToken(token, teamIDs)
		if !resolved {
			target = teamIDs[0]
		}
		return core.Result{
			Messages: []core.Message{core.NewAgentMessage(root, fmt.Sprintf("assigning task to %s", string(target)))},
			NextHint: target,
		}, nil
	})
}

// teamExecutor delegates work downward when invoked by the root and reports
// upward otherwise.
func teamExecutor(team, root core.NodeID, decider core.Decider, memberIDs []core.NodeID) core.Executor {
	return core.ExecutorFunc(func(ctx context.Context, st *core.State) (core.Result, error) {
		last, ok := st.Last()
		if ok && last.Author.IsAgent(root) {
			token, err := decider.Decide(ctx, st, memberIDs)
			if err != nil {
				return core.Result{}, &core.DecisionError{Err: err}
			}
			target, resolved := core.ResolveToken(token, memberIDs)
			if !resolved {
				target = memberIDs[0]
			}
			return core.Result{
				Messages: []core.Message{core.NewAgentMessage(team, fmt.Sprintf("delegating to %s", string(target)))},
				NextHint: target,
			}, nil
		}

		// Worker report (or empty/ambiguous history): report up.
		return core.Result{
			Messages: []core.Message{core.NewAgentMessage(team, "task complete, reporting up")},
			NextHint: root,
		}, nil
	})
}
