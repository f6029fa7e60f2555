package topology

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/graph"
)

// Worker pairs a node id with the action capability executing its task.
type Worker struct {
	ID    core.NodeID
	Actor core.Actor
}

// SupervisorOptions configures the Supervisor preset.
type SupervisorOptions struct {
	// Hub is the id of the supervising node. Defaults to "supervisor".
	Hub core.NodeID

	// Rules are the deterministic keyword fallback rules applied when the
	// hub's routing decision does not resolve. Optional.
	Rules []graph.KeywordRule

	// Default is the static fallback target. Defaults to the first worker.
	Default core.NodeID
}

// DefaultSupervisorRules returns the stock keyword rules for the classic
// chat/coder/searcher worker trio: search-flavoured requests go to the
// searcher, computation-flavoured requests to the coder.
func DefaultSupervisorRules() []graph.KeywordRule {
	return []graph.KeywordRule{
		{
			Keywords: []string{"search", "find", "latest", "news", "google", "搜索", "查找", "上网", "最新", "新闻"},
			Target:   "searcher",
		},
		{
			Keywords: []string{"code", "python", "chart", "plot", "calculate", "draw", "代码", "编程", "计算", "图表", "画图"},
			Target:   "coder",
		},
	}
}

// Supervisor builds the star topology: one hub node with a conditional edge
// over the full worker set plus the terminal target, and an unconditional
// edge from every worker back to the hub.
//
// The hub keys its behavior on the author of the most recent message:
//
//   - Fresh user turn: the decision capability routes the request to a
//     worker. The raw token is surfaced through the hint side channel so
//     the edge-level fallback (keyword rules, then default) can salvage an
//     unresolvable choice. The hub also appends an assignment note.
//   - Worker report: the decision capability judges conversation adequacy
//     over the workers plus "FINISH"; anything that does not resolve ends
//     the run.
func Supervisor(decider core.Decider, workers []Worker, optFns ...func(o *SupervisorOptions)) (*graph.Graph, error) {
	if len(workers) == 0 {
		return nil, fmt.Errorf("supervisor requires at least one worker")
	}

	opts := SupervisorOptions{
		Hub:     "supervisor",
		Default: workers[0].ID,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	members := make([]core.NodeID, 0, len(workers))
	for _, w := range workers {
		members = append(members, w.ID)
	}
	reviewTargets := append(append([]core.NodeID{}, members...), core.End)

	b := graph.NewBuilder()
	if err := b.AddNode(opts.Hub, hubExecutor(opts.Hub, decider, members, reviewTargets)); err != nil {
		return nil, err
	}
	for _, w := range workers {
		if err := b.AddNode(w.ID, workerExecutor(w.ID, w.Actor)); err != nil {
			return nil, err
		}
		if err := b.AddEdge(w.ID, opts.Hub); err != nil {
			return nil, err
		}
	}
	if err := b.AddConditionalEdge(opts.Hub, graph.Conditional{
		Decide:  NextHintDecider(),
		Targets: reviewTargets,
		Rules:   opts.Rules,
		Default: opts.Default,
	}); err != nil {
		return nil, err
	}
	b.SetEntry(opts.Hub)

	return b.Compile()
}

func hubExecutor(hub core.NodeID, decider core.Decider, members, reviewTargets []core.NodeID) core.Executor {
	return core.ExecutorFunc(func(ctx context.Context, st *core.State) (core.Result, error) {
		last, ok := st.Last()
		if !ok || last.Author.IsUser() {
			// Fresh user turn: pick a worker for the request.
			token, err := decider.Decide(ctx, st, members)
			if err != nil {
				return core.Result{}, &core.DecisionError{Err: err}
			}
			note := "dispatching request to a worker"
			hint := core.NodeID(token)
			if target, resolved := core.ResolveToken(token, members); resolved {
				note = fmt.Sprintf("dispatching request to %s", string(target))
				hint = target
			}
			return core.Result{
				Messages: []core.Message{core.NewAgentMessage(hub, note)},
				NextHint: hint,
			}, nil
		}

		// Worker report: judge whether the conversation is adequate.
		token, err := decider.Decide(ctx, st, reviewTargets)
		if err != nil {
			return core.Result{}, &core.DecisionError{Err: err}
		}
		target, resolved := core.ResolveToken(token, reviewTargets)
		if !resolved {
			target = core.End
		}
		return core.Result{NextHint: target}, nil
	})
}

// workerExecutor runs the worker's action capability and appends its report
// authored by the worker node.
func workerExecutor(id core.NodeID, actor core.Actor) core.Executor {
	return core.ExecutorFunc(func(ctx context.Context, st *core.State) (core.Result, error) {
		out, err := actor.Act(ctx, st)
		if err != nil {
			return core.Result{}, &core.ActionError{Err: err}
		}
		return core.Result{Messages: []core.Message{core.NewAgentMessage(id, out)}}, nil
	})
}
