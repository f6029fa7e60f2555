package topology

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptDecider replays a fixed token sequence and records the target set of
// every call.
type scriptDecider struct {
	tokens []string
	calls  [][]core.NodeID
	i      int
}

func (d *scriptDecider) Decide(_ context.Context, _ *core.State, targets []core.NodeID) (string, error) {
	d.calls = append(d.calls, append([]core.NodeID{}, targets...))
	token := d.tokens[len(d.tokens)-1]
	if d.i < len(d.tokens) {
		token = d.tokens[d.i]
		d.i++
	}
	return token, nil
}

func fixedActor(out string) core.Actor {
	return core.ActorFunc(func(ctx context.Context, st *core.State) (string, error) {
		return out, nil
	})
}

func TestSupervisorRoundTrip(t *testing.T) {
	decider := &scriptDecider{tokens: []string{"coder", "FINISH"}}
	g, err := Supervisor(decider, []Worker{
		{ID: "searcher", Actor: fixedActor("search results")},
		{ID: "coder", Actor: fixedActor("code done")},
	}, func(o *SupervisorOptions) {
		o.Rules = DefaultSupervisorRules()
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("write a quicksort"),
	}))
	require.NoError(t, err)

	msgs := st.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, msgs[0].Author.IsUser())
	assert.True(t, msgs[1].Author.IsAgent("supervisor"))
	assert.Equal(t, "dispatching request to coder", msgs[1].Content)
	assert.True(t, msgs[2].Author.IsAgent("coder"))
	assert.Equal(t, "code done", msgs[2].Content)

	// First decision is over the workers only, the review decision includes
	// the terminal target.
	require.Len(t, decider.calls, 2)
	assert.Equal(t, []core.NodeID{"searcher", "coder"}, decider.calls[0])
	assert.Equal(t, []core.NodeID{"searcher", "coder", core.End}, decider.calls[1])
}

func TestSupervisorUnresolvedReviewEndsRun(t *testing.T) {
	decider := &scriptDecider{tokens: []string{"searcher", "keep going please"}}
	g, err := Supervisor(decider, []Worker{
		{ID: "searcher", Actor: fixedActor("search results")},
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("find the latest news"),
	}))
	require.NoError(t, err)

	// An out-of-set review verdict ends the run without another dispatch.
	last, ok := st.Last()
	require.True(t, ok)
	assert.True(t, last.Author.IsAgent("searcher"))
	assert.Equal(t, 3, st.Len())
}

func TestSupervisorKeywordFallbackOnBadDispatch(t *testing.T) {
	decider := &scriptDecider{tokens: []string{"the poet agent", "FINISH"}}
	g, err := Supervisor(decider, []Worker{
		{ID: "searcher", Actor: fixedActor("search results")},
		{ID: "coder", Actor: fixedActor("code done")},
	}, func(o *SupervisorOptions) {
		o.Rules = DefaultSupervisorRules()
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("please draw a chart of the data"),
	}))
	require.NoError(t, err)

	// The unresolvable dispatch token falls through to the keyword rules,
	// which route the chart request to the coder.
	msgs := st.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, msgs[2].Author.IsAgent("coder"))
}

func TestSupervisorDefaultFallback(t *testing.T) {
	decider := &scriptDecider{tokens: []string{"nonsense", "FINISH"}}
	g, err := Supervisor(decider, []Worker{
		{ID: "chat", Actor: fixedActor("hi there")},
		{ID: "coder", Actor: fixedActor("code done")},
	}, func(o *SupervisorOptions) {
		o.Default = "chat"
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("good morning"),
	}))
	require.NoError(t, err)

	last, ok := st.Last()
	require.True(t, ok)
	assert.True(t, last.Author.IsAgent("chat"))
}

func TestSupervisorWorkerActionError(t *testing.T) {
	cause := errors.New("tool offline")
	decider := &scriptDecider{tokens: []string{"searcher"}}
	g, err := Supervisor(decider, []Worker{
		{ID: "searcher", Actor: core.ActorFunc(func(ctx context.Context, st *core.State) (string, error) {
			return "", cause
		})},
	})
	require.NoError(t, err)

	_, err = engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("find something"),
	}))

	var aerr *core.ActionError
	require.True(t, errors.As(err, &aerr))
	assert.ErrorIs(t, err, cause)
}

func TestSupervisorRequiresWorkers(t *testing.T) {
	_, err := Supervisor(&scriptDecider{tokens: []string{""}}, nil)
	assert.Error(t, err)
}

func TestHierarchicalRoundTrip(t *testing.T) {
	decider := &scriptDecider{tokens: []string{"execution_team", "tester"}}
	g, err := Hierarchical(decider, []Team{
		{ID: "research_team", Members: []Worker{
			{ID: "analyst", Actor: fixedActor("analysis")},
		}},
		{ID: "execution_team", Members: []Worker{
			{ID: "builder", Actor: fixedActor("built")},
			{ID: "tester", Actor: fixedActor("all tests green")},
		}},
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("verify the build"),
	}))
	require.NoError(t, err)

	msgs := st.Messages()
	require.Len(t, msgs, 5)
	assert.True(t, msgs[1].Author.IsAgent("root"))
	assert.Equal(t, "assigning task to execution_team", msgs[1].Content)
	assert.True(t, msgs[2].Author.IsAgent("execution_team"))
	assert.Equal(t, "delegating to tester", msgs[2].Content)
	assert.True(t, msgs[3].Author.IsAgent("tester"))
	assert.Equal(t, "all tests green", msgs[3].Content)
	assert.True(t, msgs[4].Author.IsAgent("execution_team"))
	assert.Equal(t, "task complete, reporting up", msgs[4].Content)
}

func TestHierarchicalUnresolvedChoicesUseFirst(t *testing.T) {
	decider := &scriptDecider{tokens: []string{"??", "??"}}
	g, err := Hierarchical(decider, []Team{
		{ID: "alpha_team", Members: []Worker{
			{ID: "alpha_worker", Actor: fixedActor("done")},
		}},
		{ID: "beta_team", Members: []Worker{
			{ID: "beta_worker", Actor: fixedActor("done")},
		}},
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("do something"),
	}))
	require.NoError(t, err)

	msgs := st.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "assigning task to alpha_team", msgs[1].Content)
	assert.Equal(t, "delegating to alpha_worker", msgs[2].Content)
}

func TestHierarchicalRequiresTeamsAndMembers(t *testing.T) {
	d := &scriptDecider{tokens: []string{""}}

	_, err := Hierarchical(d, nil)
	assert.Error(t, err)

	_, err = Hierarchical(d, []Team{{ID: "empty_team"}})
	assert.Error(t, err)
}

func TestNetworkRouting(t *testing.T) {
	g, err := Network([]Worker{
		{ID: "network_chat", Actor: fixedActor("found the docs [ROUTE:network_coder]")},
		{ID: "network_coder", Actor: fixedActor("implemented and verified")},
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState([]core.Message{
		core.NewUserMessage("research then implement"),
	}))
	require.NoError(t, err)

	msgs := st.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, msgs[1].Author.IsAgent("network_chat"))
	// Marker is stripped before the message is stored.
	assert.Equal(t, "found the docs", msgs[1].Content)
	assert.True(t, msgs[2].Author.IsAgent("network_coder"))
	assert.Equal(t, "implemented and verified", msgs[2].Content)
}

func TestNetworkUnknownMarkerEndsRun(t *testing.T) {
	g, err := Network([]Worker{
		{ID: "network_writer", Actor: fixedActor("draft ready [ROUTE:nonexistent]")},
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())
}

func TestNetworkNoMarkerDoesNotReuseStaleHint(t *testing.T) {
	// First node routes explicitly; second emits no marker. Without the hint
	// overwrite the stale "network_b" hint would loop forever.
	g, err := Network([]Worker{
		{ID: "network_a", Actor: fixedActor("handing off [ROUTE:network_b]")},
		{ID: "network_b", Actor: fixedActor("finished")},
	})
	require.NoError(t, err)

	st, err := engine.New(g, func(o *engine.Options) { o.MaxSteps = 5 }).
		Run(context.Background(), core.NewState(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Len())
}

func TestNetworkSelfRoute(t *testing.T) {
	calls := 0
	g, err := Network([]Worker{
		{ID: "network_loop", Actor: core.ActorFunc(func(ctx context.Context, st *core.State) (string, error) {
			calls++
			if calls < 3 {
				return "iterating [ROUTE:network_loop]", nil
			}
			return "converged", nil
		})},
	})
	require.NoError(t, err)

	st, err := engine.New(g).Run(context.Background(), core.NewState(nil))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, st.Len())
}

func TestNetworkRequiresNodes(t *testing.T) {
	_, err := Network(nil)
	assert.Error(t, err)
}

func TestParseRouteMarker(t *testing.T) {
	target, cleaned := ParseRouteMarker("work done [ROUTE:coder] trailing")
	assert.Equal(t, "coder", target)
	assert.Equal(t, "work done  trailing", cleaned)

	target, cleaned = ParseRouteMarker("no marker here")
	assert.Equal(t, "", target)
	assert.Equal(t, "no marker here", cleaned)

	// First marker wins; all markers are stripped.
	target, cleaned = ParseRouteMarker("[ROUTE:a] then [ROUTE:b]")
	assert.Equal(t, "a", target)
	assert.Equal(t, "then", cleaned)
}

func TestNextHintDecider(t *testing.T) {
	st := core.NewState(nil)
	st.SetNextHint("coder")

	token, err := NextHintDecider().Decide(context.Background(), st, nil)
	require.NoError(t, err)
	assert.Equal(t, "coder", token)
}
