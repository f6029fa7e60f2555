package agentgraph

import (
	"context"
	"testing"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentGraphEndToEnd(t *testing.T) {
	tokens := []string{"coder", "FINISH"}
	i := 0
	decider := core.DecideFunc(func(_ context.Context, _ *core.State, _ []core.NodeID) (string, error) {
		token := tokens[i]
		i++
		return token, nil
	})

	g, err := topology.Supervisor(decider, []topology.Worker{
		{ID: "coder", Actor: core.ActorFunc(func(_ context.Context, _ *core.State) (string, error) {
			return "implemented the feature", nil
		})},
	})
	require.NoError(t, err)

	ag := New(func(o *Options) { o.MaxSteps = 10 })
	require.NoError(t, ag.RegisterGraph("dev", g))

	runID, msgs, err := ag.RunPrompt(context.Background(), "dev", "build me a feature")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "implemented the feature", msgs[2].Content)

	transcript, err := ag.Transcript(runID)
	require.NoError(t, err)
	assert.Equal(t, "dev", transcript.GraphID)
	assert.Len(t, transcript.Messages, 3)
}

func TestAgentGraphUnknownGraph(t *testing.T) {
	ag := New()
	_, _, err := ag.Run(context.Background(), "missing", nil)
	assert.Error(t, err)
}
