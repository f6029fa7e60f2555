// Package agentgraph provides a high-level façade over the graph compiler,
// execution engine and service abstractions (transcripts & logging) enabling
// rapid construction of multi-agent orchestration graphs. Most applications
// interact with this package by:
//  1. Creating an AgentGraph via New() (optionally overriding defaults)
//  2. Building graphs with graph.NewBuilder or the topology presets
//     (topology.Supervisor, topology.Hierarchical, topology.Network)
//  3. Registering the compiled graphs and invoking Run
//
// The façade delegates execution to runner.Runner while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a durable transcript
// store and a structured logger.
package agentgraph

import (
	"context"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/engine"
	"github.com/hupe1980/agentgraph/graph"
	"github.com/hupe1980/agentgraph/logging"
	"github.com/hupe1980/agentgraph/runner"
	"github.com/hupe1980/agentgraph/session"
)

// Options configures the AgentGraph instance.
type Options struct {
	// MaxSteps bounds every run started through this instance. Values < 1
	// fall back to engine.DefaultMaxSteps.
	MaxSteps int

	// TranscriptStore records completed runs (defaults to an in-memory
	// implementation if not provided).
	TranscriptStore session.Store

	// Observer receives per-step engine events (node entries, routing
	// decisions, fallbacks). Optional.
	Observer engine.Observer

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// AgentGraph is the high-level façade aggregating the runner and services.
type AgentGraph struct {
	opts   Options
	runner *runner.Runner
}

// New creates a new AgentGraph instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *AgentGraph {
	opts := Options{
		MaxSteps:        engine.DefaultMaxSteps,
		TranscriptStore: session.NewInMemoryStore(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = engine.DefaultMaxSteps
	}

	r := runner.New(func(o *runner.Options) {
		o.MaxSteps = opts.MaxSteps
		o.Transcripts = opts.TranscriptStore
		o.Logger = opts.Logger
		o.Observer = opts.Observer
	})

	return &AgentGraph{opts: opts, runner: r}
}

// RegisterGraph adds a compiled graph to the underlying runner.
func (a *AgentGraph) RegisterGraph(id string, g *graph.Graph) error {
	return a.runner.RegisterGraph(id, g)
}

// Run executes a registered graph over the initial messages and returns the
// run id together with the final ordered message sequence. The run id keys
// the recorded transcript.
func (a *AgentGraph) Run(ctx context.Context, graphID string, initial []core.Message) (string, []core.Message, error) {
	return a.runner.Run(ctx, graphID, initial)
}

// RunPrompt is a convenience wrapper seeding the run with a single user
// message.
func (a *AgentGraph) RunPrompt(ctx context.Context, graphID, prompt string) (string, []core.Message, error) {
	return a.runner.Run(ctx, graphID, []core.Message{core.NewUserMessage(prompt)})
}

// Transcript returns the recorded transcript for a completed run.
func (a *AgentGraph) Transcript(runID string) (*session.Transcript, error) {
	return a.runner.Transcript(runID)
}
