package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/engine"
	"github.com/hupe1980/agentgraph/graph"
	"github.com/hupe1980/agentgraph/logging"
	"github.com/hupe1980/agentgraph/session"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MaxSteps is the per-run step budget handed to the engine.
	MaxSteps int

	// Transcripts records completed runs. Defaults to an in-memory store.
	Transcripts session.Store

	// Logger receives runner and engine diagnostics. Defaults to NoOp.
	Logger logging.Logger

	// Observer receives engine observability events. Optional; combined
	// with the logger-backed observer.
	Observer engine.Observer
}

// Runner coordinates graph execution: it resolves registered graphs by id,
// creates fresh state per run, drives the engine and persists transcripts.
// Public methods are safe for concurrent use; compiled graphs are shared
// read-only across simultaneous runs.
type Runner struct {
	maxSteps    int
	transcripts session.Store
	logger      logging.Logger
	observer    engine.Observer

	graphs map[string]*graph.Graph
	mu     sync.RWMutex
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxSteps:    engine.DefaultMaxSteps,
		Transcripts: session.NewInMemoryStore(),
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		maxSteps:    opts.MaxSteps,
		transcripts: opts.Transcripts,
		logger:      opts.Logger,
		observer:    opts.Observer,
		graphs:      make(map[string]*graph.Graph),
	}
}

// RegisterGraph makes a compiled graph available for execution under id.
// Registering an id twice fails.
func (r *Runner) RegisterGraph(id string, g *graph.Graph) error {
	if id == "" {
		return fmt.Errorf("graph id cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.graphs[id]; exists {
		return fmt.Errorf("graph %s already registered", id)
	}
	r.graphs[id] = g
	return nil
}

// Graph returns a registered graph by id.
func (r *Runner) Graph(id string) (*graph.Graph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.graphs[id]
	return g, ok
}

// Run executes the named graph over the initial messages and returns the run
// id together with the final message sequence. Each run gets a fresh State
// and a unique run id; successful runs are recorded in the transcript store
// under that id. On failure the partial message sequence is returned
// alongside the error as diagnostic context only – it is never persisted.
func (r *Runner) Run(ctx context.Context, graphID string, initial []core.Message) (string, []core.Message, error) {
	g, ok := r.Graph(graphID)
	if !ok {
		return "", nil, fmt.Errorf("graph %s not found", graphID)
	}

	runID := uuid.NewString()
	logger := r.logger

	start := time.Now()
	st := core.NewState(initial)
	eng := engine.New(g, func(o *engine.Options) {
		o.MaxSteps = r.maxSteps
		o.Logger = logger
		o.Observer = engine.CombineObservers(engine.NewLogObserver(logger), r.observer)
	})

	st, err := eng.Run(ctx, st)
	if err != nil {
		logger.Error("run failed", "graph_id", graphID, "run_id", runID, "duration", time.Since(start), "error", err.Error())
		return runID, st.Messages(), err
	}

	transcript := &session.Transcript{
		RunID:    runID,
		GraphID:  graphID,
		Messages: st.Messages(),
		Created:  time.Now().UTC(),
	}
	if err := r.transcripts.Save(transcript); err != nil {
		return runID, st.Messages(), fmt.Errorf("failed to save transcript: %w", err)
	}

	logger.Info("run completed", "graph_id", graphID, "run_id", runID, "messages", st.Len(), "duration", time.Since(start))
	return runID, st.Messages(), nil
}

// Transcript returns the recorded transcript for a completed run.
func (r *Runner) Transcript(runID string) (*session.Transcript, error) {
	return r.transcripts.Get(runID)
}
