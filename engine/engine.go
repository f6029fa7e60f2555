package engine

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/graph"
	"github.com/hupe1980/agentgraph/logging"
)

// DefaultMaxSteps bounds a run when no explicit budget is configured. The
// bound is mandatory: the engine never runs unbounded, because conditional
// routing (mesh topologies especially) can cycle forever otherwise.
const DefaultMaxSteps = 25

// Options configures an Engine instance using the functional options
// pattern.
type Options struct {
	// MaxSteps is the per-run step budget. Values < 1 fall back to
	// DefaultMaxSteps.
	MaxSteps int

	// Logger receives engine diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger

	// Observer receives per-step observability events. Defaults to a
	// logger-backed observer.
	Observer Observer
}

// Engine executes a compiled graph. It is immutable after construction and
// safe for concurrent use: each Run owns its State exclusively and the
// underlying Graph is read-only.
type Engine struct {
	graph    *graph.Graph
	maxSteps int
	logger   logging.Logger
	observer Observer
}

// New constructs an Engine for the given compiled graph.
//
// Example:
//
//	eng := engine.New(g,
//	    func(o *engine.Options) { o.MaxSteps = 12 },
//	    func(o *engine.Options) { o.Logger = myLogger },
//	)
func New(g *graph.Graph, optFns ...func(o *Options)) *Engine {
	opts := Options{
		MaxSteps: DefaultMaxSteps,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = DefaultMaxSteps
	}
	if opts.Observer == nil {
		opts.Observer = NewLogObserver(opts.Logger)
	}
	return &Engine{
		graph:    g,
		maxSteps: opts.MaxSteps,
		logger:   opts.Logger,
		observer: opts.Observer,
	}
}

// Run drives the state through the graph starting at the entry node until
// the terminal target is reached, the step budget is exhausted, the context
// is cancelled, or a node fails.
//
// The returned State is always the one passed in. On error it holds the
// messages accumulated before the failure as diagnostic context only – a
// failing step never commits its own messages.
func (e *Engine) Run(ctx context.Context, st *core.State) (*core.State, error) {
	current := e.graph.Entry()
	for steps := 0; ; steps++ {
		if current == core.End {
			return st, nil
		}
		if err := ctx.Err(); err != nil {
			return st, err
		}
		if steps >= e.maxSteps {
			return st, &StepBudgetExceededError{MaxSteps: e.maxSteps}
		}

		e.observer.NodeEntered(current, steps)
		next, err := e.step(ctx, current, st)
		if err != nil {
			return st, err
		}
		current = next
	}
}

// step invokes the current node, commits its result and resolves the next
// node from the edge table.
func (e *Engine) step(ctx context.Context, current core.NodeID, st *core.State) (core.NodeID, error) {
	ex, err := e.graph.Node(current)
	if err != nil {
		return "", err
	}

	start := time.Now()
	res, err := ex.Execute(ctx, st)
	if err != nil {
		// Fail fast: nothing from this step reaches the state.
		e.logger.Error("node execution failed", "node", string(current), "duration", time.Since(start), "error", err.Error())
		return "", &NodeExecutionError{Node: current, Err: err}
	}

	for _, m := range res.Messages {
		st.Append(m)
	}
	if res.NextHint != "" {
		st.SetNextHint(res.NextHint)
	}

	edge, ok := e.graph.Edge(current)
	if !ok {
		return "", &MissingEdgeError{Node: current}
	}
	return e.resolveNext(ctx, edge, st)
}

// resolveNext applies the edge's routing rule. For conditional edges the
// decision output is normalized and checked against the allowed targets;
// unresolvable output is handled by the two-tier fallback policy and never
// fails the run on its own.
func (e *Engine) resolveNext(ctx context.Context, edge graph.Edge, st *core.State) (core.NodeID, error) {
	if !edge.IsConditional() {
		e.observer.RoutingDecision(edge.From, edge.To)
		return edge.To, nil
	}

	cond := edge.Cond
	token, err := cond.Decide.Decide(ctx, st, cond.Targets)
	if err != nil {
		return "", &core.DecisionError{Err: err}
	}

	if target, ok := core.ResolveToken(token, cond.Targets); ok {
		e.observer.RoutingDecision(edge.From, target)
		return target, nil
	}

	target := e.fallbackTarget(edge.From, cond, st)
	e.observer.RoutingFallback(edge.From, token, target)
	return target, nil
}

// fallbackTarget applies the deterministic fallback: the first keyword rule
// matching the originating message content wins, otherwise the static
// default. The originating message is the most recent one not authored by
// the deciding node itself, so a router's own commentary never matches its
// rules.
func (e *Engine) fallbackTarget(from core.NodeID, cond *graph.Conditional, st *core.State) core.NodeID {
	content := strings.ToLower(originatingContent(from, st))
	for _, rule := range cond.Rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(content, strings.ToLower(kw)) {
				return rule.Target
			}
		}
	}
	return cond.Default
}

// originatingContent returns the content of the most recent message not
// authored by node from ("" when there is none).
func originatingContent(from core.NodeID, st *core.State) string {
	msgs := st.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if !msgs[i].Author.IsAgent(from) {
			return msgs[i].Content
		}
	}
	return ""
}
