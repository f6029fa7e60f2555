package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/agentgraph/core"
)

// RouterOptions configures a Router.
type RouterOptions struct {
	// Instruction overrides the routing system prompt. The prompt receives
	// the comma-separated target list via %s.
	Instruction string

	// MaxHistory limits how many trailing conversation messages are shown
	// to the model. Zero means DefaultRouterHistory.
	MaxHistory int
}

// DefaultRouterHistory is the number of trailing messages a Router shows the
// model when judging where to route next.
const DefaultRouterHistory = 3

const defaultRouterInstruction = "You are a task router. Review the conversation and choose the " +
	"next destination for it. Available options: %s. If the request has been " +
	"adequately answered and FINISH is an option, choose FINISH. Respond with " +
	"only one word: the chosen option."

// Router adapts a chat Model into a core.Decider. It presents the trailing
// conversation together with the allowed targets and returns the model's
// raw token – normalization and fallback are the engine's job.
type Router struct {
	model       Model
	instruction string
	maxHistory  int
}

// NewRouter creates a Router over the given model.
func NewRouter(m Model, optFns ...func(o *RouterOptions)) *Router {
	opts := RouterOptions{
		Instruction: defaultRouterInstruction,
		MaxHistory:  DefaultRouterHistory,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxHistory < 1 {
		opts.MaxHistory = DefaultRouterHistory
	}
	return &Router{model: m, instruction: opts.Instruction, maxHistory: opts.MaxHistory}
}

// Decide implements core.Decider.
func (r *Router) Decide(ctx context.Context, st *core.State, targets []core.NodeID) (string, error) {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		if t == core.End {
			names = append(names, "FINISH")
			continue
		}
		names = append(names, string(t))
	}

	msgs := ConvertMessages(st.Messages())
	if len(msgs) > r.maxHistory {
		msgs = msgs[len(msgs)-r.maxHistory:]
	}

	resp, err := r.model.Generate(ctx, Request{
		System:   fmt.Sprintf(r.instruction, strings.Join(names, ", ")),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("routing generation failed: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}
