package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentgraph/core"
)

// WorkerOptions configures a Worker.
type WorkerOptions struct {
	// MaxHistory limits how many trailing conversation messages are shown
	// to the model. Zero means the full history.
	MaxHistory int
}

// Worker adapts a chat Model into a core.Actor: it runs the model over the
// conversation under a fixed system instruction and returns the generated
// text. Pair it with a topology worker node.
type Worker struct {
	model       Model
	instruction string
	maxHistory  int
}

// NewWorker creates a Worker with the given system instruction.
func NewWorker(m Model, instruction string, optFns ...func(o *WorkerOptions)) *Worker {
	opts := WorkerOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Worker{model: m, instruction: instruction, maxHistory: opts.MaxHistory}
}

// Act implements core.Actor.
func (w *Worker) Act(ctx context.Context, st *core.State) (string, error) {
	msgs := ConvertMessages(st.Messages())
	if w.maxHistory > 0 && len(msgs) > w.maxHistory {
		msgs = msgs[len(msgs)-w.maxHistory:]
	}
	resp, err := w.model.Generate(ctx, Request{System: w.instruction, Messages: msgs})
	if err != nil {
		return "", fmt.Errorf("worker generation failed: %w", err)
	}
	return resp.Content, nil
}
