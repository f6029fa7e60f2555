package model

import (
	"context"

	"github.com/hupe1980/agentgraph/core"
)

// Message is a single turn in a chat completion request.
type Message struct {
	Role    string // system, user or assistant
	Content string
}

// Request is a normalized, provider-agnostic chat completion request. System
// holds the instruction prompt; Messages the conversation in order.
type Request struct {
	System   string
	Messages []Message
}

// Response is a completed chat generation.
type Response struct {
	Content string
}

// Model abstracts a chat completion API. Implementations must be safe for
// concurrent use; the graph engine awaits each call before proceeding, so no
// streaming surface is required here.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// ConvertMessages maps conversation state messages onto chat request
// messages: user-authored turns become user messages, agent-authored turns
// become assistant messages prefixed with the agent's name so the model can
// tell reporters apart.
func ConvertMessages(msgs []core.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Author.IsUser() {
			out = append(out, Message{Role: "user", Content: m.Content})
			continue
		}
		out = append(out, Message{Role: "assistant", Content: string(m.Author.Agent) + ": " + m.Content})
	}
	return out
}
