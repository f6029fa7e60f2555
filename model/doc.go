// Package model defines the minimal chat model abstraction backing the
// LLM-based decision and action capabilities, plus Router and Worker adapters
// that turn any Model into a core.Decider or core.Actor. Concrete API
// clients live in the openai and anthropic sub-packages.
package model
