// Package core provides the foundational domain types and capability
// interfaces used by agentgraph. It defines the core abstractions for:
//
//   - Messages (immutable conversation turns with an explicit author tag)
//   - State (the append-only message log threaded through a graph run)
//   - Capabilities (Executor, Decider and Actor – the pluggable units of
//     work and routing supplied by callers)
//   - Routing tokens (normalization of free-form decision output)
//
// The package intentionally keeps implementation concerns (graph
// construction, the execution loop, concrete model clients) out of scope,
// exposing small interfaces so that graph, engine and topology layers can
// depend on shared contracts without cyclic imports.
package core
