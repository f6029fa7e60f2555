// Package graph provides construction and compilation of executable agent
// graphs. A graph is assembled through a Builder (node registry + edge
// table), validated by Compile, and frozen into an immutable Graph that can
// be shared read-only across concurrent runs.
//
// Edges come in two shapes:
//
//   - Unconditional: the run always proceeds from one node to a fixed next
//   - Conditional: a decision capability proposes the next node from a
//     declared allowed-target set, backed by a deterministic two-tier
//     fallback (ordered keyword rules, then a static default)
//
// The execution loop itself lives in the engine package; topology presets
// (supervisor, hierarchical, network) live in the topology package.
package graph
