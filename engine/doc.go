// Package engine drives compiled graphs: it alternates between invoking node
// executors and consulting the edge table until the run reaches the terminal
// target or exhausts its step budget. The engine owns all state mutation
// (message appends, routing hints), normalizes untrusted decision output and
// applies the deterministic routing fallback, and emits observability events
// for every step.
package engine
