// Package runner provides the run entry point over compiled graphs: a
// registry of graphs by id, per-run engine construction, transcript
// recording and run-scoped logging.
package runner
