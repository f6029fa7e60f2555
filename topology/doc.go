// Package topology provides the three multi-agent coordination presets built
// on the graph engine: Supervisor (star), Hierarchical (three-tier tree) and
// Network (full mesh). Each preset is a policy configuration of the same
// engine – a node set plus an edge shape – not a separate execution model.
//
//   - Supervisor: one hub routes every turn to a worker and decides when the
//     conversation is complete; workers always report back to the hub.
//   - Hierarchical: a root delegates to team leads, team leads delegate to
//     their specialists, and reports flow back up the same path.
//   - Network: every node acts and then names its own successor via a route
//     marker embedded in its output; the marker is stripped into the
//     structured next-hint side channel before the message is stored.
package topology
