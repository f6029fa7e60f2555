package topology

import (
	"context"
	"regexp"
	"strings"

	"github.com/hupe1980/agentgraph/core"
)

// NextHintDecider returns a Decider that reads the state's routing hint.
// Topology nodes record their routing intent in the hint side channel; the
// edge-level decision then just surfaces it for normalization and fallback.
func NextHintDecider() core.Decider {
	return core.DecideFunc(func(_ context.Context, st *core.State, _ []core.NodeID) (string, error) {
		return string(st.NextHint()), nil
	})
}

// routeMarker matches an in-band routing marker like "[ROUTE:network_coder]".
var routeMarker = regexp.MustCompile(`\[ROUTE:([^\]]+)\]`)

// ParseRouteMarker extracts the first route marker from an action output.
// It returns the marker's target token and the content with every marker
// removed; target is empty when no marker is present. Stored message content
// stays free of control syntax.
func ParseRouteMarker(content string) (target string, cleaned string) {
	if m := routeMarker.FindStringSubmatch(content); m != nil {
		target = strings.TrimSpace(m[1])
	}
	cleaned = strings.TrimSpace(routeMarker.ReplaceAllString(content, ""))
	return target, cleaned
}
