package engine

import (
	"github.com/hupe1980/agentgraph/core"
	"github.com/hupe1980/agentgraph/logging"
)

// Observer receives per-step observability events from a run. Implementations
// are invoked synchronously from the execution loop and should return
// quickly; they must not mutate the run's state.
//
// RoutingFallback is an expected, handled condition – not an error. It fires
// when the decision capability's output did not resolve against the allowed
// targets and the deterministic fallback chose the route instead.
type Observer interface {
	// NodeEntered fires before a node executor is invoked.
	NodeEntered(node core.NodeID, step int)

	// RoutingDecision fires when an edge resolves the next node.
	RoutingDecision(from, to core.NodeID)

	// RoutingFallback fires when the fallback policy salvaged an
	// unresolvable decision token.
	RoutingFallback(from core.NodeID, token string, to core.NodeID)
}

// NoOpObserver discards all events.
type NoOpObserver struct{}

// NodeEntered implements Observer.
func (NoOpObserver) NodeEntered(core.NodeID, int) {}

// RoutingDecision implements Observer.
func (NoOpObserver) RoutingDecision(core.NodeID, core.NodeID) {}

// RoutingFallback implements Observer.
func (NoOpObserver) RoutingFallback(core.NodeID, string, core.NodeID) {}

// LogObserver forwards events to a logging.Logger.
type LogObserver struct {
	logger logging.Logger
}

// NewLogObserver creates an Observer backed by the given logger.
func NewLogObserver(logger logging.Logger) *LogObserver {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &LogObserver{logger: logger}
}

// NodeEntered implements Observer.
func (o *LogObserver) NodeEntered(node core.NodeID, step int) {
	o.logger.Debug("engine entering node", "node", string(node), "step", step)
}

// RoutingDecision implements Observer.
func (o *LogObserver) RoutingDecision(from, to core.NodeID) {
	o.logger.Debug("engine routing decision", "from", string(from), "to", string(to))
}

// RoutingFallback implements Observer.
func (o *LogObserver) RoutingFallback(from core.NodeID, token string, to core.NodeID) {
	o.logger.Warn("engine routing fallback", "from", string(from), "token", token, "to", string(to))
}

// multiObserver fans events out to several observers in order.
type multiObserver []Observer

func (m multiObserver) NodeEntered(node core.NodeID, step int) {
	for _, o := range m {
		o.NodeEntered(node, step)
	}
}

func (m multiObserver) RoutingDecision(from, to core.NodeID) {
	for _, o := range m {
		o.RoutingDecision(from, to)
	}
}

func (m multiObserver) RoutingFallback(from core.NodeID, token string, to core.NodeID) {
	for _, o := range m {
		o.RoutingFallback(from, token, to)
	}
}

// CombineObservers merges observers into one; nil entries are skipped.
func CombineObservers(observers ...Observer) Observer {
	var out multiObserver
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
