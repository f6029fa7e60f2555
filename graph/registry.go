package graph

import "github.com/hupe1980/agentgraph/core"

// Registry maps node ids to their executors during graph construction. It is
// mutable only until the owning Builder compiles; the compiled Graph takes a
// snapshot and further registration has no effect on it.
type Registry struct {
	executors map[core.NodeID]core.Executor
	order     []core.NodeID
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[core.NodeID]core.Executor)}
}

// Register binds an executor to a node id. Registering an id twice fails
// with DuplicateNodeError.
func (r *Registry) Register(id core.NodeID, ex core.Executor) error {
	if _, exists := r.executors[id]; exists {
		return &DuplicateNodeError{ID: id}
	}
	r.executors[id] = ex
	r.order = append(r.order, id)
	return nil
}

// Get returns the executor bound to id, failing with UnknownNodeError if the
// id is absent.
func (r *Registry) Get(id core.NodeID) (core.Executor, error) {
	ex, ok := r.executors[id]
	if !ok {
		return nil, &UnknownNodeError{ID: id}
	}
	return ex, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id core.NodeID) bool {
	_, ok := r.executors[id]
	return ok
}

// IDs returns all registered node ids in registration order.
func (r *Registry) IDs() []core.NodeID {
	out := make([]core.NodeID, len(r.order))
	copy(out, r.order)
	return out
}
