// Package session houses transcript storage for completed graph runs. The
// Store interface keeps higher level packages (runner, examples) independent
// of concrete storage; the in-memory implementation is process-local and
// best suited for tests and ephemeral services. Add durable backends in
// sub-packages without changing any calling code.
package session
