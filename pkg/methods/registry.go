// Package methods maintains the roster of body-retrieval strategies the
// benchmark can run. Every strategy conforms to the same contract: URL in,
// payload bytes out. The registry is built once at startup, frozen, and only
// read afterwards.
package methods

import (
	"fmt"
	"strings"
	"sync"
)

// Func is the contract every strategy implements.
type Func func(url string) ([]byte, error)

// NotFoundError reports a lookup for a name that was never registered. It
// carries the known names so the caller can print a useful usage message.
type NotFoundError struct {
	Name  string
	Known []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("method must be %q or one of: %s", "all", strings.Join(e.Known, ", "))
}

// Registry maps strategy names to their implementations, preserving
// registration order for the "all" sweep.
type Registry struct {
	mu     sync.RWMutex
	caps   CapabilitySet
	names  []string
	byName map[string]Func
	frozen bool
}

// NewRegistry returns an empty registry gated by the given capability set.
func NewRegistry(caps CapabilitySet) *Registry {
	return &Registry{
		caps:   caps,
		byName: make(map[string]Func),
	}
}

// Register adds a strategy. The entry is silently dropped when any required
// capability is unavailable, when the name is already taken, or when the
// registry has been frozen; a missing optional dependency is not an error.
func (r *Registry) Register(name string, requires []string, fn Func) {
	if name = strings.TrimSpace(strings.ToLower(name)); name == "" || fn == nil {
		return
	}
	if !r.caps.Satisfied(requires) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return
	}
	if _, taken := r.byName[name]; taken {
		return
	}
	r.byName[name] = fn
	r.names = append(r.names, name)
}

// Freeze ends the write phase. All later Register calls are no-ops.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Resolve returns the strategy registered under name.
func (r *Registry) Resolve(name string) (Func, error) {
	r.mu.RLock()
	fn := r.byName[strings.ToLower(name)]
	r.mu.RUnlock()

	if fn == nil {
		return nil, &NotFoundError{Name: name, Known: r.Names()}
	}
	return fn, nil
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
