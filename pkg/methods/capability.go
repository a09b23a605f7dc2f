package methods

import "strings"

// Capability names for the external client libraries the collaborator
// strategies depend on. The set of facilities is finite and known at build
// time; availability is decided once at startup, never re-probed.
const (
	CapResty    = "resty"
	CapFasthttp = "fasthttp"
)

// CapabilitySet records which external facilities are usable this run.
type CapabilitySet map[string]bool

// DefaultCapabilities returns every capability this binary was built with,
// minus the explicitly disabled ones. Disabling exists so a sweep can be
// reproduced without a collaborator library's influence.
func DefaultCapabilities(disabled []string) CapabilitySet {
	set := CapabilitySet{
		CapResty:    true,
		CapFasthttp: true,
	}
	for _, name := range disabled {
		delete(set, strings.TrimSpace(strings.ToLower(name)))
	}
	return set
}

// Satisfied reports whether every named requirement is available.
func (s CapabilitySet) Satisfied(requires []string) bool {
	for _, name := range requires {
		if !s[name] {
			return false
		}
	}
	return true
}
