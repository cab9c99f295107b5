package services

import (
	"fmt"
	"path"
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
)

// Registration pairs a host pattern with the provider that handles it.
type Registration struct {
	// Pattern is the host pattern the provider claims (path.Match syntax,
	// matched case-insensitively against the target host).
	Pattern string

	Provider driven.RevisionProvider
}

// ProviderRegistry selects a revision provider for a target host.
// Selection is a pure lookup over the registered patterns in registration
// order; the first match wins. It happens exactly once per run, before any
// project is processed.
type ProviderRegistry struct {
	registrations []Registration
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{}
}

// Register adds a provider for a host pattern.
func (r *ProviderRegistry) Register(pattern string, provider driven.RevisionProvider) {
	r.registrations = append(r.registrations, Registration{Pattern: pattern, Provider: provider})
}

// Select returns the first provider whose pattern matches host.
// Returns domain.ErrNoProvider if nothing matches.
func (r *ProviderRegistry) Select(host string) (driven.RevisionProvider, error) {
	h := strings.ToLower(host)
	for _, reg := range r.registrations {
		if matchHost(strings.ToLower(reg.Pattern), h) {
			return reg.Provider, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNoProvider, host)
}

// Registrations returns the registered (pattern, provider) pairs in order.
func (r *ProviderRegistry) Registrations() []Registration {
	out := make([]Registration, len(r.registrations))
	copy(out, r.registrations)
	return out
}

func matchHost(pattern, host string) bool {
	if pattern == host {
		return true
	}
	ok, err := path.Match(pattern, host)
	return err == nil && ok
}
