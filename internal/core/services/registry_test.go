package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srclink/srclink/internal/core/domain"
)

// stubProvider implements driven.RevisionProvider for registry tests.
type stubProvider struct {
	name     string
	revision domain.RevisionStamp
	rawBase  string
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) ResolveRevision(_ context.Context, _ string) (domain.RevisionStamp, error) {
	return p.revision, nil
}

func (p *stubProvider) RawContentBase(_ string) (string, error) {
	return p.rawBase, nil
}

func TestProviderRegistry_Select(t *testing.T) {
	github := &stubProvider{name: "github"}
	custom := &stubProvider{name: "custom"}

	registry := NewProviderRegistry()
	registry.Register("github.com", github)
	registry.Register("*.example.org", custom)

	t.Run("exact match", func(t *testing.T) {
		got, err := registry.Select("github.com")
		require.NoError(t, err)
		assert.Same(t, github, got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := registry.Select("GitHub.com")
		require.NoError(t, err)
		assert.Same(t, github, got)
	})

	t.Run("wildcard match", func(t *testing.T) {
		got, err := registry.Select("git.example.org")
		require.NoError(t, err)
		assert.Same(t, custom, got)
	})

	t.Run("no match is ErrNoProvider", func(t *testing.T) {
		_, err := registry.Select("gitlab.com")
		assert.ErrorIs(t, err, domain.ErrNoProvider)
	})

	t.Run("first registration wins", func(t *testing.T) {
		other := &stubProvider{name: "other"}
		r := NewProviderRegistry()
		r.Register("*", custom)
		r.Register("github.com", other)

		got, err := r.Select("github.com")
		require.NoError(t, err)
		assert.Same(t, custom, got)
	})
}

func TestProviderRegistry_Registrations(t *testing.T) {
	registry := NewProviderRegistry()
	registry.Register("github.com", &stubProvider{name: "github"})
	registry.Register("*", &stubProvider{name: "custom"})

	regs := registry.Registrations()
	require.Len(t, regs, 2)
	assert.Equal(t, "github.com", regs[0].Pattern)
	assert.Equal(t, "custom", regs[1].Provider.Name())
}
