// Package custom implements a revision provider for self-hosted raw
// servers: the revision and raw content base are supplied explicitly by
// configuration instead of being resolved against an API.
package custom

import (
	"context"
	"fmt"
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.RevisionProvider = (*Provider)(nil)

// Provider returns a fixed revision and raw base.
type Provider struct {
	revision string
	rawBase  string
}

// NewProvider creates a custom provider with an explicit revision stamp
// and raw content base URL.
func NewProvider(revision, rawBase string) *Provider {
	return &Provider{revision: revision, rawBase: rawBase}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "custom"
}

// ResolveRevision returns the configured revision stamp.
func (p *Provider) ResolveRevision(_ context.Context, _ string) (domain.RevisionStamp, error) {
	if p.revision == "" {
		return "", fmt.Errorf("%w: custom provider needs an explicit revision", domain.ErrInvalidInput)
	}
	return domain.RevisionStamp(p.revision), nil
}

// RawContentBase returns the configured raw base without a trailing slash.
func (p *Provider) RawContentBase(_ string) (string, error) {
	if p.rawBase == "" {
		return "", fmt.Errorf("%w: custom provider needs a raw content base URL", domain.ErrInvalidInput)
	}
	return strings.TrimRight(p.rawBase, "/"), nil
}
