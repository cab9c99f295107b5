package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// RawHost serves raw file content for github.com repositories.
const RawHost = "https://raw.githubusercontent.com"

// Ensure Provider implements the interface.
var _ driven.RevisionProvider = (*Provider)(nil)

// Provider resolves revisions for one GitHub repository.
type Provider struct {
	owner string
	repo  string
	ref   string
	token string

	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewProvider creates a GitHub provider for owner/repo at ref.
// ref may be a branch, tag or commit SHA; empty means the default branch.
// token may be empty for public repositories.
func NewProvider(owner, repo, ref, token string) *Provider {
	return &Provider{
		owner:       owner,
		repo:        repo,
		ref:         ref,
		token:       token,
		rateLimiter: NewRateLimiter(),
	}
}

// WithClient overrides the API client. Used in tests.
func (p *Provider) WithClient(client *gh.Client) *Provider {
	p.gh = client
	return p
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "github"
}

// ensureClient initializes the go-github client if not already done.
// Called lazily so no API plumbing happens until a revision is needed.
func (p *Provider) ensureClient(ctx context.Context) {
	if p.gh != nil {
		return
	}

	if p.token == "" {
		p.gh = gh.NewClient(nil)
		return
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: p.token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	p.gh = gh.NewClient(tc)
}

// ResolveRevision resolves the configured ref to a commit SHA.
// The repoRoot parameter is unused: GitHub resolution happens against the
// remote, never the local checkout.
func (p *Provider) ResolveRevision(ctx context.Context, _ string) (domain.RevisionStamp, error) {
	p.ensureClient(ctx)

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ref := p.ref
	if ref == "" {
		repo, resp, err := p.gh.Repositories.Get(ctx, p.owner, p.repo)
		if resp != nil {
			p.rateLimiter.UpdateFromResponse(resp.Response)
		}
		if err != nil {
			return "", fmt.Errorf("get repository %s/%s: %w", p.owner, p.repo, err)
		}
		ref = repo.GetDefaultBranch()
	}

	sha, resp, err := p.gh.Repositories.GetCommitSHA1(ctx, p.owner, p.repo, ref, "")
	if resp != nil {
		p.rateLimiter.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s/%s@%s: %w", p.owner, p.repo, ref, err)
	}

	return domain.RevisionStamp(sha), nil
}

// RawContentBase returns the raw.githubusercontent.com base for the
// repository, without a trailing slash.
func (p *Provider) RawContentBase(_ string) (string, error) {
	if p.owner == "" || p.repo == "" {
		return "", fmt.Errorf("%w: github provider needs owner and repository", domain.ErrInvalidInput)
	}
	return fmt.Sprintf("%s/%s/%s", RawHost, p.owner, p.repo), nil
}
