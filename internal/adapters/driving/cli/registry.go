package cli

import (
	"os"

	"github.com/srclink/srclink/internal/adapters/driven/providers/custom"
	"github.com/srclink/srclink/internal/adapters/driven/providers/github"
	"github.com/srclink/srclink/internal/core/ports/driven"
	"github.com/srclink/srclink/internal/core/services"
)

// buildRegistry assembles the provider registry from flags and config.
// Registration order matters: the first matching pattern wins, so the
// specific github.com entries precede any custom catch-all.
func buildRegistry(cfg driven.ConfigStore) *services.ProviderRegistry {
	registry := services.NewProviderRegistry()

	owner := setting(flagOwner, cfg, "github.owner", "")
	repo := setting(flagRepo, cfg, "github.repo", "")
	ref := setting(flagRef, cfg, "github.ref", "")
	tokenEnv := cfg.GetString("github.token-env")
	if tokenEnv == "" {
		tokenEnv = "GITHUB_TOKEN"
	}

	gh := github.NewProvider(owner, repo, ref, os.Getenv(tokenEnv))
	registry.Register("github.com", gh)
	registry.Register("www.github.com", gh)

	revision := setting(flagRevision, cfg, "custom.revision", "")
	rawBase := setting(flagRawBase, cfg, "custom.raw-base", "")
	if revision != "" || rawBase != "" {
		pattern := cfg.GetString("custom.host")
		if pattern == "" {
			pattern = "*"
		}
		registry.Register(pattern, custom.NewProvider(revision, rawBase))
	}

	return registry
}
