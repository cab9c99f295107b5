// Package github implements the revision provider for GitHub-hosted
// repositories. The revision stamp is the commit SHA the configured ref
// points at, resolved through the GitHub API; raw content is served from
// raw.githubusercontent.com.
package github
