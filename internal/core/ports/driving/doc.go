// Package driving defines the inbound ports of the link engine: the
// interfaces the CLI drives the core through.
package driving
