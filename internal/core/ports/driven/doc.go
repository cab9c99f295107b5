// Package driven defines the outbound ports of the link engine: the
// interfaces the core consumes, implemented by adapters at the edges
// (revision providers, the external indexer, symbol readers, project
// discovery, configuration).
//
// # Import Rules
//
//   - Can Import: domain, standard library
//   - Cannot Import: services, adapters
package driven
