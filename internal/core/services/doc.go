// Package services implements the link engine core: provider selection,
// checksum verification, index document generation, per-project
// orchestration and run reporting. Services depend only on domain, ports
// and the logger; everything at the edges arrives through driven ports.
package services
