// Package file implements a read-only, file-based config store using TOML.
// Configuration lives in srclink.toml at the solution root (or an explicit
// path), holding defaults for flags: provider host, raw base, ignore
// patterns, configuration/platform selectors, token environment variable.
package file
