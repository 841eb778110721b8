// Package assets turns image references from the question bank into URLs.
package assets

import "strings"

// Resolver prefixes relative asset references with a fixed base URL.
type Resolver struct {
	base string
}

// New returns a resolver for base. An empty base resolves to "/".
func New(base string) Resolver {
	if base == "" {
		base = "/"
	}
	return Resolver{base: base}
}

// Base returns the configured base URL.
func (r Resolver) Base() string {
	return r.base
}

// Resolve concatenates the base URL and rel with at most one leading
// slash removed from rel.
func (r Resolver) Resolve(rel string) string {
	return r.base + strings.TrimPrefix(rel, "/")
}
