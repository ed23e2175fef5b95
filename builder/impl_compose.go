// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_compose.go - constructors that combine other blocks.
//
//   - Link(a, b, movie): one extra two-person movie; both people must exist.
//   - Prefixed(person, movie, c): runs c with its own id prefixes so several
//     blocks can live side by side in one dataset.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodLink     = "Link"
	methodPrefixed = "Prefixed"
)

// Link returns a Constructor that adds movie starring exactly a and b.
func Link(a, b core.PersonID, movie core.MovieID) Constructor {
	return func(bl *core.Builder, _ builderConfig) error {
		return addMovie(methodLink, bl, movie, a, b)
	}
}

// Prefixed returns a Constructor that runs c with the given id prefixes.
// Empty prefixes keep the enclosing configuration's values.
func Prefixed(person, movie string, c Constructor) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodPrefixed, ErrConstructFailed)
		}
		if person != "" {
			cfg.personPrefix = person
		}
		if movie != "" {
			cfg.moviePrefix = movie
		}

		return c(b, cfg)
	}
}
