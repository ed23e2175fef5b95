// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// helpers.go - shared row emitters used by the constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// addPeople registers people 0..n-1 under cfg's person prefix.
func addPeople(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.person(i)
		if err := b.AddPerson(id, "Person "+string(id), ""); err != nil {
			return fmt.Errorf("%s: AddPerson(%s): %v: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// addMovie registers a movie and casts every given person in it.
func addMovie(method string, b *core.Builder, id core.MovieID, cast ...core.PersonID) error {
	if err := b.AddMovie(id, "Movie "+string(id), ""); err != nil {
		return fmt.Errorf("%s: AddMovie(%s): %v: %w", method, id, err, ErrConstructFailed)
	}
	for _, p := range cast {
		if err := b.AddStar(p, id); err != nil {
			return fmt.Errorf("%s: AddStar(%s,%s): %v: %w", method, p, id, err, ErrConstructFailed)
		}
	}

	return nil
}
