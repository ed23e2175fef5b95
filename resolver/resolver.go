// SPDX-License-Identifier: MIT

// Package resolver turns a typed name into a person id.
//
// Lookup is case-insensitive. A unique match resolves immediately; several
// people sharing a name are handed to a Prompter, which picks one of them.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/degrees/core"
)

var (
	// ErrUnknownName is returned when no person carries the name.
	ErrUnknownName = errors.New("resolver: person not found")

	// ErrNotResolved is returned when an ambiguous name was not narrowed to
	// one of its candidates.
	ErrNotResolved = errors.New("resolver: ambiguous name not resolved")
)

// Prompter chooses among people that share a name.
// Returning an id that is not a candidate counts as no choice.
type Prompter interface {
	Choose(name string, candidates []core.Person) (core.PersonID, error)
}

// Directory is the subset of *core.Dataset the resolver reads.
type Directory interface {
	PeopleNamed(name string) []core.PersonID
	Person(id core.PersonID) (core.Person, bool)
}

// Resolver resolves names against a Directory.
type Resolver struct {
	dir    Directory
	prompt Prompter
}

// New returns a Resolver. A nil prompter makes every ambiguous name fail
// with ErrNotResolved.
func New(dir Directory, p Prompter) *Resolver {
	return &Resolver{dir: dir, prompt: p}
}

// Resolve returns the id of the person called name.
func (r *Resolver) Resolve(name string) (core.PersonID, error) {
	name = strings.TrimSpace(name)
	ids := r.dir.PeopleNamed(name)
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	case 1:
		return ids[0], nil
	}
	if r.prompt == nil {
		return "", fmt.Errorf("%w: %q matches %d people", ErrNotResolved, name, len(ids))
	}

	candidates := make([]core.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.dir.Person(id); ok {
			candidates = append(candidates, p)
		}
	}
	chosen, err := r.prompt.Choose(name, candidates)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrNotResolved, name, err)
	}
	for _, id := range ids {
		if id == chosen {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %q is not one of the %q candidates", ErrNotResolved, chosen, name)
}
