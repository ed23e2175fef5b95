// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable staging area that assembles a Dataset row by row.
// Policy:
//   - People and movies must be registered before the cast links that reference them.
//   - Duplicate cast links are idempotent.
//   - Build freezes the data: lists are sorted once and the builder is reset.
// Concurrency:
//   - A Builder is not safe for concurrent use; the Dataset it returns is.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Builder collects people, movies and cast links and produces an immutable Dataset.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	people map[PersonID]*Person
	movies map[MovieID]*Movie

	// cast links staged as sets until Build sorts them into slices
	personMovies map[PersonID]map[MovieID]struct{}
	movieStars   map[MovieID]map[PersonID]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		people:       make(map[PersonID]*Person),
		movies:       make(map[MovieID]*Movie),
		personMovies: make(map[PersonID]map[MovieID]struct{}),
		movieStars:   make(map[MovieID]map[PersonID]struct{}),
	}
}

// AddPerson registers a person.
// Returns ErrEmptyID for an empty id and ErrDuplicateID if the id is known.
// Complexity: O(1).
func (b *Builder) AddPerson(id PersonID, name, birth string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := b.people[id]; ok {
		return fmt.Errorf("person %q: %w", id, ErrDuplicateID)
	}
	b.people[id] = &Person{ID: id, Name: name, Birth: birth}
	b.personMovies[id] = make(map[MovieID]struct{})

	return nil
}

// AddMovie registers a movie.
// Returns ErrEmptyID for an empty id and ErrDuplicateID if the id is known.
// Complexity: O(1).
func (b *Builder) AddMovie(id MovieID, title, year string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := b.movies[id]; ok {
		return fmt.Errorf("movie %q: %w", id, ErrDuplicateID)
	}
	b.movies[id] = &Movie{ID: id, Title: title, Year: year}
	b.movieStars[id] = make(map[PersonID]struct{})

	return nil
}

// AddStar links a person to a movie in both directions.
// Dangling references return ErrPersonNotFound or ErrMovieNotFound and leave
// the builder unchanged, so a loader can count and skip the row.
// Complexity: O(1).
func (b *Builder) AddStar(person PersonID, movie MovieID) error {
	pm, ok := b.personMovies[person]
	if !ok {
		return fmt.Errorf("star %q in %q: %w", person, movie, ErrPersonNotFound)
	}
	ms, ok := b.movieStars[movie]
	if !ok {
		return fmt.Errorf("star %q in %q: %w", person, movie, ErrMovieNotFound)
	}
	pm[movie] = struct{}{}
	ms[person] = struct{}{}

	return nil
}

// HasPerson reports whether id has been registered.
func (b *Builder) HasPerson(id PersonID) bool {
	_, ok := b.people[id]
	return ok
}

// HasMovie reports whether id has been registered.
func (b *Builder) HasMovie(id MovieID) bool {
	_, ok := b.movies[id]
	return ok
}

// Build freezes everything added so far into a Dataset and resets the builder.
// Complexity: O(P + M + S log S) for S cast links.
func (b *Builder) Build() *Dataset {
	d := &Dataset{
		people: b.people,
		movies: b.movies,
		names:  make(map[string][]PersonID),
	}

	for id, p := range d.people {
		p.Movies = sortedMovies(b.personMovies[id])
		d.stars += len(p.Movies)
		key := strings.ToLower(p.Name)
		d.names[key] = append(d.names[key], id)
	}
	for id, m := range d.movies {
		m.Stars = sortedPeople(b.movieStars[id])
	}
	for _, ids := range d.names {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	*b = *NewBuilder()

	return d
}

func sortedMovies(set map[MovieID]struct{}) []MovieID {
	out := make([]MovieID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortedPeople(set map[PersonID]struct{}) []PersonID {
	out := make([]PersonID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
