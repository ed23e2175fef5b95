// SPDX-License-Identifier: MIT
//
// File: dataset.go
// Role: Immutable filmography (people, movies, cast links) and its read-only API.
// Concurrency:
//   - A *Dataset never changes after Builder.Build; every method is safe for
//     any number of concurrent readers without locks.
// Determinism:
//   - Person.Movies, Movie.Stars and all id listings are sorted ascending,
//     so Neighbors enumerates edges in (movie, person) order.

package core

import (
	"sort"
	"strings"
)

// Dataset is the read-only filmography every search runs against.
//
// It replaces process-wide lookup tables with an explicitly constructed value:
// build it once with a Builder, then share the pointer freely.
type Dataset struct {
	people map[PersonID]*Person
	movies map[MovieID]*Movie
	// names maps a lowercased name to every person id carrying it.
	names map[string][]PersonID
	stars int
}

// Person returns the person with the given id.
// The returned record shares its Movies slice with the dataset.
// Complexity: O(1).
func (d *Dataset) Person(id PersonID) (Person, bool) {
	p, ok := d.people[id]
	if !ok {
		return Person{}, false
	}

	return *p, true
}

// Movie returns the movie with the given id.
// The returned record shares its Stars slice with the dataset.
// Complexity: O(1).
func (d *Dataset) Movie(id MovieID) (Movie, bool) {
	m, ok := d.movies[id]
	if !ok {
		return Movie{}, false
	}

	return *m, true
}

// HasPerson reports whether id names a person in the dataset.
func (d *Dataset) HasPerson(id PersonID) bool {
	_, ok := d.people[id]
	return ok
}

// HasMovie reports whether id names a movie in the dataset.
func (d *Dataset) HasMovie(id MovieID) bool {
	_, ok := d.movies[id]
	return ok
}

// PeopleNamed returns the ids of every person whose name equals name,
// compared case-insensitively. The result is a fresh sorted slice.
func (d *Dataset) PeopleNamed(name string) []PersonID {
	ids := d.names[strings.ToLower(name)]
	out := make([]PersonID, len(ids))
	copy(out, ids)

	return out
}

// PersonIDs returns all person ids in ascending order.
// Complexity: O(P log P).
func (d *Dataset) PersonIDs() []PersonID {
	ids := make([]PersonID, 0, len(d.people))
	for id := range d.people {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NumPeople returns the number of people.
func (d *Dataset) NumPeople() int { return len(d.people) }

// NumMovies returns the number of movies.
func (d *Dataset) NumMovies() int { return len(d.movies) }

// NumStars returns the number of distinct (person, movie) cast links.
func (d *Dataset) NumStars() int { return d.stars }

// Neighbors returns every (movie, co-star) pair reachable from person in one
// step: for each movie the person appears in, one Edge per cast member.
//
// The person itself is part of each of its movies' casts and is therefore
// listed too; searches discard it through their visited sets. An unknown id
// yields nil; callers are expected to validate ids with HasPerson first.
//
// Order: movies ascending, then cast ascending within a movie.
// Complexity: O(Σ |cast(m)|) over the person's movies; allocates the result.
func (d *Dataset) Neighbors(person PersonID) []Edge {
	p, ok := d.people[person]
	if !ok {
		return nil
	}

	n := 0
	for _, mid := range p.Movies {
		n += len(d.movies[mid].Stars)
	}
	out := make([]Edge, 0, n)
	for _, mid := range p.Movies {
		for _, pid := range d.movies[mid].Stars {
			out = append(out, Edge{Movie: mid, Person: pid})
		}
	}

	return out
}
