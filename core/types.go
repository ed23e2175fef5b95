// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Identifier types, records, the Edge/Path value types and sentinel errors.
// Policy:
//   - Ids are opaque strings; equality is the only operation the searches need.
//   - Records are owned by the Dataset and must be treated as read-only.
//   - Errors are package-level sentinels; wrap with %w, branch with errors.Is.

package core

import "errors"

// Sentinel errors for dataset construction and path verification.
var (
	// ErrEmptyID indicates that a person or movie id is the empty string.
	ErrEmptyID = errors.New("core: id is empty")

	// ErrPersonNotFound indicates an operation referenced an unknown person.
	ErrPersonNotFound = errors.New("core: person not found")

	// ErrMovieNotFound indicates an operation referenced an unknown movie.
	ErrMovieNotFound = errors.New("core: movie not found")

	// ErrDuplicateID indicates a person or movie id was registered twice.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrBrokenPath indicates a Path does not walk from its source to its
	// target over co-starring edges of the view it was checked against.
	ErrBrokenPath = errors.New("core: path is not a valid co-star chain")
)

// PersonID identifies a person in the dataset.
type PersonID string

// MovieID identifies a movie in the dataset.
type MovieID string

// Person is a single row of people.csv plus the movies the person starred in.
//
// Movies is sorted ascending and must not be mutated by callers.
type Person struct {
	ID     PersonID
	Name   string
	Birth  string
	Movies []MovieID
}

// Movie is a single row of movies.csv plus its cast.
//
// Stars is sorted ascending and must not be mutated by callers.
type Movie struct {
	ID    MovieID
	Title string
	Year  string
	Stars []PersonID
}

// Edge is one implicit graph edge as seen from a subject person:
// Person co-starred with the subject in Movie.
//
// Edges are symmetric in the data but produced one direction per query;
// A→B and B→A are derived separately and never stored.
type Edge struct {
	Movie  MovieID  `json:"movie"`
	Person PersonID `json:"person"`
}

// Path is the ordered list of steps from a source (exclusive) to a target
// (inclusive). Step i says "take Movie to reach Person".
//
// An empty, non-nil Path means source == target. Searches report "not
// connected" through their Found flag and a nil Path.
type Path []Edge
