// Package core defines the filmography data model and the read-only graph
// contract the search strategies run against.
//
// The co-star graph G = (V,E) is implicit:
//
//   - V is the set of people.
//   - {a,b} ∈ E iff a and b appear in the cast of at least one common movie;
//     the movie is the label of the edge.
//
// G is never materialized. A Dataset keeps two lookups (person → movies and
// movie → cast) and derives a person's edges on demand in Neighbors.
//
// Building a dataset:
//
//	b := core.NewBuilder()
//	_ = b.AddPerson("102", "Kevin Bacon", "1958")
//	_ = b.AddPerson("158", "Tom Hanks", "1956")
//	_ = b.AddMovie("112384", "Apollo 13", "1995")
//	_ = b.AddStar("102", "112384")
//	_ = b.AddStar("158", "112384")
//	ds := b.Build()
//
// Once built, a *Dataset is immutable and safe for concurrent readers, so any
// number of independent searches may share it.
//
// Determinism:
//
//	Neighbors enumerates edges sorted by movie id, then person id. Searches
//	are correct for any order; the fixed order only makes tie-breaking among
//	several equally short paths reproducible.
//
// Errors:
//
//	ErrEmptyID        - empty person or movie id.
//	ErrDuplicateID    - person or movie registered twice.
//	ErrPersonNotFound - cast link or lookup references an unknown person.
//	ErrMovieNotFound  - cast link references an unknown movie.
//	ErrBrokenPath     - Path.Verify found a step that is not a co-star edge.
package core
