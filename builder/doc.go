// Package builder provides deterministic, functional-options style fixture
// constructors for filmography datasets. Tests, examples, benchmarks and the
// `degrees bench` command use it to get graphs of a known shape without CSV
// files.
//
// The package offers:
//
//   - BuildDataset(bopts, cons...): one orchestrator that resolves options,
//     runs constructors in order on a fresh core.Builder and freezes the result.
//   - Constructors (each a Constructor closure):
//     – Chain(n):          p0 ─m0─ p1 ─m1─ … ─ p(n-1); one two-person movie per link.
//     – Star(n):           hub p0 co-stars once with each of p1..p(n-1).
//     – Ensemble(n):       one movie m0 whose cast is p0..p(n-1).
//     – Tree(depth, k):    complete k-ary tree of people, one movie per tree edge.
//     – RandomCast(P,M,K): P people, M movies, each movie casting K distinct
//     people drawn with the configured RNG.
//     – Link(a, b, m):     an extra movie m starring exactly a and b.
//     – Prefixed(p, m, c): runs c with its own id prefixes, to place several
//     disjoint components in one dataset.
//   - Options: WithSeed, WithRand, WithPrefix.
//
// Ids are "<prefix><index>" with default prefixes "p" for people and "m" for
// movies. Names are "Person <id>", titles "Movie <id>".
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give identical datasets.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name.
package builder
