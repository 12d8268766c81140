// Package semigroup implements the Froidure-Pin algorithm for enumerating a
// finitely generated semigroup or monoid of elements.
//
// A Semigroup is constructed from a non-empty list of generators of equal
// degree and discovers every distinct element reachable by
// right-multiplication, assigning each a stable position in shortlex order of
// its minimal word. Alongside the elements it maintains the right and left
// Cayley graphs, a reduced-word flag table, minimal factorisations, and the
// defining relations of a length-reducing confluent rewriting system.
//
// Enumeration is batched and resumable: Enumerate returns once the requested
// limit (or one batch) of new elements has been found and later continues
// exactly where it stopped. Cancellation is cooperative through a
// context.Context sampled once per row; a cancelled run leaves the tables in
// a consistent state.
//
// Generators can be added to an existing semigroup with AddGenerators or
// Closure without restarting the enumeration; previously computed products
// are kept and only the new columns are filled in.
package semigroup
