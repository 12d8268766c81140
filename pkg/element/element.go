// Package element defines the capability boundary between the enumeration
// engine and the concrete element algebras, together with the algebras
// shipped with the library: transformations, partial permutations, boolean
// matrices, bipartitions, partitioned binary relations, and matrices over a
// choice of semirings.
//
// The engine is polymorphic over the Element interface and owns every
// element it stores: generators are deep-copied on ingestion and products are
// written into engine-owned scratch elements. An Element must therefore never
// be mutated by a caller after it has been handed to an engine.
package element

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Element is the capability set every element algebra must provide.
//
// Equal and Hash must be consistent: equal elements hash identically. Less is
// a strict total order on elements of equal degree, used only for the sorted
// element view. Mul writes the product x*y into the receiver, which acts as a
// caller-supplied scratch of the correct degree. Transformation, PartialPerm,
// BooleanMat and Matrix multiply without allocating; Bipartition and PBR
// allocate temporary storage on every Mul. Complexity is a rough cost estimate of Mul,
// used to choose between direct multiplication and Cayley graph traversal.
type Element interface {
	// Degree returns the fixed degree of the element.
	Degree() int

	// Equal reports value equality with other.
	Equal(other Element) bool

	// Less reports whether the element sorts strictly before other in the
	// algebra's natural order. Only meaningful for equal degrees.
	Less(other Element) bool

	// Hash returns a hash value consistent with Equal.
	Hash() uint64

	// Mul sets the receiver to the product x*y. The receiver must have the
	// same degree as x and y and may alias neither.
	Mul(x, y Element)

	// One returns the identity of the monoid containing the element.
	One() Element

	// Clone returns a deep copy.
	Clone() Element

	// Complexity estimates the cost of a single Mul.
	Complexity() int

	// String renders the element for diagnostics.
	String() string
}

// hashWords hashes a slice of uint32 values with xxhash.
func hashWords(vals []uint32) uint64 {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return xxhash.Sum64(buf)
}

// hashInt64s hashes a slice of int64 values with xxhash.
func hashInt64s(vals []int64) uint64 {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	return xxhash.Sum64(buf)
}

// lessUint32s compares two equal-length slices lexicographically.
func lessUint32s(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func equalUint32s(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
