package semigroup

import (
	"context"
	"sort"

	"github.com/markuspf/libsemigroups/pkg/element"
)

// sortElements builds the secondary view of the elements ordered by the
// algebra's natural order, and its inverse. Built once, on first request,
// after full enumeration; never mutated while enumerating.
func (s *Semigroup) sortElements() {
	if s.sorted != nil {
		return
	}
	s.Enumerate(context.Background(), LimitMax)
	s.sorted = make([]Pos, s.nr)
	for p := range s.sorted {
		s.sorted[p] = Pos(p)
	}
	sort.SliceStable(s.sorted, func(a, b int) bool {
		return s.elements[s.sorted[a]].Less(s.elements[s.sorted[b]])
	})
	s.posSorted = make([]Pos, s.nr)
	for rank, p := range s.sorted {
		s.posSorted[p] = Pos(rank)
	}
}

// SortedPosition returns the rank of x among the elements sorted by the
// algebra's natural order, or Undefined if x is not an element. The
// semigroup is fully enumerated on the first call.
func (s *Semigroup) SortedPosition(x element.Element) Pos {
	return s.PositionToSortedPosition(s.Position(x))
}

// PositionToSortedPosition converts a position in discovery order to the
// element's rank in sorted order, or Undefined if pos is out of range.
func (s *Semigroup) PositionToSortedPosition(pos Pos) Pos {
	s.sortElements()
	if pos >= s.nr {
		return Undefined
	}
	return s.posSorted[pos]
}

// SortedAt returns the element with the given rank in sorted order, or nil
// if the rank is out of range.
func (s *Semigroup) SortedAt(rank Pos) element.Element {
	s.sortElements()
	if rank >= s.nr {
		return nil
	}
	return s.elements[s.sorted[rank]]
}

// SortedElements returns the positions of the elements in the algebra's
// natural order. The returned slice is owned by the semigroup.
func (s *Semigroup) SortedElements() []Pos {
	s.sortElements()
	return s.sorted
}
