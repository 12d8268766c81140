package semigroup

import (
	"context"

	"github.com/markuspf/libsemigroups/pkg/element"
	"github.com/markuspf/libsemigroups/pkg/errors"
	"github.com/markuspf/libsemigroups/pkg/recvec"
)

// AddGenerators adds the elements of coll as new generators, keeping every
// previously enumerated element and product. Each element of coll becomes a
// new letter whether or not it is already an element of the semigroup.
//
// The word data (first, final, prefix, suffix, length) of existing positions
// is recomputed against the extended generating set, as are the reduced
// flags, the length index, and the rule count; the relation cursor is reset.
// Existing columns of the Cayley graphs are kept. On return, every element
// that had been multiplied by all old generators has also been multiplied by
// the new ones; the remaining work is picked up by Enumerate.
func (s *Semigroup) AddGenerators(coll []element.Element) error {
	if len(coll) == 0 {
		return nil
	}
	for i, x := range coll {
		if x.Degree() != s.degree {
			return errors.New(errors.ErrCodeDegreeMismatch,
				"new generator %d has degree %d, want %d", i, x.Degree(), s.degree)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	oldNrGens := len(s.gens)
	oldNr := s.nr
	nrOldLeft := s.pos // old elements whose right rows were already computed

	// oldNew[p] records whether old position p has been reached in the new
	// enumeration order; generator positions are reached from the start
	oldNew := make([]bool, oldNr)
	for _, p := range s.letterToPos {
		oldNew[p] = true
	}

	for _, x := range coll {
		cp := x.Clone()
		q, ok := s.find(cp)
		switch {
		case !ok:
			// genuinely new element
			s.first = append(s.first, Letter(len(s.gens)))
			s.final = append(s.final, Letter(len(s.gens)))
			s.gens = append(s.gens, cp)
			s.isOne(cp, s.nr)
			s.elements = append(s.elements, cp)
			s.prefix = append(s.prefix, Undefined)
			s.suffix = append(s.suffix, Undefined)
			s.length = append(s.length, 1)
			s.multiplied = append(s.multiplied, false)
			s.letterToPos = append(s.letterToPos, s.nr)
			s.insert(cp, s.nr)
			s.nr++
		case q < oldNr && !oldNew[q]:
			// an old non-generator element is promoted to a generator; its
			// minimal word shrinks to the new letter
			s.gens = append(s.gens, cp)
			s.first[q] = Letter(len(s.gens) - 1)
			s.final[q] = Letter(len(s.gens) - 1)
			s.length[q] = 1
			s.prefix[q] = Undefined
			s.suffix[q] = Undefined
			s.letterToPos = append(s.letterToPos, q)
			oldNew[q] = true
		default:
			// duplicate of an existing generator
			s.gens = append(s.gens, cp)
			s.letterToPos = append(s.letterToPos, q)
			s.duplicateGens = append(s.duplicateGens,
				duplicatePair{earlier: s.first[q], later: Letter(len(s.gens) - 1)})
		}
	}

	// reset everything the new letters invalidate
	s.idempotentsFound = false
	s.idempotents = nil
	s.isIdempotent = nil
	s.sorted = nil
	s.posSorted = nil
	s.nrRules = len(s.duplicateGens)
	s.pos = 0
	s.wordlen = 0
	s.relationPos = Undefined
	s.relationGen = 0

	// re-seed the enumeration order with the distinct generator positions in
	// letter order
	s.index = s.index[:0]
	seeded := make([]bool, s.nr)
	for _, p := range s.letterToPos {
		if !seeded[p] {
			seeded[p] = true
			s.index = append(s.index, p)
		}
	}
	s.lenindex = s.lenindex[:0]
	s.lenindex = append(s.lenindex, 0, Pos(len(s.index)))

	// grow the tables: columns for the new letters, rows for the new
	// generators; the reduced flags are wiped and rebuilt below
	s.right.AddCols(len(s.gens) - s.right.NrCols())
	s.left.AddCols(len(s.gens) - s.left.NrCols())
	s.right.AddRows(int(s.nr) - s.right.NrRows())
	s.left.AddRows(int(s.nr) - s.left.NrRows())
	s.reduced = recvec.New(len(s.gens), int(s.nr), false)

	// Walk the semigroup in the new order until every old element that had
	// been fully multiplied has been multiplied by the new letters too. Old
	// rows reuse their retained right columns; everything else goes through
	// closureUpdate.
	nrgens := len(s.gens)
	for nrOldLeft > 0 && s.pos < Pos(len(s.index)) {
		for s.pos < s.lenindex[s.wordlen+1] && nrOldLeft > 0 {
			i := s.index[s.pos]
			b := s.first[i]
			sfx := s.suffix[i]
			if s.multiplied[i] {
				nrOldLeft--
				for j := 0; j < oldNrGens; j++ {
					k := s.right.Get(int(i), j)
					if !oldNew[k] {
						// first sighting of k in the new order
						s.isOne(s.elements[k], k)
						s.first[k] = b
						s.final[k] = Letter(j)
						s.length[k] = Pos(s.wordlen + 2)
						s.prefix[k] = i
						s.reduced.Set(int(i), j, true)
						if s.wordlen == 0 {
							s.suffix[k] = s.letterToPos[j]
						} else {
							s.suffix[k] = s.right.Get(int(sfx), j)
						}
						s.index = append(s.index, k)
						oldNew[k] = true
					} else if sfx == Undefined || s.reduced.Get(int(sfx), j) {
						s.nrRules++
					}
				}
				for j := oldNrGens; j < nrgens; j++ {
					s.closureUpdate(i, Letter(j), b, sfx, oldNew, oldNr)
				}
			} else {
				s.multiplied[i] = true
				for j := 0; j < nrgens; j++ {
					s.closureUpdate(i, Letter(j), b, sfx, oldNew, oldNr)
				}
			}
			s.pos++
		}
		if s.pos == s.lenindex[s.wordlen+1] {
			if s.wordlen == 0 {
				for k := Pos(0); k < s.pos; k++ {
					i := s.index[k]
					b := s.final[i]
					for j := 0; j < nrgens; j++ {
						s.left.Set(int(i), j, s.right.Get(int(s.letterToPos[j]), int(b)))
					}
				}
			} else {
				for k := s.lenindex[s.wordlen]; k < s.pos; k++ {
					i := s.index[k]
					p := s.prefix[i]
					b := s.final[i]
					for j := 0; j < nrgens; j++ {
						s.left.Set(int(i), j, s.right.Get(int(s.left.Get(int(p), j)), int(b)))
					}
				}
			}
			s.wordlen++
			s.lenindex = append(s.lenindex, Pos(len(s.index)))
		}
	}
	return nil
}

// closureUpdate computes the product of the element at position i by
// generator j during AddGenerators. It mirrors the main loop's row update
// but may also re-adopt an old position the new order has not reached yet.
func (s *Semigroup) closureUpdate(i Pos, j, b Letter, sfx Pos, oldNew []bool, oldNr Pos) {
	if s.wordlen != 0 && !s.reduced.Get(int(sfx), int(j)) {
		r := s.right.Get(int(sfx), int(j))
		switch {
		case s.foundOne && r == s.posOne:
			s.right.Set(int(i), int(j), s.letterToPos[b])
		case s.prefix[r] != Undefined:
			s.right.Set(int(i), int(j),
				s.right.Get(int(s.left.Get(int(s.prefix[r]), int(b))), int(s.final[r])))
		default:
			s.right.Set(int(i), int(j),
				s.right.Get(int(s.letterToPos[b]), int(s.final[r])))
		}
		return
	}
	s.tmp.Mul(s.elements[i], s.gens[j])
	q, ok := s.find(s.tmp)
	switch {
	case !ok:
		suffix := s.letterToPos[j]
		if s.wordlen != 0 {
			suffix = s.right.Get(int(sfx), int(j))
		}
		s.right.Set(int(i), int(j), s.nr)
		s.reduced.Set(int(i), int(j), true)
		s.pushNew(s.tmp.Clone(), b, j, Pos(s.wordlen+2), i, suffix)
	case q < oldNr && !oldNew[q]:
		// old element reached for the first time in the new order: give it
		// its new word data in place
		s.isOne(s.elements[q], q)
		s.first[q] = b
		s.final[q] = j
		s.length[q] = Pos(s.wordlen + 2)
		s.prefix[q] = i
		s.reduced.Set(int(i), int(j), true)
		if s.wordlen == 0 {
			s.suffix[q] = s.letterToPos[j]
		} else {
			s.suffix[q] = s.right.Get(int(sfx), int(j))
		}
		s.right.Set(int(i), int(j), q)
		s.index = append(s.index, q)
		oldNew[q] = true
	default:
		s.right.Set(int(i), int(j), q)
		s.nrRules++
	}
}

// Closure adds those elements of coll that are not already elements of the
// semigroup, one at a time and in the order given, enumerating between
// additions so that later candidates are tested against the grown semigroup.
// If two candidates are mutually derivable the earlier one wins.
func (s *Semigroup) Closure(coll []element.Element) error {
	for i, x := range coll {
		if x.Degree() != s.degree {
			return errors.New(errors.ErrCodeDegreeMismatch,
				"new generator %d has degree %d, want %d", i, x.Degree(), s.degree)
		}
	}
	for _, x := range coll {
		if !s.TestMembership(x) {
			if err := s.AddGenerators([]element.Element{x}); err != nil {
				return err
			}
		}
	}
	return nil
}

// CopyAddGenerators returns a new semigroup equal to a copy of s with coll
// added as generators; s itself is left untouched.
func (s *Semigroup) CopyAddGenerators(coll []element.Element) (*Semigroup, error) {
	c := s.Copy()
	if err := c.AddGenerators(coll); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyClosure fully enumerates s, then returns the closure of a copy of s
// under coll; s itself gains no generators.
func (s *Semigroup) CopyClosure(coll []element.Element) (*Semigroup, error) {
	s.Enumerate(context.Background(), LimitMax)
	c := s.Copy()
	if err := c.Closure(coll); err != nil {
		return nil, err
	}
	return c, nil
}
