package semigroup

import (
	"context"

	"github.com/markuspf/libsemigroups/pkg/element"
)

// Relation is one rule of the rewriting system defining the semigroup.
//
// A length-two relation [l1, l2] identifies two letters whose generators are
// equal. A length-three relation [p, l, q] states that the element at
// position p times generator l equals the element at position q; replaying
// these as rewrite rules reduces every word over the generators to a unique
// normal form, and every rule is length-reducing.
type Relation []Pos

// MinimalFactorisation returns a minimal word over the generator letters
// whose product is the element at the given position, enumerating the
// semigroup until that position is known. Returns nil if the semigroup has
// fewer elements.
//
// The word is rebuilt from the first-letter and suffix tables, so repeated
// calls yield the same word.
func (s *Semigroup) MinimalFactorisation(pos Pos) Word {
	if pos >= s.nr && !s.IsDone() {
		s.Enumerate(context.Background(), satAdd(pos, 1))
	}
	if pos >= s.nr {
		return nil
	}
	var w Word
	for pos != Undefined {
		w = append(w, s.first[pos])
		pos = s.suffix[pos]
	}
	return w
}

// Factorisation returns a word over the generator letters equal to the
// element at the given position. The word is minimal.
func (s *Semigroup) Factorisation(pos Pos) Word {
	return s.MinimalFactorisation(pos)
}

// FactorisationOf returns a minimal word equal to x, or nil if x is not an
// element of the semigroup. The semigroup is enumerated as far as necessary.
func (s *Semigroup) FactorisationOf(x element.Element) Word {
	p := s.Position(x)
	if p == Undefined {
		return nil
	}
	return s.MinimalFactorisation(p)
}

// WordToPos returns the position of the product of the word, following rows
// of the right Cayley graph. Returns Undefined for the empty word or when a
// required row has not been computed yet.
func (s *Semigroup) WordToPos(w Word) Pos {
	if len(w) == 0 {
		return Undefined
	}
	out := s.letterToPos[w[0]]
	for _, l := range w[1:] {
		out = s.right.Get(int(out), int(l))
		if out == Undefined {
			return Undefined
		}
	}
	return out
}

// WordToElement multiplies out the word over the generators and returns the
// resulting element, which the caller owns. Returns nil for the empty word.
func (s *Semigroup) WordToElement(w Word) element.Element {
	if len(w) == 0 {
		return nil
	}
	out := s.gens[w[0]].Clone()
	if len(w) == 1 {
		return out
	}
	scratch := s.tmp.Clone()
	for _, l := range w[1:] {
		scratch.Mul(out, s.gens[l])
		out, scratch = scratch, out
	}
	return out
}

// ResetNextRelation rewinds the relation iterator: the next call to
// NextRelation returns the first relation of the presentation.
func (s *Semigroup) ResetNextRelation() {
	s.relationPos = Undefined
	s.relationGen = 0
}

// NextRelation returns the next relation of the presentation defining the
// semigroup, or nil when all relations have been returned. The semigroup is
// fully enumerated on the first call.
//
// Relations for duplicate generators come first, as two-letter relations;
// then one three-element relation for every non-reduced (position, letter)
// pair not already implied by the pair's suffix, in position-then-letter
// order. All relations of length two are produced before any relation of
// length three, making the sequence a length-reducing confluent rewriting
// system.
func (s *Semigroup) NextRelation() Relation {
	if !s.IsDone() {
		s.Enumerate(context.Background(), LimitMax)
	}
	if s.relationPos == s.nr {
		return nil
	}
	if s.relationPos == Undefined {
		if int(s.relationGen) < len(s.duplicateGens) {
			d := s.duplicateGens[s.relationGen]
			s.relationGen++
			return Relation{Pos(d.earlier), Pos(d.later)}
		}
		s.relationGen = 0
		s.relationPos = 0
	}

	nrgens := len(s.gens)
	for s.relationPos < s.nr {
		for int(s.relationGen) < nrgens {
			if !s.reduced.Get(int(s.relationPos), int(s.relationGen)) &&
				(s.suffix[s.relationPos] == Undefined ||
					s.reduced.Get(int(s.suffix[s.relationPos]), int(s.relationGen))) {
				rel := Relation{
					s.relationPos,
					Pos(s.relationGen),
					s.right.Get(int(s.relationPos), int(s.relationGen)),
				}
				s.relationGen++
				return rel
			}
			s.relationGen++
		}
		s.relationGen = 0
		s.relationPos++
	}
	return nil
}

// Relations returns every relation of the presentation, fully enumerating
// the semigroup. The relation cursor is reset on both sides of the call.
func (s *Semigroup) Relations() []Relation {
	s.ResetNextRelation()
	var out []Relation
	for rel := s.NextRelation(); rel != nil; rel = s.NextRelation() {
		out = append(out, rel)
	}
	s.ResetNextRelation()
	return out
}
