package semigroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markuspf/libsemigroups/pkg/element"
)

func TestFactorisationKnownWord(t *testing.T) {
	s := newT6(t, WithBatchSize(1024))

	require.Equal(t, Word{1, 2, 2, 2, 3, 2, 4, 1, 2, 2, 3}, s.MinimalFactorisation(5537))
	require.Equal(t, 11, s.LengthConst(5537))
	require.Equal(t, 11, s.CurrentMaxWordLength())

	require.Equal(t, 5539, s.CurrentSize())
	require.Equal(t, 1484, s.CurrentNrRules())

	require.Equal(t, 16, s.Length(7775))
	require.Equal(t, 16, s.CurrentMaxWordLength())
}

func TestFactorisationEvaluatesBack(t *testing.T) {
	s := newT6(t)
	require.Equal(t, 7776, s.Size())

	for p := Pos(0); int(p) < s.CurrentSize(); p += 97 {
		w := s.MinimalFactorisation(p)
		require.Len(t, w, s.LengthConst(p))
		require.True(t, s.WordToElement(w).Equal(s.ElementPos(p)),
			"factorisation of %d does not multiply back", p)
		require.Equal(t, p, s.WordToPos(w))
	}
}

func TestFactorisationIdempotent(t *testing.T) {
	s := newT6(t)
	s.Size()
	require.Equal(t, s.MinimalFactorisation(4321), s.MinimalFactorisation(4321))
}

func TestFactorisationOutOfRange(t *testing.T) {
	s, err := New([]element.Element{
		element.MustTransformation(0, 1, 0),
		element.MustTransformation(0, 1, 2),
	})
	require.NoError(t, err)
	require.Nil(t, s.MinimalFactorisation(10))
}

func TestFactorisationOfElement(t *testing.T) {
	s := newT6(t)
	x := element.MustTransformation(5, 3, 4, 1, 2, 5)
	w := s.FactorisationOf(x)
	require.NotNil(t, w)
	require.True(t, s.WordToElement(w).Equal(x))

	require.Nil(t, s.FactorisationOf(element.MustTransformation(0, 1, 2)))
}

func TestNextRelationCountMatchesNrRules(t *testing.T) {
	s := newT6(t)
	rels := s.Relations()
	require.Len(t, rels, s.NrRules())
}

func TestNextRelationValidity(t *testing.T) {
	x := element.MustPartialPerm(
		[]uint32{0, 1, 2, 3, 5, 6, 9}, []uint32{9, 7, 3, 5, 4, 2, 1}, 11)
	y := element.MustPartialPerm([]uint32{4, 5, 0}, []uint32{10, 0, 1}, 11)
	s, err := New([]element.Element{x, y})
	require.NoError(t, err)

	rels := s.Relations()
	require.Len(t, rels, 9)

	scratch := x.Clone()
	for _, rel := range rels {
		require.Len(t, rel, 3)
		p, l, q := rel[0], Letter(rel[1]), rel[2]
		scratch.Mul(s.ElementPos(p), s.Gen(l))
		require.True(t, scratch.Equal(s.ElementPos(q)),
			"relation (%d, %d, %d) does not hold", p, l, q)
		// every rule is length-reducing: |word(p)| + 1 >= |word(q)|
		require.GreaterOrEqual(t, s.LengthConst(p)+1, s.LengthConst(q))
	}
}

func TestNextRelationDuplicatesFirst(t *testing.T) {
	a := element.MustTransformation(0, 1, 0)
	b := element.MustTransformation(0, 1, 2)
	s, err := New([]element.Element{a, b, a})
	require.NoError(t, err)

	rel := s.NextRelation()
	require.Len(t, rel, 2, "duplicate-generator relations come first")
	require.True(t, s.Gen(Letter(rel[0])).Equal(s.Gen(Letter(rel[1]))))

	count := 1
	for rel = s.NextRelation(); rel != nil; rel = s.NextRelation() {
		require.Len(t, rel, 3)
		count++
	}
	require.Equal(t, s.NrRules(), count)

	// the iterator stays exhausted until reset
	require.Nil(t, s.NextRelation())
	s.ResetNextRelation()
	require.NotNil(t, s.NextRelation())
}

func TestNextRelationBatchSizeIndependence(t *testing.T) {
	coarse := newT6(t)
	fine := newT6(t, WithBatchSize(333))

	a := coarse.Relations()
	b := fine.Relations()
	require.Equal(t, a, b)
}

// Replaying the emitted relations as rewrite rules must reduce every word
// over the generators to the minimal word of the element it represents.
func TestRelationsRewriteToNormalForm(t *testing.T) {
	x := element.MustPartialPerm(
		[]uint32{0, 1, 2, 3, 5, 6, 9}, []uint32{9, 7, 3, 5, 4, 2, 1}, 11)
	y := element.MustPartialPerm([]uint32{4, 5, 0}, []uint32{10, 0, 1}, 11)
	s, err := New([]element.Element{x, y})
	require.NoError(t, err)
	s.Size()

	type rule struct{ lhs, rhs Word }
	var rules []rule
	for _, rel := range s.Relations() {
		if len(rel) == 2 {
			rules = append(rules, rule{lhs: Word{Letter(rel[1])}, rhs: Word{Letter(rel[0])}})
			continue
		}
		lhs := append(append(Word{}, s.MinimalFactorisation(rel[0])...), Letter(rel[1]))
		rules = append(rules, rule{lhs: lhs, rhs: s.MinimalFactorisation(rel[2])})
	}

	rewrite := func(w Word) Word {
		for changed := true; changed; {
			changed = false
			for _, r := range rules {
				for i := 0; i+len(r.lhs) <= len(w); i++ {
					match := true
					for k := range r.lhs {
						if w[i+k] != r.lhs[k] {
							match = false
							break
						}
					}
					if match {
						next := append(Word{}, w[:i]...)
						next = append(next, r.rhs...)
						next = append(next, w[i+len(r.lhs):]...)
						w = next
						changed = true
					}
				}
			}
		}
		return w
	}

	// every word of length at most four over the two generators
	var words []Word
	var gen func(Word)
	gen = func(w Word) {
		if len(w) > 0 {
			words = append(words, append(Word{}, w...))
		}
		if len(w) == 4 {
			return
		}
		gen(append(w, 0))
		gen(append(w, 1))
	}
	gen(Word{})

	for _, w := range words {
		p := s.WordToPos(w)
		require.NotEqual(t, Undefined, p)
		require.Equal(t, s.MinimalFactorisation(p), rewrite(w),
			"word %v does not rewrite to the normal form of element %d", w, p)
	}
}

func TestWordToElement(t *testing.T) {
	s := newT6(t)
	require.Nil(t, s.WordToElement(nil))

	// gens[1] * gens[2]
	w := Word{1, 2}
	got := s.WordToElement(w)
	want := element.MustTransformation(0, 0, 0, 0, 0, 0)
	want.Mul(gensT6()[1], gensT6()[2])
	require.True(t, got.Equal(want))
}
