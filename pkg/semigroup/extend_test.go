package semigroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markuspf/libsemigroups/pkg/element"
	"github.com/markuspf/libsemigroups/pkg/errors"
)

func TestAddGeneratorsOneAtATime(t *testing.T) {
	gens := gensT6()

	s, err := New(gens[:1])
	require.NoError(t, err)
	require.Equal(t, 1, s.Size())
	require.Equal(t, 1, s.NrIdempotents())
	require.Equal(t, 1, s.NrGens())
	require.Equal(t, 1, s.NrRules())

	require.NoError(t, s.AddGenerators(gens[1:2]))
	require.Equal(t, 2, s.Size())
	require.Equal(t, 1, s.NrIdempotents())
	require.Equal(t, 2, s.NrGens())
	require.Equal(t, 4, s.NrRules())

	require.NoError(t, s.AddGenerators(gens[2:3]))
	require.Equal(t, 120, s.Size())
	require.Equal(t, 1, s.NrIdempotents())
	require.Equal(t, 3, s.NrGens())
	require.Equal(t, 25, s.NrRules())

	require.NoError(t, s.AddGenerators(gens[3:4]))
	require.Equal(t, 1546, s.Size())
	require.Equal(t, 32, s.NrIdempotents())
	require.Equal(t, 4, s.NrGens())
	require.Equal(t, 495, s.NrRules())

	require.NoError(t, s.AddGenerators(gens[4:5]))
	require.Equal(t, 7776, s.Size())
	require.Equal(t, 537, s.NrIdempotents())
	require.Equal(t, 5, s.NrGens())
	require.Equal(t, 2459, s.NrRules())

	require.Equal(t, Pos(0), s.LetterToPos(0))
	require.Equal(t, Pos(1), s.LetterToPos(1))
	require.Equal(t, Pos(2), s.LetterToPos(2))
	require.Equal(t, Pos(120), s.LetterToPos(3))
	require.Equal(t, Pos(1546), s.LetterToPos(4))
}

// Adding generators to a partially enumerated semigroup must agree, as a set
// of elements, with constructing from the full generating set.
func TestAddGeneratorsPartiallyEnumerated(t *testing.T) {
	gens := gensT6()

	s, err := New(gens[:3], WithBatchSize(64))
	require.NoError(t, err)
	s.Enumerate(t.Context(), 64)
	require.False(t, s.IsDone())

	require.NoError(t, s.AddGenerators(gens[3:]))
	require.Equal(t, 7776, s.Size())
	require.Equal(t, 2459, s.NrRules())

	fresh := newT6(t)
	require.Equal(t, fresh.Size(), s.CurrentSize())
	for p := Pos(0); int(p) < s.CurrentSize(); p++ {
		require.True(t, fresh.TestMembership(s.ElementPos(p)),
			"element at position %d missing from fresh enumeration", p)
	}
}

func TestAddGeneratorsEmptyIsNoop(t *testing.T) {
	s := newT6(t)
	require.NoError(t, s.AddGenerators(nil))
	require.Equal(t, 5, s.NrGens())
}

func TestAddGeneratorsDegreeMismatch(t *testing.T) {
	s := newT6(t)
	err := s.AddGenerators([]element.Element{element.MustTransformation(0, 1, 2)})
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeDegreeMismatch))
}

func TestAddGeneratorsDuplicate(t *testing.T) {
	gens := gensT6()
	s, err := New(gens[:2])
	require.NoError(t, err)
	require.Equal(t, 2, s.Size())

	// re-adding an existing generator adds a letter but no element
	require.NoError(t, s.AddGenerators(gens[1:2]))
	require.Equal(t, 3, s.NrGens())
	require.Equal(t, 2, s.Size())
	require.Equal(t, s.LetterToPos(1), s.LetterToPos(2))
}

func TestClosureSkipsRedundantGenerators(t *testing.T) {
	gens := gensT6()
	s, err := New(gens[:4])
	require.NoError(t, err)
	require.Equal(t, 1546, s.Size())

	// an element already in the semigroup is filtered out ...
	redundant := s.ElementPos(70).Clone()
	require.NoError(t, s.Closure([]element.Element{redundant}))
	require.Equal(t, 4, s.NrGens())
	require.Equal(t, 1546, s.Size())

	// ... while a genuinely new generator is added
	require.NoError(t, s.Closure(gens[4:5]))
	require.Equal(t, 5, s.NrGens())
	require.Equal(t, 7776, s.Size())
	require.Equal(t, 2459, s.NrRules())
}

func TestClosureOrderDependence(t *testing.T) {
	gens := gensT6()
	s, err := New(gens[:4])
	require.NoError(t, err)
	require.Equal(t, 1546, s.Size())

	// the first candidate generates the second: only the first is added
	first := gens[4]
	second := element.MustTransformation(0, 0, 0, 0, 0, 0)
	require.NoError(t, s.Closure([]element.Element{first, second}))
	require.Equal(t, 5, s.NrGens())
	require.Equal(t, 7776, s.Size())
}

func TestCopyAddGeneratorsLeavesOriginal(t *testing.T) {
	gens := gensT6()
	s, err := New(gens[:4])
	require.NoError(t, err)
	require.Equal(t, 1546, s.Size())

	c, err := s.CopyAddGenerators(gens[4:5])
	require.NoError(t, err)
	require.Equal(t, 7776, c.Size())
	require.Equal(t, 5, c.NrGens())

	require.Equal(t, 1546, s.CurrentSize())
	require.Equal(t, 4, s.NrGens())
}

func TestCopyClosureLeavesOriginal(t *testing.T) {
	gens := gensT6()
	s, err := New(gens[:4])
	require.NoError(t, err)

	c, err := s.CopyClosure(gens[4:5])
	require.NoError(t, err)
	require.Equal(t, 7776, c.Size())
	require.Equal(t, 4, s.NrGens())
	require.Equal(t, 1546, s.CurrentSize())
}

func TestCopyIsIndependent(t *testing.T) {
	s := newT6(t, WithBatchSize(256))
	s.Enumerate(t.Context(), 256)

	c := s.Copy()
	require.Equal(t, s.CurrentSize(), c.CurrentSize())
	require.Equal(t, s.CurrentNrRules(), c.CurrentNrRules())

	require.Equal(t, 7776, c.Size())
	require.Less(t, s.CurrentSize(), 7776, "enumerating the copy must not advance the original")

	require.Equal(t, 7776, s.Size())
	require.Equal(t, c.CurrentNrRules(), s.CurrentNrRules())
}
