package semigroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markuspf/libsemigroups/pkg/element"
)

func TestIdempotentsMatchBruteForce(t *testing.T) {
	gens := []element.Element{
		element.MustBipartition(0, 1, 2, 1, 0, 2, 1, 0, 2, 2, 0, 0, 2, 0, 3, 4, 4, 1, 3, 0),
		element.MustBipartition(0, 1, 1, 1, 1, 2, 3, 2, 4, 5, 5, 2, 4, 2, 1, 1, 1, 2, 3, 2),
		element.MustBipartition(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	}
	s, err := New(gens)
	require.NoError(t, err)

	var want []Pos
	scratch := gens[0].Clone()
	size := s.Size()
	for p := 0; p < size; p++ {
		scratch.Mul(s.ElementPos(Pos(p)), s.ElementPos(Pos(p)))
		if scratch.Equal(s.ElementPos(Pos(p))) {
			want = append(want, Pos(p))
		}
	}

	require.Equal(t, want, s.Idempotents())
	require.Equal(t, len(want), s.NrIdempotents())
	for p := 0; p < size; p++ {
		has := false
		for _, q := range want {
			if q == Pos(p) {
				has = true
			}
		}
		require.Equal(t, has, s.IsIdempotent(Pos(p)))
	}
}

func TestIdempotentsSortedAndCached(t *testing.T) {
	s := newT6(t)
	idem := s.Idempotents()
	require.Len(t, idem, 537)
	for i := 1; i < len(idem); i++ {
		require.Less(t, idem[i-1], idem[i], "idempotent positions must be sorted")
	}

	// second call returns the cached slice
	again := s.Idempotents()
	require.Equal(t, len(idem), len(again))
}

func TestIdempotentsSerialMatchesParallel(t *testing.T) {
	serial := newT6(t, WithMaxThreads(1))
	parallel := newT6(t, WithMaxThreads(0))

	require.Equal(t, serial.NrIdempotents(), parallel.NrIdempotents())
	require.Equal(t, serial.Idempotents(), parallel.Idempotents())
}
