package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartialPermFromPairs(t *testing.T) {
	p := MustPartialPerm([]uint32{4, 5, 0}, []uint32{10, 0, 1}, 11)
	require.Equal(t, 11, p.Degree())

	q, err := NewPartialPerm(p.images)
	require.NoError(t, err)
	require.True(t, p.Equal(q))
}

func TestPartialPermProductPropagatesUndefined(t *testing.T) {
	x := MustPartialPerm([]uint32{0, 1}, []uint32{1, 2}, 3) // 0->1, 1->2
	y := MustPartialPerm([]uint32{1}, []uint32{0}, 3)       // 1->0

	z := MustPartialPerm(nil, nil, 3)
	z.Mul(x, y)
	// 0 -> 1 -> 0; 1 -> 2 -> undefined; 2 undefined
	require.True(t, z.Equal(MustPartialPerm([]uint32{0}, []uint32{0}, 3)))
}

func TestPartialPermEmptyDegreesDiffer(t *testing.T) {
	e11 := MustPartialPerm(nil, nil, 11)
	e9 := MustPartialPerm(nil, nil, 9)
	require.False(t, e11.Equal(e9))
	require.Equal(t, 11, e11.Degree())
	require.Equal(t, 9, e9.Degree())
}

func TestPartialPermOne(t *testing.T) {
	x := MustPartialPerm([]uint32{4, 5, 0}, []uint32{10, 0, 1}, 11)
	id := x.One()
	z := MustPartialPerm(nil, nil, 11)
	z.Mul(x, id)
	require.True(t, z.Equal(x))
	z.Mul(id, x)
	require.True(t, z.Equal(x))
}

func TestNewPartialPermValidation(t *testing.T) {
	_, err := NewPartialPermFromPairs([]uint32{0, 1}, []uint32{2, 2}, 3)
	require.Error(t, err, "range value repeated")

	_, err = NewPartialPermFromPairs([]uint32{0, 0}, []uint32{1, 2}, 3)
	require.Error(t, err, "domain value repeated")

	_, err = NewPartialPermFromPairs([]uint32{5}, []uint32{0}, 3)
	require.Error(t, err, "domain exceeds degree")
}
