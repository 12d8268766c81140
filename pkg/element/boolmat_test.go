package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanMatProduct(t *testing.T) {
	x := MustBooleanMat([]int{1, 0, 1}, []int{0, 1, 0}, []int{0, 1, 0})
	y := MustBooleanMat([]int{0, 1, 0}, []int{1, 0, 0}, []int{0, 0, 1})

	z := MustBooleanMat([]int{0, 0, 0}, []int{0, 0, 0}, []int{0, 0, 0})
	z.Mul(x, y)
	require.True(t, z.Equal(MustBooleanMat([]int{0, 1, 1}, []int{1, 0, 0}, []int{1, 0, 0})))
}

func TestBooleanMatOne(t *testing.T) {
	x := MustBooleanMat([]int{1, 1}, []int{0, 1})
	id := x.One()
	require.True(t, id.Equal(MustBooleanMat([]int{1, 0}, []int{0, 1})))

	z := MustBooleanMat([]int{0, 0}, []int{0, 0})
	z.Mul(x, id)
	require.True(t, z.Equal(x))
}

func TestBooleanMatHashEqual(t *testing.T) {
	x := MustBooleanMat([]int{1, 0}, []int{0, 1})
	y := MustBooleanMat([]int{1, 0}, []int{0, 1})
	require.True(t, x.Equal(y))
	require.Equal(t, x.Hash(), y.Hash())
}

func TestNewBooleanMatValidation(t *testing.T) {
	_, err := NewBooleanMat(nil)
	require.Error(t, err)

	_, err = NewBooleanMat([][]bool{{true, false}, {true}})
	require.Error(t, err, "ragged rows")
}
