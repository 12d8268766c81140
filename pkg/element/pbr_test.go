package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPBRIdentityProduct(t *testing.T) {
	x := MustPBR(
		[]uint32{2, 3},
		[]uint32{0},
		[]uint32{1},
		[]uint32{0, 3},
	)
	id := x.One().(*PBR)

	z := MustPBR([]uint32{}, []uint32{}, []uint32{}, []uint32{})
	z.Mul(x, id)
	require.True(t, z.Equal(x), "x * 1 = x")

	z = MustPBR([]uint32{}, []uint32{}, []uint32{}, []uint32{})
	z.Mul(id, x)
	require.True(t, z.Equal(x), "1 * x = x")
}

func TestPBROne(t *testing.T) {
	x := MustPBR([]uint32{}, []uint32{}, []uint32{}, []uint32{})
	id := x.One().(*PBR)
	require.True(t, id.Equal(MustPBR(
		[]uint32{2},
		[]uint32{3},
		[]uint32{0},
		[]uint32{1},
	)))
}

func TestPBRAdjacencySorted(t *testing.T) {
	p := MustPBR([]uint32{3, 1, 0}, []uint32{}, []uint32{}, []uint32{})
	q := MustPBR([]uint32{0, 1, 3}, []uint32{}, []uint32{}, []uint32{})
	require.True(t, p.Equal(q))
}

func TestNewPBRValidation(t *testing.T) {
	_, err := NewPBR([][]uint32{{4}, {}, {}, {}})
	require.Error(t, err, "vertex out of range")

	_, err = NewPBR([][]uint32{{}, {}, {}})
	require.Error(t, err, "odd vertex count")
}
