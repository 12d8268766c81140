package element

import (
	"fmt"

	"github.com/markuspf/libsemigroups/pkg/errors"
)

// BooleanMat is a square matrix over the boolean semiring. The degree of an
// n-by-n matrix is n and the product is the usual boolean row-by-column
// product.
type BooleanMat struct {
	degree int
	rows   []bool // row-major, degree*degree entries
}

// NewBooleanMat creates a boolean matrix from its rows, which must form a
// square matrix.
func NewBooleanMat(rows [][]bool) (*BooleanMat, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidElement, "boolean matrix needs at least one row")
	}
	m := &BooleanMat{degree: n, rows: make([]bool, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidElement,
				"row %d has %d entries, want %d", i, len(row), n)
		}
		copy(m.rows[i*n:], row)
	}
	return m, nil
}

// MustBooleanMat is NewBooleanMat that panics on invalid input. Rows are
// given as 0/1 integers. Intended for tests and literals.
func MustBooleanMat(rows ...[]int) *BooleanMat {
	conv := make([][]bool, len(rows))
	for i, row := range rows {
		conv[i] = make([]bool, len(row))
		for j, v := range row {
			conv[i][j] = v != 0
		}
	}
	m, err := NewBooleanMat(conv)
	if err != nil {
		panic(err)
	}
	return m
}

// Degree returns the dimension of the matrix.
func (m *BooleanMat) Degree() int { return m.degree }

// Entry returns the entry at (i, j).
func (m *BooleanMat) Entry(i, j int) bool { return m.rows[i*m.degree+j] }

func (m *BooleanMat) Equal(other Element) bool {
	o, ok := other.(*BooleanMat)
	if !ok || o.degree != m.degree {
		return false
	}
	for i := range m.rows {
		if m.rows[i] != o.rows[i] {
			return false
		}
	}
	return true
}

func (m *BooleanMat) Less(other Element) bool {
	o := other.(*BooleanMat)
	if m.degree != o.degree {
		return m.degree < o.degree
	}
	for i := range m.rows {
		if m.rows[i] != o.rows[i] {
			return !m.rows[i]
		}
	}
	return false
}

func (m *BooleanMat) Hash() uint64 {
	packed := make([]uint32, (len(m.rows)+31)/32)
	for i, v := range m.rows {
		if v {
			packed[i/32] |= 1 << (i % 32)
		}
	}
	return hashWords(packed)
}

func (m *BooleanMat) Mul(x, y Element) {
	xm := x.(*BooleanMat)
	ym := y.(*BooleanMat)
	n := m.degree
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := false
			for k := 0; k < n && !acc; k++ {
				acc = xm.rows[i*n+k] && ym.rows[k*n+j]
			}
			m.rows[i*n+j] = acc
		}
	}
}

// One returns the identity matrix of the same dimension.
func (m *BooleanMat) One() Element {
	out := &BooleanMat{degree: m.degree, rows: make([]bool, m.degree*m.degree)}
	for i := 0; i < m.degree; i++ {
		out.rows[i*m.degree+i] = true
	}
	return out
}

func (m *BooleanMat) Clone() Element {
	rows := make([]bool, len(m.rows))
	copy(rows, m.rows)
	return &BooleanMat{degree: m.degree, rows: rows}
}

func (m *BooleanMat) Complexity() int { return m.degree * m.degree * m.degree }

func (m *BooleanMat) String() string {
	return fmt.Sprintf("boolean matrix of degree %d", m.degree)
}
