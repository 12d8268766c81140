package element

import (
	"fmt"

	"github.com/markuspf/libsemigroups/pkg/errors"
)

// Matrix is a square matrix with entries in a Semiring. Two matrices are
// equal when their entries are; the engine never mixes matrices over
// different semirings in one generating set.
type Matrix struct {
	degree   int
	entries  []int64 // row-major
	semiring Semiring
}

// NewMatrix creates a matrix over the given semiring from its rows.
func NewMatrix(rows [][]int64, sr Semiring) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidElement, "matrix needs at least one row")
	}
	if sr == nil {
		return nil, errors.New(errors.ErrCodeInvalidElement, "matrix needs a semiring")
	}
	m := &Matrix{degree: n, entries: make([]int64, n*n), semiring: sr}
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidElement,
				"row %d has %d entries, want %d", i, len(row), n)
		}
		copy(m.entries[i*n:], row)
	}
	return m, nil
}

// MustMatrix is NewMatrix that panics on invalid input. Intended for tests
// and literals.
func MustMatrix(sr Semiring, rows ...[]int64) *Matrix {
	m, err := NewMatrix(rows, sr)
	if err != nil {
		panic(err)
	}
	return m
}

// Degree returns the dimension of the matrix.
func (m *Matrix) Degree() int { return m.degree }

// Entry returns the entry at (i, j).
func (m *Matrix) Entry(i, j int) int64 { return m.entries[i*m.degree+j] }

// Semiring returns the semiring the matrix is computed over.
func (m *Matrix) Semiring() Semiring { return m.semiring }

func (m *Matrix) Equal(other Element) bool {
	o, ok := other.(*Matrix)
	if !ok || o.degree != m.degree {
		return false
	}
	for i := range m.entries {
		if m.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

func (m *Matrix) Less(other Element) bool {
	o := other.(*Matrix)
	if m.degree != o.degree {
		return m.degree < o.degree
	}
	for i := range m.entries {
		if m.entries[i] != o.entries[i] {
			return m.entries[i] < o.entries[i]
		}
	}
	return false
}

func (m *Matrix) Hash() uint64 { return hashInt64s(m.entries) }

func (m *Matrix) Mul(x, y Element) {
	xm := x.(*Matrix)
	ym := y.(*Matrix)
	n := m.degree
	sr := m.semiring
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := sr.Prod(xm.entries[i*n], ym.entries[j])
			for k := 1; k < n; k++ {
				acc = sr.Plus(acc, sr.Prod(xm.entries[i*n+k], ym.entries[k*n+j]))
			}
			m.entries[i*n+j] = acc
		}
	}
}

// One returns the identity matrix over the same semiring.
func (m *Matrix) One() Element {
	out := &Matrix{degree: m.degree, entries: make([]int64, m.degree*m.degree), semiring: m.semiring}
	for i := range out.entries {
		out.entries[i] = m.semiring.Zero()
	}
	for i := 0; i < m.degree; i++ {
		out.entries[i*m.degree+i] = m.semiring.One()
	}
	return out
}

func (m *Matrix) Clone() Element {
	entries := make([]int64, len(m.entries))
	copy(entries, m.entries)
	return &Matrix{degree: m.degree, entries: entries, semiring: m.semiring}
}

func (m *Matrix) Complexity() int { return m.degree * m.degree * m.degree }

func (m *Matrix) String() string {
	return fmt.Sprintf("matrix of degree %d over %T", m.degree, m.semiring)
}
