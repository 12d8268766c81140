package element

import (
	"fmt"
	"sort"

	"github.com/markuspf/libsemigroups/pkg/errors"
)

// PBR is a partitioned binary relation: a directed graph on the 2n vertices
// {0, ..., 2n-1}, where the first n vertices form the left column and the
// last n the right column. Out-neighbourhoods are stored sorted.
//
// The product x*y glues the right column of x to the left column of y; an
// edge of the product is any path that alternates through the glued middle
// vertices.
type PBR struct {
	adj [][]uint32
}

// NewPBR creates a PBR of degree len(adj)/2 from its adjacency lists.
func NewPBR(adj [][]uint32) (*PBR, error) {
	if len(adj) == 0 || len(adj)%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidElement,
			"adjacency must have positive even length, got %d", len(adj))
	}
	p := &PBR{adj: make([][]uint32, len(adj))}
	for i, row := range adj {
		for _, v := range row {
			if int(v) >= len(adj) {
				return nil, errors.New(errors.ErrCodeInvalidElement,
					"vertex %d adjacent to %d, want < %d", i, v, len(adj))
			}
		}
		p.adj[i] = make([]uint32, len(row))
		copy(p.adj[i], row)
		sort.Slice(p.adj[i], func(a, b int) bool { return p.adj[i][a] < p.adj[i][b] })
	}
	return p, nil
}

// MustPBR is NewPBR that panics on invalid input. Intended for tests and
// literals.
func MustPBR(adj ...[]uint32) *PBR {
	p, err := NewPBR(adj)
	if err != nil {
		panic(err)
	}
	return p
}

// Degree returns the number of vertices in each column.
func (p *PBR) Degree() int { return len(p.adj) / 2 }

func (p *PBR) Equal(other Element) bool {
	o, ok := other.(*PBR)
	if !ok || len(p.adj) != len(o.adj) {
		return false
	}
	for i := range p.adj {
		if !equalUint32s(p.adj[i], o.adj[i]) {
			return false
		}
	}
	return true
}

func (p *PBR) Less(other Element) bool {
	o := other.(*PBR)
	if len(p.adj) != len(o.adj) {
		return len(p.adj) < len(o.adj)
	}
	for i := range p.adj {
		if len(p.adj[i]) != len(o.adj[i]) {
			return len(p.adj[i]) < len(o.adj[i])
		}
		if !equalUint32s(p.adj[i], o.adj[i]) {
			return lessUint32s(p.adj[i], o.adj[i])
		}
	}
	return false
}

func (p *PBR) Hash() uint64 {
	flat := make([]uint32, 0, 2*len(p.adj))
	for _, row := range p.adj {
		flat = append(flat, uint32(len(row)))
		flat = append(flat, row...)
	}
	return hashWords(flat)
}

// Mul computes x*y by a depth-first search per result vertex. The search
// alternates between edges of x and edges of y whenever it crosses a glued
// middle vertex. Result edges lead to left vertices of x and right vertices
// of y; middle vertices are interior to paths and vanish. The search state
// and the result adjacency lists are allocated on every call.
func (p *PBR) Mul(x, y Element) {
	xp := x.(*PBR)
	yp := y.(*PBR)
	n := len(p.adj) / 2

	outSeen := make([]bool, 2*n) // result vertices already emitted
	midX := make([]bool, n)      // middle vertices expanded along x
	midY := make([]bool, n)      // middle vertices expanded along y
	var stackX, stackY []uint32  // x-vertices and y-vertices still to expand

	result := make([][]uint32, 2*n)
	for i := 0; i < 2*n; i++ {
		for j := 0; j < n; j++ {
			midX[j] = false
			midY[j] = false
		}
		for j := range outSeen {
			outSeen[j] = false
		}
		stackX = stackX[:0]
		stackY = stackY[:0]
		var out []uint32

		if i < n {
			stackX = append(stackX, uint32(i))
		} else {
			stackY = append(stackY, uint32(i))
		}

		for len(stackX) > 0 || len(stackY) > 0 {
			for len(stackX) > 0 {
				u := stackX[len(stackX)-1]
				stackX = stackX[:len(stackX)-1]
				for _, w := range xp.adj[u] {
					if w < uint32(n) {
						if !outSeen[w] {
							outSeen[w] = true
							out = append(out, w)
						}
					} else if !midY[w-uint32(n)] {
						// crossed into the middle; continue along y
						midY[w-uint32(n)] = true
						stackY = append(stackY, w-uint32(n))
					}
				}
			}
			for len(stackY) > 0 {
				v := stackY[len(stackY)-1]
				stackY = stackY[:len(stackY)-1]
				for _, w := range yp.adj[v] {
					if w >= uint32(n) {
						if !outSeen[w] {
							outSeen[w] = true
							out = append(out, w)
						}
					} else if !midX[w] {
						// crossed back into the middle; continue along x
						midX[w] = true
						stackX = append(stackX, w+uint32(n))
					}
				}
			}
		}

		sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
		result[i] = out
	}
	copy(p.adj, result)
}

// One returns the identity PBR, which joins vertex i of the left column to
// vertex i of the right column in both directions.
func (p *PBR) One() Element {
	n := len(p.adj) / 2
	adj := make([][]uint32, 2*n)
	for i := 0; i < n; i++ {
		adj[i] = []uint32{uint32(n + i)}
		adj[n+i] = []uint32{uint32(i)}
	}
	return &PBR{adj: adj}
}

func (p *PBR) Clone() Element {
	adj := make([][]uint32, len(p.adj))
	for i, row := range p.adj {
		adj[i] = make([]uint32, len(row))
		copy(adj[i], row)
	}
	return &PBR{adj: adj}
}

func (p *PBR) Complexity() int {
	n := len(p.adj)
	return n * n * n
}

func (p *PBR) String() string {
	return fmt.Sprintf("pbr %v", p.adj)
}
