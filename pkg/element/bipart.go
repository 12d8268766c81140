package element

import (
	"fmt"

	"github.com/markuspf/libsemigroups/pkg/errors"
)

// Bipartition is a partition of the 2n points {0, ..., 2n-1}, where the
// first n points are the top row and the last n the bottom row. It is stored
// as a block lookup in canonical form: block ids are assigned in order of
// first occurrence, so blocks[0] is 0 and every id is at most one larger
// than all earlier ids.
//
// The product glues the bottom row of the left factor to the top row of the
// right factor and reads off the induced partition of the outer rows.
type Bipartition struct {
	blocks []uint32

	// product scratch, lazily allocated and reused across Mul calls
	find []uint32
}

// NewBipartition creates a bipartition of degree len(blocks)/2 from a
// canonical block lookup.
func NewBipartition(blocks []uint32) (*Bipartition, error) {
	if len(blocks) == 0 || len(blocks)%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidElement,
			"block lookup must have positive even length, got %d", len(blocks))
	}
	next := uint32(0)
	for i, b := range blocks {
		if b > next {
			return nil, errors.New(errors.ErrCodeInvalidElement,
				"lookup not canonical: block %d at point %d, expected at most %d", b, i, next)
		}
		if b == next {
			next++
		}
	}
	bp := &Bipartition{blocks: make([]uint32, len(blocks))}
	copy(bp.blocks, blocks)
	return bp, nil
}

// MustBipartition is NewBipartition that panics on invalid input. Intended
// for tests and literals.
func MustBipartition(blocks ...uint32) *Bipartition {
	bp, err := NewBipartition(blocks)
	if err != nil {
		panic(err)
	}
	return bp
}

// Degree returns the number of points in each row.
func (b *Bipartition) Degree() int { return len(b.blocks) / 2 }

// NrBlocks returns the number of blocks.
func (b *Bipartition) NrBlocks() int {
	max := uint32(0)
	for _, v := range b.blocks {
		if v > max {
			max = v
		}
	}
	return int(max) + 1
}

func (b *Bipartition) Equal(other Element) bool {
	o, ok := other.(*Bipartition)
	return ok && equalUint32s(b.blocks, o.blocks)
}

func (b *Bipartition) Less(other Element) bool {
	o := other.(*Bipartition)
	if len(b.blocks) != len(o.blocks) {
		return len(b.blocks) < len(o.blocks)
	}
	return lessUint32s(b.blocks, o.blocks)
}

func (b *Bipartition) Hash() uint64 { return hashWords(b.blocks) }

// Mul computes x*y by a union-find pass over three rows of points: the top
// and bottom of x with the bottom of y, where the bottom row of x is
// identified with the top row of y. The union-find array is reused across
// calls; the block bookkeeping is allocated afresh on every call.
func (b *Bipartition) Mul(x, y Element) {
	xb := x.(*Bipartition)
	yb := y.(*Bipartition)
	n := len(b.blocks) / 2

	if b.find == nil {
		b.find = make([]uint32, 3*n)
	}
	for i := range b.find {
		b.find[i] = uint32(i)
	}

	// union points of x: the top row occupies 0..n-1, the shared middle row
	// n..2n-1
	firstOf := make([]uint32, 2*n)
	for i := range firstOf {
		firstOf[i] = UndefinedPoint
	}
	for i, blk := range xb.blocks {
		if firstOf[blk] == UndefinedPoint {
			firstOf[blk] = uint32(i)
		} else {
			b.union(uint32(i), firstOf[blk])
		}
	}

	// union points of y: its top row is the middle n..2n-1, its bottom row
	// 2n..3n-1
	for i := range firstOf {
		firstOf[i] = UndefinedPoint
	}
	for i, blk := range yb.blocks {
		p := uint32(n + i)
		if firstOf[blk] == UndefinedPoint {
			firstOf[blk] = p
		} else {
			b.union(p, firstOf[blk])
		}
	}

	// read off the outer rows, renumbering roots by first occurrence
	lookup := make(map[uint32]uint32, 2*n)
	next := uint32(0)
	for i := 0; i < 2*n; i++ {
		p := uint32(i)
		if i >= n {
			p = uint32(i + n) // bottom row of y
		}
		root := b.root(p)
		blk, ok := lookup[root]
		if !ok {
			blk = next
			lookup[root] = blk
			next++
		}
		b.blocks[i] = blk
	}
}

func (b *Bipartition) root(p uint32) uint32 {
	for b.find[p] != p {
		b.find[p] = b.find[b.find[p]]
		p = b.find[p]
	}
	return p
}

func (b *Bipartition) union(p, q uint32) {
	rp, rq := b.root(p), b.root(q)
	if rp < rq {
		b.find[rq] = rp
	} else {
		b.find[rp] = rq
	}
}

// One returns the identity bipartition, which pairs point i of the top row
// with point i of the bottom row.
func (b *Bipartition) One() Element {
	n := len(b.blocks) / 2
	blocks := make([]uint32, 2*n)
	for i := 0; i < n; i++ {
		blocks[i] = uint32(i)
		blocks[n+i] = uint32(i)
	}
	return &Bipartition{blocks: blocks}
}

func (b *Bipartition) Clone() Element {
	blocks := make([]uint32, len(b.blocks))
	copy(blocks, b.blocks)
	return &Bipartition{blocks: blocks}
}

func (b *Bipartition) Complexity() int { return len(b.blocks) }

func (b *Bipartition) String() string {
	return fmt.Sprintf("bipartition %v", b.blocks)
}
