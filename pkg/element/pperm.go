package element

import (
	"fmt"
	"strings"

	"github.com/markuspf/libsemigroups/pkg/errors"
)

// UndefinedPoint marks a point outside the domain of a partial permutation.
const UndefinedPoint = ^uint32(0)

// PartialPerm is an injective partial function on {0, ..., n-1}, stored as an
// image list with UndefinedPoint for points outside the domain. Composition
// is left to right and undefined points propagate.
type PartialPerm struct {
	images []uint32
}

// NewPartialPerm creates a partial permutation from its image list.
func NewPartialPerm(images []uint32) (*PartialPerm, error) {
	if len(images) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidElement, "partial perm needs at least one point")
	}
	seen := make(map[uint32]bool, len(images))
	for i, v := range images {
		if v == UndefinedPoint {
			continue
		}
		if int(v) >= len(images) {
			return nil, errors.New(errors.ErrCodeInvalidElement,
				"image %d of point %d exceeds degree %d", v, i, len(images))
		}
		if seen[v] {
			return nil, errors.New(errors.ErrCodeInvalidElement, "image %d occurs twice", v)
		}
		seen[v] = true
	}
	p := &PartialPerm{images: make([]uint32, len(images))}
	copy(p.images, images)
	return p, nil
}

// NewPartialPermFromPairs creates a partial permutation of the given degree
// mapping dom[i] to ran[i] for every i.
func NewPartialPermFromPairs(dom, ran []uint32, degree int) (*PartialPerm, error) {
	if len(dom) != len(ran) {
		return nil, errors.New(errors.ErrCodeInvalidElement,
			"domain has %d points but range has %d", len(dom), len(ran))
	}
	images := make([]uint32, degree)
	for i := range images {
		images[i] = UndefinedPoint
	}
	for i := range dom {
		if int(dom[i]) >= degree || int(ran[i]) >= degree {
			return nil, errors.New(errors.ErrCodeInvalidElement,
				"pair (%d, %d) exceeds degree %d", dom[i], ran[i], degree)
		}
		if images[dom[i]] != UndefinedPoint {
			return nil, errors.New(errors.ErrCodeInvalidElement, "point %d mapped twice", dom[i])
		}
		images[dom[i]] = ran[i]
	}
	return NewPartialPerm(images)
}

// MustPartialPerm is NewPartialPermFromPairs that panics on invalid input.
// Intended for tests and literals.
func MustPartialPerm(dom, ran []uint32, degree int) *PartialPerm {
	p, err := NewPartialPermFromPairs(dom, ran, degree)
	if err != nil {
		panic(err)
	}
	return p
}

// Degree returns the number of points acted on.
func (p *PartialPerm) Degree() int { return len(p.images) }

func (p *PartialPerm) Equal(other Element) bool {
	o, ok := other.(*PartialPerm)
	return ok && equalUint32s(p.images, o.images)
}

func (p *PartialPerm) Less(other Element) bool {
	o := other.(*PartialPerm)
	if len(p.images) != len(o.images) {
		return len(p.images) < len(o.images)
	}
	return lessUint32s(p.images, o.images)
}

func (p *PartialPerm) Hash() uint64 { return hashWords(p.images) }

func (p *PartialPerm) Mul(x, y Element) {
	xp := x.(*PartialPerm)
	yp := y.(*PartialPerm)
	for i, v := range xp.images {
		if v == UndefinedPoint {
			p.images[i] = UndefinedPoint
		} else {
			p.images[i] = yp.images[v]
		}
	}
}

// One returns the identity partial permutation of the same degree.
func (p *PartialPerm) One() Element {
	images := make([]uint32, len(p.images))
	for i := range images {
		images[i] = uint32(i)
	}
	return &PartialPerm{images: images}
}

func (p *PartialPerm) Clone() Element {
	images := make([]uint32, len(p.images))
	copy(images, p.images)
	return &PartialPerm{images: images}
}

func (p *PartialPerm) Complexity() int { return len(p.images) }

func (p *PartialPerm) String() string {
	var b strings.Builder
	b.WriteString("partial perm [")
	for i, v := range p.images {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v == UndefinedPoint {
			b.WriteByte('-')
		} else {
			fmt.Fprintf(&b, "%d", v)
		}
	}
	b.WriteByte(']')
	return b.String()
}
