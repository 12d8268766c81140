package element

import (
	"fmt"

	"github.com/markuspf/libsemigroups/pkg/errors"
)

// Transformation is a total function on the set {0, ..., n-1}, stored as its
// list of images. The product is composition left to right: (f*g)(i) equals
// g(f(i)).
type Transformation struct {
	images []uint32
}

// NewTransformation creates a transformation from its image list. Every image
// must be smaller than the degree len(images).
func NewTransformation(images []uint32) (*Transformation, error) {
	if len(images) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidElement, "transformation needs at least one point")
	}
	for i, v := range images {
		if int(v) >= len(images) {
			return nil, errors.New(errors.ErrCodeInvalidElement,
				"image %d of point %d exceeds degree %d", v, i, len(images))
		}
	}
	t := &Transformation{images: make([]uint32, len(images))}
	copy(t.images, images)
	return t, nil
}

// MustTransformation is NewTransformation that panics on invalid input.
// Intended for tests and literals.
func MustTransformation(images ...uint32) *Transformation {
	t, err := NewTransformation(images)
	if err != nil {
		panic(err)
	}
	return t
}

// Degree returns the number of points acted on.
func (t *Transformation) Degree() int { return len(t.images) }

// Image returns the image of point i.
func (t *Transformation) Image(i int) uint32 { return t.images[i] }

func (t *Transformation) Equal(other Element) bool {
	o, ok := other.(*Transformation)
	return ok && equalUint32s(t.images, o.images)
}

func (t *Transformation) Less(other Element) bool {
	o := other.(*Transformation)
	if len(t.images) != len(o.images) {
		return len(t.images) < len(o.images)
	}
	return lessUint32s(t.images, o.images)
}

func (t *Transformation) Hash() uint64 { return hashWords(t.images) }

func (t *Transformation) Mul(x, y Element) {
	xt := x.(*Transformation)
	yt := y.(*Transformation)
	for i, v := range xt.images {
		t.images[i] = yt.images[v]
	}
}

// One returns the identity transformation of the same degree.
func (t *Transformation) One() Element {
	images := make([]uint32, len(t.images))
	for i := range images {
		images[i] = uint32(i)
	}
	return &Transformation{images: images}
}

func (t *Transformation) Clone() Element {
	images := make([]uint32, len(t.images))
	copy(images, t.images)
	return &Transformation{images: images}
}

func (t *Transformation) Complexity() int { return len(t.images) }

func (t *Transformation) String() string {
	return fmt.Sprintf("transformation %v", t.images)
}
