package semigroup

import (
	"context"
	"runtime"
	"sync"

	"github.com/markuspf/libsemigroups/pkg/element"
	"github.com/markuspf/libsemigroups/pkg/errors"
	"github.com/markuspf/libsemigroups/pkg/recvec"
)

// Pos is the position of an element in the semigroup: a stable index into
// the element table, assigned monotonically at insertion.
type Pos uint32

// Letter is an index into the (possibly duplicated) generator list.
type Letter uint32

// Word is a sequence of letters; its value is the product of the
// corresponding generators in left-to-right order.
type Word []Letter

const (
	// Undefined marks "no such position".
	Undefined Pos = ^Pos(0)

	// LimitMax is the saturating enumeration limit: enumerating to LimitMax
	// enumerates the whole semigroup.
	LimitMax Pos = ^Pos(0)

	// DefaultBatchSize bounds the work done by a single Enumerate call.
	DefaultBatchSize = 8192
)

// maxElements is the hard capacity bound; positions at or beyond it would
// collide with Undefined.
const maxElements = ^Pos(0) - 1

// duplicatePair records two letters whose generators are equal.
type duplicatePair struct {
	earlier Letter
	later   Letter
}

// Semigroup enumerates the semigroup generated by a list of elements.
//
// A Semigroup is not safe for concurrent use; the only internal parallelism
// is the idempotent scan, which reads the finished element table.
type Semigroup struct {
	batchSize  int
	maxThreads int

	degree int
	gens   []element.Element
	id     element.Element
	tmp    element.Element // product scratch for the single-threaded main loop

	elements []element.Element
	lookup   map[uint64][]Pos // element hash -> candidate positions

	// per-position tables, kept in lockstep with elements
	first      []Letter
	final      []Letter
	prefix     []Pos
	suffix     []Pos
	length     []Pos
	multiplied []bool

	right   *recvec.RecVec[Pos]
	left    *recvec.RecVec[Pos]
	reduced *recvec.RecVec[bool]

	letterToPos   []Pos
	duplicateGens []duplicatePair

	// index holds positions in enumeration order. For a freshly constructed
	// semigroup index[k] == k; AddGenerators re-seeds it so that old
	// positions are revisited in the shortlex order of the extended
	// generating set.
	index    []Pos
	lenindex []Pos

	nr      Pos // number of elements found so far
	pos     Pos // enumeration cursor into index
	wordlen int
	nrRules int

	foundOne bool
	posOne   Pos

	relationPos Pos
	relationGen Letter

	idempotentsFound bool
	idempotents      []Pos
	isIdempotent     []bool

	sorted    []Pos // positions in element order, nil until first requested
	posSorted []Pos // position -> rank in sorted

	mu sync.Mutex
}

// Option configures a Semigroup at construction time.
type Option func(*Semigroup)

// WithBatchSize sets the minimum number of new elements any Enumerate call
// with a limit above the current size tries to find. Values below one are
// ignored.
func WithBatchSize(n int) Option {
	return func(s *Semigroup) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithMaxThreads bounds the parallelism of the idempotent scan. Zero selects
// the number of CPUs; values above it are capped.
func WithMaxThreads(n int) Option {
	return func(s *Semigroup) { s.setMaxThreads(n) }
}

// New creates the semigroup generated by gens. The generators are
// deep-copied, so the caller keeps ownership of the arguments. There must be
// at least one generator and all generators must have equal degree.
//
// Duplicate generators are permitted: they count as distinct letters but not
// as distinct elements, and each duplicate contributes one defining
// relation.
func New(gens []element.Element, opts ...Option) (*Semigroup, error) {
	if len(gens) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGenerators, "at least one generator is required")
	}
	degree := gens[0].Degree()
	for i, x := range gens {
		if x.Degree() != degree {
			return nil, errors.New(errors.ErrCodeDegreeMismatch,
				"generator %d has degree %d, want %d", i, x.Degree(), degree)
		}
	}

	s := &Semigroup{
		batchSize:   DefaultBatchSize,
		maxThreads:  runtime.NumCPU(),
		degree:      degree,
		gens:        make([]element.Element, 0, len(gens)),
		lookup:      make(map[uint64][]Pos),
		right:       recvec.New(len(gens), 0, Undefined),
		left:        recvec.New(len(gens), 0, Undefined),
		reduced:     recvec.New(len(gens), 0, false),
		relationPos: Undefined,
	}
	for _, x := range gens {
		s.gens = append(s.gens, x.Clone())
	}
	s.id = s.gens[0].One()
	s.tmp = s.gens[0].Clone()

	for i, x := range s.gens {
		if q, ok := s.find(x); ok {
			s.letterToPos = append(s.letterToPos, q)
			s.nrRules++
			s.duplicateGens = append(s.duplicateGens, duplicatePair{earlier: s.first[q], later: Letter(i)})
			continue
		}
		s.isOne(x, s.nr)
		s.elements = append(s.elements, x)
		s.first = append(s.first, Letter(i))
		s.final = append(s.final, Letter(i))
		s.prefix = append(s.prefix, Undefined)
		s.suffix = append(s.suffix, Undefined)
		s.length = append(s.length, 1)
		s.letterToPos = append(s.letterToPos, s.nr)
		s.insert(x, s.nr)
		s.index = append(s.index, s.nr)
		s.nr++
	}
	s.expandRows(int(s.nr))
	s.lenindex = []Pos{0, Pos(len(s.index))}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// =============================================================================
// Internal table plumbing
// =============================================================================

// find looks x up in the position index.
func (s *Semigroup) find(x element.Element) (Pos, bool) {
	for _, p := range s.lookup[x.Hash()] {
		if s.elements[p].Equal(x) {
			return p, true
		}
	}
	return Undefined, false
}

// insert records x at position p. Called strictly after x is appended to the
// element table so the index never leads it.
func (s *Semigroup) insert(x element.Element, p Pos) {
	h := x.Hash()
	s.lookup[h] = append(s.lookup[h], p)
}

// expandRows appends n rows to the Cayley tables and flag tables.
func (s *Semigroup) expandRows(n int) {
	s.right.AddRows(n)
	s.left.AddRows(n)
	s.reduced.AddRows(n)
	for i := 0; i < n; i++ {
		s.multiplied = append(s.multiplied, false)
	}
}

// isOne records the position of the identity the first time it is seen.
func (s *Semigroup) isOne(x element.Element, p Pos) {
	if !s.foundOne && x.Equal(s.id) {
		s.posOne = p
		s.foundOne = true
	}
}

// pushNew appends a newly discovered element with all of its row data. The
// element is cloned from the engine scratch by the caller.
func (s *Semigroup) pushNew(x element.Element, first, final Letter, length, prefix, suffix Pos) {
	if s.nr >= maxElements {
		panic(errors.New(errors.ErrCodeCapacityExceeded,
			"semigroup exceeds %d elements", maxElements))
	}
	s.isOne(x, s.nr)
	s.elements = append(s.elements, x)
	s.first = append(s.first, first)
	s.final = append(s.final, final)
	s.length = append(s.length, length)
	s.prefix = append(s.prefix, prefix)
	s.suffix = append(s.suffix, suffix)
	s.insert(x, s.nr)
	s.index = append(s.index, s.nr)
	s.expandRows(1)
	s.nr++
}

func (s *Semigroup) setMaxThreads(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > runtime.NumCPU() {
		n = runtime.NumCPU()
	}
	s.maxThreads = n
}

func satAdd(a, b Pos) Pos {
	if c := a + b; c >= a {
		return c
	}
	return LimitMax
}

// =============================================================================
// Accessors
// =============================================================================

// Degree returns the common degree of the elements.
func (s *Semigroup) Degree() int { return s.degree }

// NrGens returns the number of generators, duplicates included.
func (s *Semigroup) NrGens() int { return len(s.gens) }

// Gen returns the i-th generator. The returned element is owned by the
// engine and must not be mutated.
func (s *Semigroup) Gen(i Letter) element.Element { return s.gens[i] }

// BatchSize returns the current batch size.
func (s *Semigroup) BatchSize() int { return s.batchSize }

// SetBatchSize sets the minimum number of new elements found by any call to
// Enumerate with a limit above the current size. Values below one are
// ignored.
func (s *Semigroup) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

// SetMaxThreads bounds the parallelism of the idempotent scan. Zero selects
// the number of CPUs.
func (s *Semigroup) SetMaxThreads(n int) { s.setMaxThreads(n) }

// Reserve grows the per-position tables to hold n elements without
// reallocating. Useful when a good upper bound for the size is known.
func (s *Semigroup) Reserve(n int) {
	if n <= len(s.elements) {
		return
	}
	grow := func(p []Pos) []Pos {
		out := make([]Pos, len(p), n)
		copy(out, p)
		return out
	}
	s.prefix = grow(s.prefix)
	s.suffix = grow(s.suffix)
	s.length = grow(s.length)
	s.index = grow(s.index)

	elements := make([]element.Element, len(s.elements), n)
	copy(elements, s.elements)
	s.elements = elements

	first := make([]Letter, len(s.first), n)
	copy(first, s.first)
	s.first = first
	final := make([]Letter, len(s.final), n)
	copy(final, s.final)
	s.final = final

	multiplied := make([]bool, len(s.multiplied), n)
	copy(multiplied, s.multiplied)
	s.multiplied = multiplied
}

// IsDone reports whether the semigroup is fully enumerated.
func (s *Semigroup) IsDone() bool { return s.pos >= s.nr }

// IsBegun reports whether any elements other than the generators have been
// sought.
func (s *Semigroup) IsBegun() bool { return s.pos >= s.lenindex[1] }

// CurrentSize returns the number of elements found so far, without
// enumerating.
func (s *Semigroup) CurrentSize() int { return len(s.elements) }

// CurrentNrRules returns the number of defining relations found so far,
// without enumerating.
func (s *Semigroup) CurrentNrRules() int { return s.nrRules }

// CurrentMaxWordLength returns the maximum length of any minimal word seen
// so far, without enumerating.
func (s *Semigroup) CurrentMaxWordLength() int {
	if s.IsDone() {
		return len(s.lenindex) - 2
	}
	if int(s.nr) > int(s.lenindex[len(s.lenindex)-1]) {
		return len(s.lenindex)
	}
	return len(s.lenindex) - 1
}

// Size fully enumerates the semigroup and returns the number of elements.
func (s *Semigroup) Size() int {
	s.Enumerate(context.Background(), LimitMax)
	return len(s.elements)
}

// NrRules fully enumerates the semigroup and returns the number of defining
// relations.
func (s *Semigroup) NrRules() int {
	s.Enumerate(context.Background(), LimitMax)
	return s.nrRules
}

// LetterToPos returns the position of the first element equal to generator
// i. This equals i unless there are duplicate generators or generators were
// added after enumeration began.
func (s *Semigroup) LetterToPos(i Letter) Pos { return s.letterToPos[i] }

// CurrentPosition returns the position of x if it is already known to belong
// to the semigroup and Undefined otherwise. No enumeration is triggered.
func (s *Semigroup) CurrentPosition(x element.Element) Pos {
	if x.Degree() != s.degree {
		return Undefined
	}
	if p, ok := s.find(x); ok {
		return p
	}
	return Undefined
}

// Position returns the position of x in the semigroup, enumerating in
// batches until x is found or the semigroup is fully enumerated. Returns
// Undefined if x is not an element.
func (s *Semigroup) Position(x element.Element) Pos {
	if x.Degree() != s.degree {
		return Undefined
	}
	for {
		if p, ok := s.find(x); ok {
			return p
		}
		if s.IsDone() {
			return Undefined
		}
		s.Enumerate(context.Background(), satAdd(s.nr, 1))
	}
}

// TestMembership reports whether x is an element of the semigroup,
// enumerating as much as necessary.
func (s *Semigroup) TestMembership(x element.Element) bool {
	return s.Position(x) != Undefined
}

// At returns the element at the given position, enumerating until it is
// known. Returns nil if the semigroup has fewer elements.
func (s *Semigroup) At(pos Pos) element.Element {
	s.Enumerate(context.Background(), satAdd(pos, 1))
	if pos < s.nr {
		return s.elements[pos]
	}
	return nil
}

// ElementPos returns the element at an already enumerated position without
// enumerating.
func (s *Semigroup) ElementPos(pos Pos) element.Element { return s.elements[pos] }

// Prefix returns the position of the length len-1 prefix of the minimal word
// of pos, or Undefined for generators.
func (s *Semigroup) Prefix(pos Pos) Pos { return s.prefix[pos] }

// Suffix returns the position of the length len-1 suffix of the minimal word
// of pos, or Undefined for generators.
func (s *Semigroup) Suffix(pos Pos) Pos { return s.suffix[pos] }

// FirstLetter returns the first letter of the minimal word of pos.
func (s *Semigroup) FirstLetter(pos Pos) Letter { return s.first[pos] }

// FinalLetter returns the final letter of the minimal word of pos.
func (s *Semigroup) FinalLetter(pos Pos) Letter { return s.final[pos] }

// LengthConst returns the length of the minimal word of an already
// enumerated position.
func (s *Semigroup) LengthConst(pos Pos) int { return int(s.length[pos]) }

// Length returns the length of the minimal word of pos, enumerating the
// semigroup as far as necessary.
func (s *Semigroup) Length(pos Pos) int {
	if pos >= s.nr {
		s.Enumerate(context.Background(), LimitMax)
	}
	return s.LengthConst(pos)
}

// RightCayley returns the position of elements[pos] * gens[gen]. The
// semigroup is fully enumerated first.
func (s *Semigroup) RightCayley(pos Pos, gen Letter) Pos {
	s.Enumerate(context.Background(), LimitMax)
	return s.right.Get(int(pos), int(gen))
}

// LeftCayley returns the position of gens[gen] * elements[pos]. The
// semigroup is fully enumerated first.
func (s *Semigroup) LeftCayley(pos Pos, gen Letter) Pos {
	s.Enumerate(context.Background(), LimitMax)
	return s.left.Get(int(pos), int(gen))
}

// Copy returns a deep copy sharing no state with the original. No
// enumeration is triggered on either semigroup.
func (s *Semigroup) Copy() *Semigroup {
	c := &Semigroup{
		batchSize:        s.batchSize,
		maxThreads:       s.maxThreads,
		degree:           s.degree,
		id:               s.id.Clone(),
		tmp:              s.tmp.Clone(),
		lookup:           make(map[uint64][]Pos, len(s.lookup)),
		right:            s.right.Clone(),
		left:             s.left.Clone(),
		reduced:          s.reduced.Clone(),
		nr:               s.nr,
		pos:              s.pos,
		wordlen:          s.wordlen,
		nrRules:          s.nrRules,
		foundOne:         s.foundOne,
		posOne:           s.posOne,
		relationPos:      s.relationPos,
		relationGen:      s.relationGen,
		idempotentsFound: s.idempotentsFound,
	}
	c.gens = make([]element.Element, len(s.gens))
	for i, x := range s.gens {
		c.gens[i] = x.Clone()
	}
	c.elements = make([]element.Element, len(s.elements))
	for i, x := range s.elements {
		c.elements[i] = x.Clone()
	}
	for h, bucket := range s.lookup {
		c.lookup[h] = append([]Pos(nil), bucket...)
	}
	c.first = append([]Letter(nil), s.first...)
	c.final = append([]Letter(nil), s.final...)
	c.prefix = append([]Pos(nil), s.prefix...)
	c.suffix = append([]Pos(nil), s.suffix...)
	c.length = append([]Pos(nil), s.length...)
	c.multiplied = append([]bool(nil), s.multiplied...)
	c.letterToPos = append([]Pos(nil), s.letterToPos...)
	c.duplicateGens = append([]duplicatePair(nil), s.duplicateGens...)
	c.index = append([]Pos(nil), s.index...)
	c.lenindex = append([]Pos(nil), s.lenindex...)
	c.idempotents = append([]Pos(nil), s.idempotents...)
	c.isIdempotent = append([]bool(nil), s.isIdempotent...)
	c.sorted = append([]Pos(nil), s.sorted...)
	c.posSorted = append([]Pos(nil), s.posSorted...)
	return c
}
