package semigroup

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minRangePerThread is the smallest slice of positions worth handing to a
// worker; below this the scan runs serially.
const minRangePerThread = 512

// NrIdempotents returns the number of idempotent elements, fully enumerating
// the semigroup and scanning it on the first call.
func (s *Semigroup) NrIdempotents() int {
	s.findIdempotents()
	return len(s.idempotents)
}

// IsIdempotent reports whether the element at the given position is an
// idempotent, fully enumerating the semigroup on the first call.
func (s *Semigroup) IsIdempotent(pos Pos) bool {
	s.findIdempotents()
	return s.isIdempotent[pos]
}

// Idempotents returns the positions of all idempotent elements in increasing
// order. The returned slice is owned by the semigroup.
func (s *Semigroup) Idempotents() []Pos {
	s.findIdempotents()
	return s.idempotents
}

// findIdempotents scans the enumerated elements for those equal to their own
// square. The scan is split into contiguous ranges handled by up to
// maxThreads workers with thread-local scratches and buffers; results are
// concatenated in range order, so the cached list is sorted by position.
func (s *Semigroup) findIdempotents() {
	if s.idempotentsFound {
		return
	}
	s.Enumerate(context.Background(), LimitMax)

	n := int(s.nr)
	s.isIdempotent = make([]bool, n)

	threads := s.maxThreads
	if threads > 1 && n/threads < minRangePerThread {
		threads = n / minRangePerThread
	}
	if threads <= 1 {
		s.idempotents = s.scanIdempotents(0, n, s.isIdempotent)
		s.idempotentsFound = true
		return
	}

	found := make([][]Pos, threads)
	var g errgroup.Group
	chunk := (n + threads - 1) / threads
	for t := 0; t < threads; t++ {
		begin := t * chunk
		end := min(begin+chunk, n)
		slot := t
		g.Go(func() error {
			found[slot] = s.scanIdempotents(begin, end, s.isIdempotent)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, part := range found {
		total += len(part)
	}
	s.idempotents = make([]Pos, 0, total)
	for _, part := range found {
		s.idempotents = append(s.idempotents, part...)
	}
	s.idempotentsFound = true
}

// scanIdempotents checks positions in [begin, end). Workers only read the
// element table and write into their own buffer and into disjoint entries of
// flags.
func (s *Semigroup) scanIdempotents(begin, end int, flags []bool) []Pos {
	var out []Pos
	scratch := s.id.Clone()
	for p := begin; p < end; p++ {
		scratch.Mul(s.elements[p], s.elements[p])
		if scratch.Equal(s.elements[p]) {
			out = append(out, Pos(p))
			flags[p] = true
		}
	}
	return out
}
