package semigroup

import (
	"context"
	"time"

	"github.com/markuspf/libsemigroups/pkg/observability"
)

// Enumerate advances the Froidure-Pin enumeration until either the semigroup
// is fully enumerated or at least max(limit, current size + batch size)
// elements are known. If limit is not above the current size, Enumerate
// returns without doing any work.
//
// The context is sampled once per row: cancelling it makes Enumerate return
// early with every table in a consistent state, the cursor pointing at the
// next row to process. Cancellation is not an error and a later call resumes
// exactly where this one stopped.
func (s *Semigroup) Enumerate(ctx context.Context, limit Pos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enumerate(ctx, limit)
}

func (s *Semigroup) enumerate(ctx context.Context, limit Pos) {
	if s.pos >= s.nr || limit <= s.nr || ctx.Err() != nil {
		return
	}
	limit = max(limit, satAdd(s.nr, Pos(s.batchSize)))

	start := time.Now()
	obs := observability.Enumeration()
	obs.OnEnumerateStart(ctx, len(s.elements), int(limit))

	nrgens := len(s.gens)

	// multiply the generators by every generator
	if s.pos < s.lenindex[1] {
		for s.pos < s.lenindex[1] && s.nr < limit && ctx.Err() == nil {
			i := s.index[s.pos]
			b := s.first[i]
			s.multiplied[i] = true
			for j := 0; j < nrgens; j++ {
				s.tmp.Mul(s.elements[i], s.gens[j])
				if q, ok := s.find(s.tmp); ok {
					s.right.Set(int(i), j, q)
					s.nrRules++
				} else {
					s.right.Set(int(i), j, s.nr)
					s.reduced.Set(int(i), j, true)
					s.pushNew(s.tmp.Clone(), b, Letter(j), 2, i, s.letterToPos[j])
				}
			}
			s.pos++
		}
		if s.pos == s.lenindex[1] {
			// the length-one block is complete: read its left Cayley rows off
			// the generator rows of the right graph
			for k := Pos(0); k < s.pos; k++ {
				i := s.index[k]
				b := s.final[i]
				for j := 0; j < nrgens; j++ {
					s.left.Set(int(i), j, s.right.Get(int(s.letterToPos[j]), int(b)))
				}
			}
			// length-two elements exist exactly when the index outgrew the
			// generator block; comparing against the block survives resumption
			if Pos(len(s.index)) > s.lenindex[1] {
				s.wordlen++
			}
			s.lenindex = append(s.lenindex, Pos(len(s.index)))
			obs.OnProgress(ctx, len(s.elements), s.nrRules, s.CurrentMaxWordLength())
		}
	}

	// multiply the words of length > 1 by every generator
	stop := s.nr >= limit || ctx.Err() != nil
	for s.pos != s.nr && !stop {
		for s.pos != s.lenindex[s.wordlen+1] && !stop {
			i := s.index[s.pos]
			b := s.first[i]
			sfx := s.suffix[i]
			s.multiplied[i] = true
			for j := 0; j < nrgens; j++ {
				if !s.reduced.Get(int(sfx), j) {
					// the word of i times j rewrites through the suffix: its
					// product position is already known
					r := s.right.Get(int(sfx), j)
					switch {
					case s.foundOne && r == s.posOne:
						s.right.Set(int(i), j, s.letterToPos[b])
					case s.prefix[r] != Undefined:
						s.right.Set(int(i), j,
							s.right.Get(int(s.left.Get(int(s.prefix[r]), int(b))), int(s.final[r])))
					default:
						s.right.Set(int(i), j,
							s.right.Get(int(s.letterToPos[b]), int(s.final[r])))
					}
				} else {
					s.tmp.Mul(s.elements[i], s.gens[j])
					if q, ok := s.find(s.tmp); ok {
						s.right.Set(int(i), j, q)
						s.nrRules++
					} else {
						s.right.Set(int(i), j, s.nr)
						s.reduced.Set(int(i), j, true)
						s.pushNew(s.tmp.Clone(), b, Letter(j),
							Pos(s.wordlen+2), i, s.right.Get(int(sfx), j))
					}
				}
			}
			s.pos++
			stop = s.nr >= limit || ctx.Err() != nil
		}
		if s.pos == s.lenindex[s.wordlen+1] {
			// level complete: every row of this length has been multiplied,
			// so the left Cayley rows can be filled in
			for k := s.lenindex[s.wordlen]; k < s.pos; k++ {
				i := s.index[k]
				p := s.prefix[i]
				b := s.final[i]
				for j := 0; j < nrgens; j++ {
					s.left.Set(int(i), j, s.right.Get(int(s.left.Get(int(p), j)), int(b)))
				}
			}
			s.wordlen++
			s.lenindex = append(s.lenindex, Pos(len(s.index)))
			obs.OnProgress(ctx, len(s.elements), s.nrRules, s.CurrentMaxWordLength())
		}
	}

	obs.OnEnumerateDone(ctx, len(s.elements), s.nrRules, s.pos >= s.nr, time.Since(start))
}
