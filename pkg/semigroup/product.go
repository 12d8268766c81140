package semigroup

// ProductByReduction returns the position of the product of the elements at
// positions i and j by tracing minimal words through the Cayley graphs: the
// minimal word of whichever operand is shorter is replayed, letter by
// letter, against the opposite graph starting from the other operand. Only
// table reads are performed; both positions must already be enumerated and
// their rows complete, so this is intended for a fully enumerated semigroup.
func (s *Semigroup) ProductByReduction(i, j Pos) Pos {
	if s.length[i] <= s.length[j] {
		for i != Undefined {
			j = s.left.Get(int(j), int(s.final[i]))
			i = s.prefix[i]
		}
		return j
	}
	for j != Undefined {
		i = s.right.Get(int(i), int(s.first[j]))
		j = s.suffix[j]
	}
	return i
}

// FastProduct returns the position of the product of the elements at
// positions i and j, choosing between tracing the Cayley graphs and
// multiplying the elements directly: when the combined word length is below
// the cost of one multiplication the graph walk is cheaper.
func (s *Semigroup) FastProduct(i, j Pos) Pos {
	if int(s.length[i])+int(s.length[j]) < s.elements[i].Complexity() {
		return s.ProductByReduction(i, j)
	}
	scratch := s.tmp.Clone()
	scratch.Mul(s.elements[i], s.elements[j])
	p, ok := s.find(scratch)
	if !ok {
		return Undefined
	}
	return p
}
