package tour

// Array is the reference tour implementation: a permutation vector plus
// its inverse, the tracker. O(N) flip, O(1) successor/predecessor/between.
// Used as an oracle for property tests against TwoLevelList.
type Array struct {
	repo Distancer

	nodes   []NodeId // nodes[pos] = repository index currently at position pos
	tracker []int    // tracker[index] = position of the node with that repository index

	visited []bool
	cands   [][]NodeId

	totalDist float64
}

// NewArray builds a natural-order array tour (0,1,...,N-1) over repo.
func NewArray(repo Distancer) *Array {
	n := repo.Size()
	a := &Array{
		repo:    repo,
		nodes:   make([]NodeId, n),
		tracker: make([]int, n),
		visited: make([]bool, n),
		cands:   make([][]NodeId, n),
	}
	for i := 0; i < n; i++ {
		a.nodes[i] = i
		a.tracker[i] = i
	}
	a.recomputeCost()
	return a
}

func (a *Array) Len() int { return len(a.nodes) }

func (a *Array) checkIndex(i NodeId) error {
	if i < 0 || i >= len(a.nodes) {
		return ErrNodeNotFound
	}
	return nil
}

func (a *Array) Get(index NodeId) (NodeId, error) {
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}
	return index, nil
}

// Apply rebuilds nodes/tracker from order and recomputes total distance.
func (a *Array) Apply(order *Order) error {
	n := len(a.nodes)
	if order.Len() != n {
		return ErrTourLenMismatch
	}
	if !ValidatePermutation(order.Slice(), n) {
		return ErrInvalidTourOrder
	}
	copy(a.nodes, order.Slice())
	for pos, idx := range a.nodes {
		a.tracker[idx] = pos
	}
	a.recomputeCost()
	return nil
}

func (a *Array) recomputeCost() {
	n := len(a.nodes)
	total := 0.0
	for pos := 0; pos < n; pos++ {
		next := a.nodes[(pos+1)%n]
		total += a.repo.Distance(a.nodes[pos], next)
	}
	a.totalDist = total
}

func (a *Array) Successor(n NodeId) (NodeId, error) {
	if err := a.checkIndex(n); err != nil {
		return 0, err
	}
	pos := a.tracker[n]
	return a.nodes[(pos+1)%len(a.nodes)], nil
}

func (a *Array) Predecessor(n NodeId) (NodeId, error) {
	if err := a.checkIndex(n); err != nil {
		return 0, err
	}
	pos := a.tracker[n]
	return a.nodes[(pos-1+len(a.nodes))%len(a.nodes)], nil
}

// between is the cyclic three-integer test over positions.
func between(from, mid, to int) bool {
	if from <= to {
		return from <= mid && mid <= to
	}
	return !(to < mid && mid < from)
}

func (a *Array) Between(x, y, z NodeId) (bool, error) {
	if err := a.checkIndex(x); err != nil {
		return false, err
	}
	if err := a.checkIndex(y); err != nil {
		return false, err
	}
	if err := a.checkIndex(z); err != nil {
		return false, err
	}
	return between(a.tracker[x], a.tracker[y], a.tracker[z]), nil
}

func (a *Array) Relation(x, y NodeId) (Relation, error) {
	succ, err := a.Successor(x)
	if err != nil {
		return None, err
	}
	if succ == y {
		return Successor, nil
	}
	pred, err := a.Predecessor(x)
	if err != nil {
		return None, err
	}
	if pred == y {
		return Predecessor, nil
	}
	return None, nil
}

// Flip canonicalizes so fa < fb in position space, then reverses the
// sub-array between positions tracker[ta] and tracker[fb] inclusive,
// maintaining tracker by swapping entries as nodes move.
func (a *Array) Flip(f1, t1, f2, t2 NodeId) error {
	for _, id := range [...]NodeId{f1, t1, f2, t2} {
		if err := a.checkIndex(id); err != nil {
			return err
		}
	}

	n := len(a.nodes)
	pf1, pf2 := a.tracker[f1], a.tracker[f2]

	fa, ta, fb := f1, t1, f2
	if pf1 > pf2 {
		fa, ta, fb = f2, t2, f1
	}
	_ = fa

	lo := a.tracker[ta]
	hi := a.tracker[fb]

	// reverse the inclusive run [lo,hi] cyclically
	length := hi - lo
	if length < 0 {
		length += n
	}
	length++

	for k := 0; k < length/2; k++ {
		i := (lo + k) % n
		j := (hi - k + n) % n
		a.nodes[i], a.nodes[j] = a.nodes[j], a.nodes[i]
		a.tracker[a.nodes[i]] = i
		a.tracker[a.nodes[j]] = j
	}

	a.recomputeCost()
	return nil
}

func (a *Array) Distance(x, y NodeId) float64 { return a.repo.Distance(x, y) }

func (a *Array) TotalDistance() float64 { return a.totalDist }

func (a *Array) Reset() {
	for i := range a.visited {
		a.visited[i] = false
	}
}

func (a *Array) GenCandidates(k int) {
	genCandidatesKNN(a.repo, a.cands, k)
}

func (a *Array) Candidates(n NodeId) ([]NodeId, error) {
	if err := a.checkIndex(n); err != nil {
		return nil, err
	}
	return a.cands[n], nil
}

func (a *Array) Order() *Order {
	n := len(a.nodes)
	out := make([]int, n)
	if n > 0 {
		start := a.tracker[0]
		for i := range out {
			out[i] = a.nodes[(start+i)%n]
		}
	}
	return NewOrderWithCost(out, a.totalDist)
}
