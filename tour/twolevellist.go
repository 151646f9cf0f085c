package tour

import "math"

// TwoLevelList is the centerpiece tour representation: a doubly-linked
// list of nodes partitioned into ⌈N/G⌉ segments of target size G≈√N, each
// carrying a reversal bit, giving O(√N) flip and O(1) successor/predecessor/
// between.
//
// All intra-tour references are small integer ids into arenas
// (nodeSeg/nodeRank/nodePred/nodeSucc indexed by NodeId, segments indexed by
// segId) rather than pointers, eliminating pointer-aliasing hazards.
type TwoLevelList struct {
	repo Distancer

	groupSize int

	nodeSeg  []segId
	nodeRank []int
	nodePred []NodeId // intrinsic predecessor (before applying reverse bit)
	nodeSucc []NodeId // intrinsic successor (before applying reverse bit)
	visited  []bool
	cands    [][]NodeId

	segments []segment
	headSeg  segId // an arbitrary live segment, kept valid via nodeSeg[0]

	totalDist float64
}

// NewTwoLevelList builds a TLL in natural order (0,1,...,N-1) over repo, with
// segment target size G chosen as round(sqrt(N)) unless overridden.
func NewTwoLevelList(repo Distancer, groupSize int) *TwoLevelList {
	n := repo.Size()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return buildTwoLevelList(repo, order, groupSize)
}

func defaultGroupSize(n int) int {
	g := int(math.Round(math.Sqrt(float64(n))))
	if g < 1 {
		g = 1
	}
	return g
}

func buildTwoLevelList(repo Distancer, order []int, groupSize int) *TwoLevelList {
	n := len(order)
	if groupSize <= 0 {
		groupSize = defaultGroupSize(n)
	}

	t := &TwoLevelList{
		repo:      repo,
		groupSize: groupSize,
		nodeSeg:   make([]segId, n),
		nodeRank:  make([]int, n),
		nodePred:  make([]NodeId, n),
		nodeSucc:  make([]NodeId, n),
		visited:   make([]bool, n),
		cands:     make([][]NodeId, n),
	}
	t.rebuildFrom(order)
	return t
}

// rebuildFrom tears down and reconstructs the entire segment arena from a
// flat permutation. Used by the constructor and by Apply.
func (t *TwoLevelList) rebuildFrom(order []int) {
	n := len(order)
	numSegs := (n + t.groupSize - 1) / t.groupSize
	if numSegs < 1 {
		numSegs = 1
	}
	t.segments = make([]segment, 0, numSegs)

	pos := 0
	for s := 0; s < numSegs; s++ {
		remaining := n - pos
		segsLeft := numSegs - s
		size := remaining / segsLeft
		if size < 1 {
			size = 1
		}
		seg := segment{rank: s, alive: true}
		for k := 0; k < size && pos < n; k++ {
			idx := order[pos]
			t.nodeSeg[idx] = s
			t.nodeRank[idx] = k
			if k == 0 {
				seg.first = idx
			} else {
				prev := order[pos-1]
				t.nodeSucc[prev] = idx
				t.nodePred[idx] = prev
			}
			pos++
		}
		seg.last = order[pos-1]
		seg.len = size
		seg.next = (s + 1) % numSegs
		seg.prev = (s - 1 + numSegs) % numSegs
		t.segments = append(t.segments, seg)
	}
	t.headSeg = t.nodeSeg[order[0]]
	t.recomputeCost()
}

func (t *TwoLevelList) Len() int { return len(t.nodeSeg) }

func (t *TwoLevelList) checkIndex(i NodeId) error {
	if i < 0 || i >= len(t.nodeSeg) {
		return ErrNodeNotFound
	}
	return nil
}

func (t *TwoLevelList) Get(index NodeId) (NodeId, error) {
	if err := t.checkIndex(index); err != nil {
		return 0, err
	}
	return index, nil
}

// effFirst/effLast return the segment's effective boundary nodes.
func effFirst(s segment) NodeId {
	if s.reverse {
		return s.last
	}
	return s.first
}

func effLast(s segment) NodeId {
	if s.reverse {
		return s.first
	}
	return s.last
}

func (t *TwoLevelList) Successor(n NodeId) (NodeId, error) {
	if err := t.checkIndex(n); err != nil {
		return 0, err
	}
	return t.effSucc(n), nil
}

func (t *TwoLevelList) Predecessor(n NodeId) (NodeId, error) {
	if err := t.checkIndex(n); err != nil {
		return 0, err
	}
	return t.effPred(n), nil
}

func (t *TwoLevelList) effSucc(n NodeId) NodeId {
	s := t.segments[t.nodeSeg[n]]
	if !s.reverse {
		if n == s.last {
			return effFirst(t.segments[s.next])
		}
		return t.nodeSucc[n]
	}
	if n == s.first {
		return effFirst(t.segments[s.next])
	}
	return t.nodePred[n]
}

func (t *TwoLevelList) effPred(n NodeId) NodeId {
	s := t.segments[t.nodeSeg[n]]
	if !s.reverse {
		if n == s.first {
			return effLast(t.segments[s.prev])
		}
		return t.nodePred[n]
	}
	if n == s.last {
		return effLast(t.segments[s.prev])
	}
	return t.nodeSucc[n]
}

func (t *TwoLevelList) Relation(a, b NodeId) (Relation, error) {
	if err := t.checkIndex(a); err != nil {
		return None, err
	}
	if err := t.checkIndex(b); err != nil {
		return None, err
	}
	if t.effSucc(a) == b {
		return Successor, nil
	}
	if t.effPred(a) == b {
		return Predecessor, nil
	}
	return None, nil
}

// effRank is a node's position within its segment's effective order.
func (t *TwoLevelList) effRank(n NodeId) int {
	s := t.segments[t.nodeSeg[n]]
	if s.reverse {
		return s.len - 1 - t.nodeRank[n]
	}
	return t.nodeRank[n]
}

// pos is a node's global effective position, expressed as a (segment rank,
// in-segment effective rank) pair; comparing these pairs lexicographically
// reproduces the three-case between() logic in a single formula: the
// segment rank dominates the comparison (all-distinct-segments case), and
// ties on segment rank fall through to the in-segment rank (same-segment or
// two-same-one-different cases).
func (t *TwoLevelList) pos(n NodeId) (int, int) {
	s := t.segments[t.nodeSeg[n]]
	return s.rank, t.effRank(n)
}

func cmpPos(ax, ay, bx, by int) int {
	if ax != bx {
		if ax < bx {
			return -1
		}
		return 1
	}
	if ay == by {
		return 0
	}
	if ay < by {
		return -1
	}
	return 1
}

func (t *TwoLevelList) Between(a, b, c NodeId) (bool, error) {
	for _, id := range [...]NodeId{a, b, c} {
		if err := t.checkIndex(id); err != nil {
			return false, err
		}
	}
	ax, ay := t.pos(a)
	bx, by := t.pos(b)
	cx, cy := t.pos(c)

	cmpAC := cmpPos(ax, ay, cx, cy)
	if cmpAC <= 0 {
		return cmpPos(ax, ay, bx, by) <= 0 && cmpPos(bx, by, cx, cy) <= 0, nil
	}
	return !(cmpPos(cx, cy, bx, by) < 0 && cmpPos(bx, by, ax, ay) < 0), nil
}

func (t *TwoLevelList) Distance(a, b NodeId) float64 { return t.repo.Distance(a, b) }

func (t *TwoLevelList) TotalDistance() float64 { return t.totalDist }

func (t *TwoLevelList) recomputeCost() {
	n := len(t.nodeSeg)
	total := 0.0
	cur := 0
	for i := 0; i < n; i++ {
		next := t.effSucc(cur)
		total += t.repo.Distance(cur, next)
		cur = next
	}
	t.totalDist = total
}

func (t *TwoLevelList) Reset() {
	for i := range t.visited {
		t.visited[i] = false
	}
}

func (t *TwoLevelList) GenCandidates(k int) {
	genCandidatesKNN(t.repo, t.cands, k)
}

func (t *TwoLevelList) Candidates(n NodeId) ([]NodeId, error) {
	if err := t.checkIndex(n); err != nil {
		return nil, err
	}
	return t.cands[n], nil
}

func (t *TwoLevelList) Order() *Order {
	n := len(t.nodeSeg)
	out := make([]int, n)
	cur := 0
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = t.effSucc(cur)
	}
	return NewOrderWithCost(out, t.totalDist)
}

func (t *TwoLevelList) Apply(order *Order) error {
	n := len(t.nodeSeg)
	if order.Len() != n {
		return ErrTourLenMismatch
	}
	if !ValidatePermutation(order.Slice(), n) {
		return ErrInvalidTourOrder
	}
	t.rebuildFrom(order.Slice())
	return nil
}
