package tour

// Flip replaces edges (f1,t1) and (f2,t2) with (f1,f2) and (t1,t2), reversing
// whichever of the two arcs between the cuts is cheaper to reverse.
//
// The two candidate reversal arcs are [t1..f2] and [t2..f1] (effective
// order, inclusive); reversing either produces the same undirected tour, so
// the shorter one (by segment-rank distance) is chosen for the O(√N) bound.
func (t *TwoLevelList) Flip(f1, t1, f2, t2 NodeId) error {
	for _, id := range [...]NodeId{f1, t1, f2, t2} {
		if err := t.checkIndex(id); err != nil {
			return err
		}
	}
	if t.effSucc(f1) != t1 || t.effSucc(f2) != t2 {
		return ErrBrokenTour
	}

	d1, d2 := t.distance(f1, t1), t.distance(f2, t2)
	nd1, nd2 := t.distance(f1, f2), t.distance(t1, t2)

	revFrom, revTo := t1, f2
	if t.segDistance(t.nodeSeg[t1], t.nodeSeg[f2]) > t.segDistance(t.nodeSeg[t2], t.nodeSeg[f1]) {
		revFrom, revTo = t2, f1
	}

	if err := t.reverseArc(revFrom, revTo); err != nil {
		return err
	}

	t.totalDist += nd1 + nd2 - d1 - d2
	return nil
}

func (t *TwoLevelList) distance(a, b NodeId) float64 { return t.repo.Distance(a, b) }

// segDistance is the cyclic rank distance from segment a to segment b,
// walking forward — an O(1) proxy for "how many segments apart" using the
// ranks maintained by renumberSegments.
func (t *TwoLevelList) segDistance(a, b segId) int {
	numSegs := len(t.segments)
	d := t.segments[b].rank - t.segments[a].rank
	if d < 0 {
		d += numSegs
	}
	return d
}

// reverseArc reverses the effective-order arc [from..to] inclusive.
func (t *TwoLevelList) reverseArc(from, to NodeId) error {
	if t.nodeSeg[from] == t.nodeSeg[to] {
		s := t.segments[t.nodeSeg[from]]
		if from == effFirst(s) && to == effLast(s) {
			return t.toggleSegment(t.nodeSeg[from])
		}
		return t.reverseWithinSegment(from, to)
	}

	if err := t.ensureEffFirst(from); err != nil {
		return err
	}
	if err := t.ensureEffLast(to); err != nil {
		return err
	}
	if err := t.reverseSegmentRun(t.nodeSeg[from], t.nodeSeg[to]); err != nil {
		return err
	}
	t.renumberSegments()
	return nil
}

// toggleSegment handles the whole-segment fast path (Case A, whole segment):
// O(1), just flips the bit.
func (t *TwoLevelList) toggleSegment(s segId) error {
	t.segments[s].reverse = !t.segments[s].reverse
	return nil
}

// segEffNodes materializes a segment's nodes in effective order.
func (t *TwoLevelList) segEffNodes(s segId) []NodeId {
	seg := t.segments[s]
	out := make([]NodeId, seg.len)
	cur := effFirst(seg)
	for i := 0; i < seg.len; i++ {
		out[i] = cur
		if i < seg.len-1 {
			if seg.reverse {
				cur = t.nodePred[cur]
			} else {
				cur = t.nodeSucc[cur]
			}
		}
	}
	return out
}

// relinkSegmentIntrinsic rewrites a segment's intrinsic succ/pred/rank/first/
// last from an explicit effective-order node list, clearing its reverse bit
// (intrinsic order becomes effective order).
func (t *TwoLevelList) relinkSegmentIntrinsic(s segId, nodes []NodeId) {
	for i, n := range nodes {
		t.nodeSeg[n] = s
		t.nodeRank[n] = i
		if i > 0 {
			t.nodePred[n] = nodes[i-1]
			t.nodeSucc[nodes[i-1]] = n
		}
	}
	seg := &t.segments[s]
	seg.reverse = false
	seg.first = nodes[0]
	seg.last = nodes[len(nodes)-1]
	seg.len = len(nodes)
}

// reverseWithinSegment reverses the sub-run [from..to] (effective order,
// inclusive) inside a single segment without splitting it (Case A, the
// general in-segment case of ).
func (t *TwoLevelList) reverseWithinSegment(from, to NodeId) error {
	s := t.nodeSeg[from]
	nodes := t.segEffNodes(s)

	fromIdx, toIdx := -1, -1
	for i, n := range nodes {
		if n == from {
			fromIdx = i
		}
		if n == to {
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 || fromIdx > toIdx {
		return ErrBrokenTour
	}

	for i, j := fromIdx, toIdx; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	t.relinkSegmentIntrinsic(s, nodes)
	return nil
}

// ensureEffFirst splits node's segment, if necessary, so node becomes the
// effective-first node of its (possibly new) segment.
func (t *TwoLevelList) ensureEffFirst(node NodeId) error {
	s := t.segments[t.nodeSeg[node]]
	if node == effFirst(s) {
		return nil
	}
	return t.splitBefore(node)
}

// ensureEffLast splits node's segment, if necessary, so node becomes the
// effective-last node of its (possibly new) segment.
func (t *TwoLevelList) ensureEffLast(node NodeId) error {
	s := t.segments[t.nodeSeg[node]]
	if node == effLast(s) {
		return nil
	}
	var nxt NodeId
	if s.reverse {
		nxt = t.nodePred[node]
	} else {
		nxt = t.nodeSucc[node]
	}
	return t.splitBefore(nxt)
}

// splitBefore splits node's segment into two segments at node's effective
// boundary: the existing segment id keeps everything before node (effective
// order), a freshly allocated segment id holds node onward. Both halves are
// relinked with reverse cleared; this moves the affected nodes rather than
// pointer-chasing the whole segment.
func (t *TwoLevelList) splitBefore(node NodeId) error {
	s := t.nodeSeg[node]
	nodes := t.segEffNodes(s)

	k := -1
	for i, n := range nodes {
		if n == node {
			k = i
			break
		}
	}
	if k <= 0 {
		return ErrBrokenTour
	}

	before, after := nodes[:k], nodes[k:]

	newSeg := segId(len(t.segments))
	t.segments = append(t.segments, segment{alive: true})

	old := t.segments[s]
	t.relinkSegmentIntrinsic(s, before)
	t.relinkSegmentIntrinsic(newSeg, after)

	// splice newSeg in right after s, before the old next segment
	oldNext := old.next
	t.segments[s].next = newSeg
	t.segments[newSeg].prev = s
	t.segments[newSeg].next = oldNext
	t.segments[oldNext].prev = newSeg

	t.headSeg = t.nodeSeg[0]
	return nil
}

// reverseSegmentRun reverses the chain of whole segments from segFrom to
// segTo (inclusive, following .next), toggling each segment's reversal bit
// and relinking the segment list in reverse order — Case B, O(√N) since
// there are O(√N) segments.
func (t *TwoLevelList) reverseSegmentRun(segFrom, segTo segId) error {
	chain := []segId{segFrom}
	cur := segFrom
	for cur != segTo {
		cur = t.segments[cur].next
		chain = append(chain, cur)
		if len(chain) > len(t.segments)+1 {
			return ErrBrokenTour
		}
	}

	before := t.segments[segFrom].prev
	after := t.segments[segTo].next

	for _, s := range chain {
		t.segments[s].reverse = !t.segments[s].reverse
	}

	// relink in reverse order
	n := len(chain)
	t.segments[before].next = chain[n-1]
	t.segments[chain[n-1]].prev = before
	for i := n - 1; i > 0; i-- {
		t.segments[chain[i]].next = chain[i-1]
		t.segments[chain[i-1]].prev = chain[i]
	}
	t.segments[chain[0]].next = after
	t.segments[after].prev = chain[0]

	t.headSeg = t.nodeSeg[0]
	return nil
}

// renumberSegments walks the cyclic segment list once, assigning sequential
// ranks — the O(√N) bookkeeping step that keeps Between O(1).
func (t *TwoLevelList) renumberSegments() {
	start := t.headSeg
	cur := start
	rank := 0
	for {
		t.segments[cur].rank = rank
		rank++
		cur = t.segments[cur].next
		if cur == start {
			break
		}
	}
}
