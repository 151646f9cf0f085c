package lkh

import (
	"time"

	"github.com/katalvlaran/lkhcore/tour"
)

// nodeStatus tracks whether a node still needs local-search attention.
type nodeStatus int

const (
	statusActive nodeStatus = iota
	statusAnchored
)

// Result summarizes one Solve call: the best tour order found across all
// trials and its cost.
type Result struct {
	// Order is the best order found, suitable for Tour.Apply.
	Order *tour.Order
	// Cost is Order's total distance.
	Cost float64
}

// Solve runs the outer LKH trial loop against t. It first generates each
// node's candidate list via t.GenCandidates(opts.CandidateListSize), then
// for every trial resets the tour per opts.InitialTour, builds the active
// queue (every node whose tour neighbors are not both already in its
// candidate list), and drains it with search2Opt, accepting the first
// gainful move per popped node.
func Solve(t tour.Tour, opts Options) (Result, error) {
	trials := opts.Trials
	if trials <= 0 {
		trials = 1
	}

	k := opts.CandidateListSize
	if k <= 0 {
		k = DefaultOptions().CandidateListSize
	}
	t.GenCandidates(k)

	best := Result{Cost: 0}
	haveBest := false
	start := time.Now()

	for trial := 0; trial < trials; trial++ {
		if trial > 0 && opts.TimeLimit > 0 && time.Since(start) >= opts.TimeLimit {
			break
		}
		if err := resetTour(t, opts); err != nil {
			return Result{}, err
		}

		if err := runTrial(t); err != nil {
			return Result{}, err
		}

		cost := t.TotalDistance()
		if !haveBest || cost < best.Cost {
			haveBest = true
			best = Result{Order: t.Order(), Cost: cost}
		}
	}

	return best, nil
}

// resetTour rebuilds the trial's starting tour per opts.InitialTour.
func resetTour(t tour.Tour, opts Options) error {
	t.Reset()

	switch opts.InitialTour {
	case NearestNeighbor:
		order, err := NearestNeighborTour(t)
		if err != nil {
			return err
		}
		return t.Apply(order)
	default:
		n := t.Len()
		natural := make([]int, n)
		for i := range natural {
			natural[i] = i
		}
		return t.Apply(tour.NewOrder(natural))
	}
}

// runTrial builds the active queue and drains it with search2Opt: each
// popped node is immediately marked Anchored (so a failed search never
// re-queues it within this trial) and a successful one proceeds to the next
// active node.
func runTrial(t tour.Tour) error {
	n := t.Len()
	status := make([]nodeStatus, n)
	queue := make([]tour.NodeId, 0, n)

	for node := 0; node < n; node++ {
		succ, err := t.Successor(node)
		if err != nil {
			return err
		}
		pred, err := t.Predecessor(node)
		if err != nil {
			return err
		}

		succKnown, err := isBestNeighbor(t, node, succ)
		if err != nil {
			return err
		}
		predKnown, err := isBestNeighbor(t, node, pred)
		if err != nil {
			return err
		}

		if succKnown && predKnown {
			status[node] = statusAnchored
		} else {
			status[node] = statusActive
			queue = append(queue, node)
		}
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		status[node] = statusAnchored

		succ, err := t.Successor(node)
		if err != nil {
			return err
		}

		if _, err := search2Opt(t, node, succ); err != nil && err != ErrSearchFailed {
			return err
		}
	}

	return nil
}

// isBestNeighbor reports whether other appears anywhere in node's candidate
// list — the membership test behind solver.rs's is_best_neighbours(_, 0).
func isBestNeighbor(t tour.Tour, node, other tour.NodeId) (bool, error) {
	cands, err := t.Candidates(node)
	if err != nil {
		return false, err
	}
	for _, c := range cands {
		if c == other {
			return true, nil
		}
	}
	return false, nil
}
