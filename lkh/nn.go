package lkh

import (
	"math"

	"github.com/katalvlaran/lkhcore/tour"
)

// NearestNeighborTour greedily constructs a tour by repeatedly stepping to
// the nearest unvisited node found in the current node's candidate list;
// when every immediate candidate is already visited, the search widens to
// candidates-of-candidates (breadth-first), and falls back to a full scan
// over all unvisited nodes only if the candidate graph is exhausted.
func NearestNeighborTour(t tour.Tour) (*tour.Order, error) {
	n := t.Len()
	if n == 0 {
		return tour.NewOrder(nil), nil
	}

	visited := make([]bool, n)
	order := tour.NewOrder(make([]int, 0, n))

	cur := 0
	visited[0] = true
	order.Add(0)

	for order.Len() < n {
		next, err := nearestUnvisited(t, cur, visited)
		if err != nil {
			return nil, err
		}
		if next == -1 {
			next = fallbackNearestUnvisited(t, cur, visited)
		}
		if next == -1 {
			return nil, ErrSearchFailed
		}
		visited[next] = true
		order.Add(next)
		cur = next
	}

	return order, nil
}

// nearestUnvisited searches cur's candidate list for the nearest unvisited
// node, widening to candidates-of-candidates when the current frontier has
// none left to offer.
func nearestUnvisited(t tour.Tour, cur tour.NodeId, visited []bool) (tour.NodeId, error) {
	frontier, err := t.Candidates(cur)
	if err != nil {
		return -1, err
	}
	seen := make(map[tour.NodeId]bool, len(frontier))
	for _, c := range frontier {
		seen[c] = true
	}

	for len(frontier) > 0 {
		best := -1
		bestD := math.Inf(1)
		for _, cand := range frontier {
			if visited[cand] {
				continue
			}
			d := t.Distance(cur, cand)
			if d < bestD {
				bestD = d
				best = cand
			}
		}
		if best != -1 {
			return best, nil
		}

		var widened []tour.NodeId
		for _, cand := range frontier {
			more, err := t.Candidates(cand)
			if err != nil {
				return -1, err
			}
			for _, m := range more {
				if !seen[m] {
					seen[m] = true
					widened = append(widened, m)
				}
			}
		}
		frontier = widened
	}

	return -1, nil
}

// fallbackNearestUnvisited scans every node directly; used only when the
// candidate graph does not reach a remaining unvisited node (small or
// disconnected candidate lists).
func fallbackNearestUnvisited(t tour.Tour, cur tour.NodeId, visited []bool) tour.NodeId {
	best := -1
	bestD := math.Inf(1)
	for v := 0; v < t.Len(); v++ {
		if visited[v] {
			continue
		}
		d := t.Distance(cur, v)
		if d < bestD {
			bestD = d
			best = v
		}
	}
	return best
}
