package onetree

import "math"

// Distancer is the minimal read-only view onetree needs from a repository —
// identical in shape to tour.Distancer, kept as its own type so this package
// never imports tour (dependency direction stays leaf-ward, as repository
// does not import tour either).
type Distancer interface {
	Size() int
	Distance(a, b int) float64
}

// Tree is a built spanning 1-tree: node 0 re-attached to an MST over
// {1..N-1} by its two cheapest eligible edges.
type Tree struct {
	// Degree[i] is the number of 1-tree edges incident to node i.
	Degree []int
	// Parent[i] is i's MST parent for i in {1..N-1}; Parent[0] is unused.
	Parent []int
	// Cost is the total reduced-cost weight of the tree's edges.
	Cost float64
}

// engine holds reusable working state across repeated Build calls from the
// ascent loop, avoiding per-iteration allocation.
type engine struct {
	repo   Distancer
	n      int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func newEngine(repo Distancer) *engine {
	n := repo.Size()
	return &engine{
		repo:   repo,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}
}

// reduced returns d(u,v) + pi[u] + pi[v], the reduced cost under the current
// Lagrangian penalties.
func (e *engine) reduced(u, v int) float64 {
	return e.repo.Distance(u, v) + e.pi[u] + e.pi[v]
}

// build constructs the minimum 1-tree on reduced costs: Prim's MST over
// {1..n-1} (node 0 excluded, O(n²), no heap, dense) plus the two cheapest
// reduced-cost edges incident to node 0. Zero-distance edges are forbidden and
// never used; when skipping them leaves no spanning 1-tree, build returns
// ErrForbiddenEdge rather than ErrIncompleteGraph.
func (e *engine) build() (*Tree, error) {
	n := e.n
	for i := range e.deg {
		e.deg[i] = 0
	}

	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
	}

	// MST over {1..n-1}, seeded at node 1.
	e.key[1] = 0
	var costReduced float64
	zeroSkipped := false

	for iter := 0; iter < n-1; iter++ {
		best := -1
		bestKey := inf
		for v := 1; v < n; v++ {
			if e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < bestKey || (e.key[v] == bestKey && v < best) {
				best = v
				bestKey = e.key[v]
			}
		}
		if best == -1 || math.IsInf(e.key[best], 0) {
			if zeroSkipped {
				return nil, ErrForbiddenEdge
			}
			return nil, ErrIncompleteGraph
		}

		e.inTree[best] = true
		if e.parent[best] != -1 {
			u := e.parent[best]
			d := e.repo.Distance(best, u)
			if d < 0 {
				return nil, ErrNegativeWeight
			}
			if d == 0 {
				return nil, ErrForbiddenEdge
			}
			costReduced += e.reduced(best, u)
			e.deg[best]++
			e.deg[u]++
		}

		for v := 1; v < n; v++ {
			if e.inTree[v] || v == best {
				continue
			}
			d := e.repo.Distance(best, v)
			if d < 0 {
				return nil, ErrNegativeWeight
			}
			if d == 0 {
				zeroSkipped = true
				continue // forbidden as a relaxation candidate; may still be rejected later if forced
			}
			c := e.reduced(best, v)
			if c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest eligible edges incident to node 0.
	m1, m2 := inf, inf
	m1To, m2To := -1, -1
	for v := 1; v < n; v++ {
		d := e.repo.Distance(0, v)
		if d < 0 {
			return nil, ErrNegativeWeight
		}
		if d == 0 {
			zeroSkipped = true
			continue
		}
		c := e.reduced(0, v)
		if c < m1 || (c == m1 && v < m1To) {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 || (c == m2 && v < m2To) {
			m2, m2To = c, v
		}
	}
	if m1To == -1 || m2To == -1 {
		if zeroSkipped {
			return nil, ErrForbiddenEdge
		}
		return nil, ErrIncompleteGraph
	}

	costReduced += m1 + m2
	e.deg[0] += 2
	e.deg[m1To]++
	e.deg[m2To]++

	deg := make([]int, n)
	copy(deg, e.deg)
	parent := make([]int, n)
	copy(parent, e.parent)

	return &Tree{Degree: deg, Parent: parent, Cost: costReduced}, nil
}

// Build constructs the minimum spanning 1-tree over repo with all penalties
// zero — the plain, unpenalized 1-tree used by the bound test.
func Build(repo Distancer) (*Tree, error) {
	if repo.Size() < 2 {
		return nil, ErrTooFewNodes
	}
	return newEngine(repo).build()
}
