package repository

import (
	"github.com/katalvlaran/lkhcore/algorithms"
	"github.com/katalvlaran/lkhcore/core"
	"github.com/katalvlaran/lkhcore/prim_kruskal"
)

// FromGraph adapts a generic weighted core.Graph into a dense Repository.
// Vertex
// IDs become dense indices in Vertices() order (stable, ID-ascending per
// core.Graph's own determinism guarantee); edge weights become distances.
//
// The graph must be connected — FromGraph runs a BFS connectivity check from
// the first vertex (algorithms.BFS) and, for undirected graphs, additionally
// verifies a spanning structure exists via prim_kruskal.Kruskal.
//
// FromGraph then requires the graph be complete (every pair of distinct
// vertices connected by an edge); a missing pair is not filled with a default
// distance but makes FromGraph return ErrIncompleteGraph.
func FromGraph(g *core.Graph) (*Repository, error) {
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyRepository
	}

	if n > 1 {
		res, err := algorithms.BFS(g, ids[0], nil)
		if err != nil {
			return nil, err
		}
		if len(res.Order) != n {
			return nil, ErrIncompleteGraph
		}

		if !g.Directed() {
			if _, _, err := prim_kruskal.Kruskal(g); err != nil {
				return nil, ErrIncompleteGraph
			}
		}
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	dense := make([]float64, n*n)
	for i := range dense {
		dense[i] = -1 // sentinel for "unset"; -1 is never a valid distance
	}
	for i := 0; i < n; i++ {
		dense[i*n+i] = 0
	}

	for _, e := range g.Edges() {
		u, ok1 := index[e.From]
		v, ok2 := index[e.To]
		if !ok1 || !ok2 || u == v {
			continue
		}
		w := float64(e.Weight)
		dense[u*n+v] = w
		dense[v*n+u] = w
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dense[i*n+j] < 0 {
				return nil, ErrIncompleteGraph
			}
		}
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{Index: i}
	}

	return &Repository{points: points, kind: Explicit, dense: dense}, nil
}
