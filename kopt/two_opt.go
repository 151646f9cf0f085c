package kopt

import "github.com/katalvlaran/lkhcore/tour"

// TwoOpt performs the trivial single-flip 2-opt move: remove edges (f1,t1)
// and (f2,t2), reconnect as (f1,f2) and (t1,t2).
func TwoOpt(t tour.Tour, f1, t1, f2, t2 tour.NodeId) error {
	return t.Flip(f1, t1, f2, t2)
}

// relation resolves a's relation to b, surfacing ErrBrokenTour on tour.None
// exactly as the move composer must: guess nothing, query and branch.
func relation(t tour.Tour, a, b tour.NodeId) (tour.Relation, error) {
	r, err := t.Relation(a, b)
	if err != nil {
		return tour.None, err
	}
	if r == tour.None {
		return tour.None, ErrBrokenTour
	}
	return r, nil
}
