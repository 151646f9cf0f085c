package kopt

import "github.com/katalvlaran/lkhcore/tour"

// Opt3Move names one of the seven distinct 3-opt reconnection patterns,
// enumerated by which of the three resulting sub-arcs get reversed.
type Opt3Move int

const (
	// Move1 reverses the first arc only: flip(f1,t1,f2,t2).
	Move1 Opt3Move = iota + 1
	// Move2 reverses the second arc only: flip(f2,t2,f3,t3).
	Move2
	// Move3 reverses the third arc only: flip(f1,t1,f3,t3).
	Move3
	// Move4 is a two-flip case; target order [f1-f3]-[t2-t1]-[f2-t3].
	Move4
	// Move5 is a two-flip case; target order [f1-f2]-[t1-f3]-[t2-t3].
	Move5
	// Move6 is a two-flip case, mirrored composition of Move5 over f1/f3.
	Move6
	// Move7 is the three-flip case, disambiguated by two relation queries.
	Move7
)

// ThreeOpt applies one of the seven named 3-opt cases. Callers supply three
// tour-adjacent pairs (fi, ti=successor(fi)). The relation-guarded dispatch in
// Move4/5/6/7 is essential: after an odd number of prior flips the
// forward direction along a former arc may have inverted, and the composer
// must query tour.Relation rather than guess.
func ThreeOpt(t tour.Tour, move Opt3Move, f1, t1, f2, t2, f3, t3 tour.NodeId) error {
	switch move {
	case Move1:
		return t.Flip(f1, t1, f2, t2)
	case Move2:
		return t.Flip(f2, t2, f3, t3)
	case Move3:
		return t.Flip(f1, t1, f3, t3)
	case Move4:
		if err := t.Flip(f1, t1, f2, t2); err != nil {
			return err
		}
		r, err := relation(t, f1, f2)
		if err != nil {
			return err
		}
		if r == tour.Predecessor {
			return t.Flip(f1, f2, f3, t3)
		}
		return t.Flip(f2, f1, t3, f3)
	case Move5:
		if err := t.Flip(f2, t2, f3, t3); err != nil {
			return err
		}
		r, err := relation(t, f2, f3)
		if err != nil {
			return err
		}
		if r == tour.Predecessor {
			return t.Flip(f1, t1, f2, f3)
		}
		return t.Flip(t1, f1, f3, f2)
	case Move6:
		if err := t.Flip(f1, t1, f3, t3); err != nil {
			return err
		}
		r, err := relation(t, f1, f3)
		if err != nil {
			return err
		}
		if r == tour.Predecessor {
			return t.Flip(f1, f3, t2, f2)
		}
		return t.Flip(f3, f1, f2, t2)
	case Move7:
		if err := t.Flip(f1, t1, f2, t2); err != nil {
			return err
		}
		r1, err := relation(t, f1, f2)
		if err != nil {
			return err
		}
		if r1 == tour.Predecessor {
			if err := t.Flip(f1, f2, f3, t3); err != nil {
				return err
			}
		} else {
			if err := t.Flip(f2, f1, f3, t3); err != nil {
				return err
			}
		}
		r2, err := relation(t, f1, f3)
		if err != nil {
			return err
		}
		if r2 == tour.Predecessor {
			return t.Flip(f1, f3, t2, t1)
		}
		return t.Flip(f3, f1, t1, t2)
	default:
		return ErrBrokenTour
	}
}
