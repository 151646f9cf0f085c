package kopt

import "github.com/katalvlaran/lkhcore/tour"

// Opt4SeqMove names one of the twenty sequential 4-opt cases. Each is
// either a 3-opt case followed by a relation-guarded 2-opt, or a recursive
// 4-opt case followed by one more relation-guarded 2-opt, except the three
// hardest (Seq16, Seq18, Seq19) which compose three raw flips with two
// relation-guard points.
type Opt4SeqMove int

const (
	// Seq1 results in [f1-f2]-[t1-f3]-[t2-f4]-[t3-t4].
	Seq1 Opt4SeqMove = iota + 1
	// Seq2 results in [f1-t2]-[f3-t1]-[f2-f4]-[t3-t4].
	Seq2
	// Seq3 results in [f1-t2]-[f3-f2]-[t1-f4]-[t3-t4].
	Seq3
	// Seq4 results in [f1-f3]-[t2-t1]-[f2-f4]-[t3-t4].
	Seq4
	// Seq5 results in [f1-t3]-[f4-t1]-[f2-f3]-[t2-t4].
	Seq5
	// Seq6 results in [f1-t3]-[f4-f2]-[t1-t2]-[f3-t4].
	Seq6
	// Seq7 results in [f1-f4]-[t3-t1]-[f2-f3]-[t2-t4].
	Seq7
	// Seq8 results in [f1-f4]-[t3-f2]-[t1-t2]-[f3-t4].
	Seq8
	// Seq9 results in [f1-f4]-[t3-f2]-[t1-f3]-[t2-t4].
	Seq9
	// Seq10 results in [f1-f2]-[t1-t3]-[f4-t2]-[f3-t4].
	Seq10
	// Seq11 results in [f1-f2]-[t1-t3]-[f4-f3]-[t2-t4].
	Seq11
	// Seq12 results in [f1-f2]-[t1-f4]-[t3-t2]-[f3-t4].
	Seq12
	// Seq13 results in [f1-t2]-[f3-f4]-[t3-t1]-[f2-t4].
	Seq13
	// Seq14 results in [f1-t2]-[f3-f4]-[t3-f2]-[t1-t4].
	Seq14
	// Seq15 results in [f1-f3]-[t2-t3]-[f4-t1]-[f2-t4].
	Seq15
	// Seq16 results in [f1-f3]-[t2-t3]-[f4-f2]-[t1-t4].
	Seq16
	// Seq17 results in [f1-f3]-[t2-f4]-[t3-f2]-[t1-t4].
	Seq17
	// Seq18 results in [f1-t3]-[f4-t2]-[f3-f2]-[t1-t4].
	Seq18
	// Seq19 results in [f1-f4]-[t3-t2]-[f3-t1]-[f2-t4].
	Seq19
	// Seq20 results in [f1-t3]-[f4-f3]-[t2-t1]-[f2-t4].
	Seq20
)

// FourOpt applies one of the twenty named sequential 4-opt cases. Callers
// supply four tour-adjacent pairs (fi, ti=successor(fi)).
func FourOpt(t tour.Tour, move Opt4SeqMove, f1, t1, f2, t2, f3, t3, f4, t4 tour.NodeId) error {
	switch move {
	case Seq1:
		if err := ThreeOpt(t, Move5, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, t2, t3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t2, t3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t3, t2, t4, f4
		})
	case Seq2:
		if err := ThreeOpt(t, Move7, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f2, t3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f2, t3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t3, f2, t4, f4
		})
	case Seq3:
		if err := ThreeOpt(t, Move6, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, t1, t3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, t3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, t1, t4, f4
		})
	case Seq4:
		if err := ThreeOpt(t, Move4, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f2, t3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f2, t3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t3, f2, t4, f4
		})
	case Seq5:
		if err := FourOpt(t, Seq3, f1, t1, f2, t2, f3, t3, f4, t4); err != nil {
			return err
		}
		return guardedFlip(t, f1, t2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, t2, t3, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t2, f1, t4, t3
		})
	case Seq6:
		if err := FourOpt(t, Seq4, f1, t1, f2, t2, f3, t3, f4, t4); err != nil {
			return err
		}
		return guardedFlip(t, f1, f3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f3, t3, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, f1, t4, t3
		})
	case Seq7:
		if err := ThreeOpt(t, Move6, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f1, t2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, t2, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t2, f1, t4, f4
		})
	case Seq8:
		if err := ThreeOpt(t, Move4, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f1, f3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, f1, t4, f4
		})
	case Seq9:
		if err := ThreeOpt(t, Move7, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f1, t2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, t2, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t2, f1, t4, f4
		})
	case Seq10:
		if err := FourOpt(t, Seq1, f1, t1, f2, t2, f3, t3, f4, t4); err != nil {
			return err
		}
		return guardedFlip(t, t1, f3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, f3, t3, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, t1, t4, t3
		})
	case Seq11:
		if err := FourOpt(t, Seq7, f1, t1, f2, t2, f3, t3, f4, t4); err != nil {
			return err
		}
		return guardedFlip(t, f1, f4, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f4, f2, f3
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f4, f1, f3, f2
		})
	case Seq12:
		if err := ThreeOpt(t, Move5, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, t1, f3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, f3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, t1, t4, f4
		})
	case Seq13:
		if err := ThreeOpt(t, Move6, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f3, f2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, f2, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f2, f3, t4, f4
		})
	case Seq14:
		if err := ThreeOpt(t, Move7, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f3, t1, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, t1, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, f3, t4, f4
		})
	case Seq15:
		if err := FourOpt(t, Seq12, f1, t1, f2, t2, f3, t3, f4, t4); err != nil {
			return err
		}
		return guardedFlip(t, f1, f2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f2, f3, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f2, f1, t4, f3
		})
	case Seq16:
		if err := t.Flip(f2, t2, f3, t3); err != nil {
			return err
		}
		if err := guardedFlip(t, f1, t1, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, t1, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, f1, t4, f4
		}); err != nil {
			return err
		}
		return guardedFlip(t, f1, f4, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f4, f3, f2
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f4, f1, f2, f3
		})
	case Seq17:
		if err := ThreeOpt(t, Move4, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, t2, t1, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t2, t1, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, t2, t4, f4
		})
	case Seq18:
		if err := t.Flip(f2, t2, f3, t3); err != nil {
			return err
		}
		if err := guardedFlip(t, t2, t3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t2, t3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t3, t2, t4, f4
		}); err != nil {
			return err
		}
		return guardedFlip(t, f1, t1, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, t1, t3, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t1, f1, t4, t3
		})
	case Seq19:
		if err := t.Flip(f1, t1, f2, t2); err != nil {
			return err
		}
		if err := guardedFlip(t, f3, t3, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f3, t3, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return t3, f3, t4, f4
		}); err != nil {
			return err
		}
		return guardedFlip(t, f1, f2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f2, t3, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f2, f1, t4, t3
		})
	case Seq20:
		if err := ThreeOpt(t, Move5, f1, t1, f2, t2, f3, t3); err != nil {
			return err
		}
		return guardedFlip(t, f1, f2, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f1, f2, f4, t4
		}, func() (tour.NodeId, tour.NodeId, tour.NodeId, tour.NodeId) {
			return f2, f1, t4, f4
		})
	default:
		return ErrBrokenTour
	}
}

// guardedFlip queries relation(a,b) and applies whichever flip the
// predecessor/successor branch selects, failing with ErrBrokenTour on
// tour.None — the relation-guarded dispatch pattern every multi-flip case
// in this file relies on.
func guardedFlip(
	t tour.Tour, a, b tour.NodeId,
	onPredecessor func() (f1, t1, f2, t2 tour.NodeId),
	onSuccessor func() (f1, t1, f2, t2 tour.NodeId),
) error {
	r, err := relation(t, a, b)
	if err != nil {
		return err
	}
	if r == tour.Predecessor {
		f1, t1, f2, t2 := onPredecessor()
		return t.Flip(f1, t1, f2, t2)
	}
	f1, t1, f2, t2 := onSuccessor()
	return t.Flip(f1, t1, f2, t2)
}
