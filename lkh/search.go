package lkh

import (
	"github.com/katalvlaran/lkhcore/kopt"
	"github.com/katalvlaran/lkhcore/tour"
)

// searchResult reports whether a local search accepted a gainful move, a
// non-gainful but excludable fallback move, or found nothing to do.
type searchResult struct {
	gainful bool
	gain    float64
}

// search2Opt looks for an improving 2-opt move anchored at the edge
// (base, baseSucc): for each candidate of baseSucc, it tries replacing
// (base,baseSucc) and (candPred,cand) with (base,candPred) and
// (baseSucc,cand), accepting the first move with strictly positive gain.
// Failing that, it falls back to the best non-gainful excludable move seen.
func search2Opt(t tour.Tour, base, baseSucc tour.NodeId) (searchResult, error) {
	g0 := t.Distance(base, baseSucc)

	cands, err := t.Candidates(baseSucc)
	if err != nil {
		return searchResult{}, err
	}

	var (
		haveFallback bool
		fallbackFrom tour.NodeId
		fallbackTo   tour.NodeId
		bestG2       float64
	)

	for _, cand := range cands {
		g1 := g0 - t.Distance(baseSucc, cand)
		rel, err := t.Relation(baseSucc, cand)
		if err != nil {
			return searchResult{}, err
		}
		if rel != tour.None || g1 <= 0 {
			continue
		}

		candPred, err := t.Predecessor(cand)
		if err != nil {
			return searchResult{}, err
		}

		g2 := g1 + t.Distance(candPred, cand) - t.Distance(base, candPred)

		if g2 > 0 {
			if err := kopt.TwoOpt(t, base, baseSucc, candPred, cand); err != nil {
				return searchResult{}, err
			}
			return searchResult{gainful: true, gain: g2}, nil
		}

		if !haveFallback || g2 > bestG2 {
			// isExcludable(candPred, cand) is always true: there is no
			// exclusion-set bookkeeping here, so every non-gainful pair is
			// eligible as a fallback.
			haveFallback = true
			bestG2 = g2
			fallbackFrom, fallbackTo = candPred, cand
		}
	}

	if haveFallback {
		if err := kopt.TwoOpt(t, base, baseSucc, fallbackFrom, fallbackTo); err != nil {
			return searchResult{}, err
		}
		return searchResult{gainful: false, gain: bestG2}, nil
	}

	return searchResult{}, ErrSearchFailed
}
