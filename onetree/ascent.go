package onetree

import (
	"math"
	"time"
)

const roundScale = 1e9

// round1e9 stabilizes a float to 1e-9 precision, avoiding float-noise
// flakiness in equality-based tests.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Config controls the subgradient ascent loop and optional wall-clock budget.
type Config struct {
	// MaxIter is the maximum number of subgradient iterations (>= 1).
	MaxIter int
	// Alpha in (0, 2): step scale. 0.8-1.2 is common; defaults to 0.9.
	Alpha float64
	// UB is an optional incumbent (feasible tour) cost for adaptive steps.
	// If UB <= 0 or +Inf, the schedule ignores UB and uses a decreasing
	// sequence instead.
	UB float64
	// TimeLimit is an optional per-call wall-clock budget (0 disables checks).
	TimeLimit time.Duration
}

// DefaultConfig returns conservative, deterministic defaults.
func DefaultConfig() Config {
	return Config{
		MaxIter:   32,
		Alpha:     0.9,
		UB:        math.Inf(1),
		TimeLimit: 0,
	}
}

// Result is the outcome of an ascent run.
type Result struct {
	// Bound is the best Held-Karp lower bound L(pi) observed, stabilized to
	// 1e-9.
	Bound float64
	// Degrees holds the node degrees of the 1-tree that produced Bound, for
	// diagnostics and the optimality witness (sum of squared (deg-2) == 0).
	Degrees []int
	// Optimal is true when the final 1-tree has degree exactly 2 at every
	// node — in that case the 1-tree is itself a Hamiltonian cycle and
	// Bound equals the optimal tour length.
	Optimal bool
}

// Ascent runs the subgradient loop that tightens the Held-Karp bound: at
// each step it builds the minimum 1-tree under the current penalties pi,
// evaluates L(pi) = cost'(T) - 2*sum(pi), and — unless the tree is already a
// tour (every degree exactly 2) — nudges pi by s_i = deg(i) - 2 scaled by a
// step size. Grounded on tsp.OneTreeLowerBound's subgradient schedule.
func Ascent(repo Distancer, cfg Config) (Result, error) {
	n := repo.Size()
	if n < 2 {
		return Result{}, ErrTooFewNodes
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 2 {
		cfg.Alpha = 0.9
	}

	eng := newEngine(repo)

	var useDeadline bool
	var deadline time.Time
	var tick uint64
	if cfg.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(cfg.TimeLimit)
	}
	checkDeadline := func() bool {
		tick++
		if !useDeadline || (tick&2047) != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	haveUB := !math.IsInf(cfg.UB, 0) && cfg.UB > 0

	var (
		bestLB  = math.Inf(-1)
		bestDeg []int
	)

	for iter := 0; iter < cfg.MaxIter; iter++ {
		if checkDeadline() {
			return Result{}, ErrTimeLimit
		}

		tree, err := eng.build()
		if err != nil {
			return Result{}, err
		}

		var sumPi float64
		for i := 0; i < n; i++ {
			sumPi += eng.pi[i]
		}
		lastBound := tree.Cost - 2*sumPi
		if lastBound > bestLB {
			bestLB = lastBound
			bestDeg = tree.Degree
		}

		var norm2 float64
		for i := 0; i < n; i++ {
			d := tree.Degree[i] - 2
			norm2 += float64(d * d)
		}
		if norm2 == 0 {
			return Result{Bound: round1e9(bestLB), Degrees: bestDeg, Optimal: true}, nil
		}

		var step float64
		if haveUB {
			step = cfg.UB - lastBound
			if step < 0 {
				step = 0
			}
			step = cfg.Alpha * step / norm2
		} else {
			step = cfg.Alpha / (1.0 + float64(iter))
		}
		if step == 0 {
			break
		}

		for i := 0; i < n; i++ {
			eng.pi[i] += step * float64(tree.Degree[i]-2)
		}
	}

	return Result{Bound: round1e9(bestLB), Degrees: bestDeg, Optimal: false}, nil
}
