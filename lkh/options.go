package lkh

import "time"

// InitialTourStrategy selects how each trial's starting tour is built.
type InitialTourStrategy int

const (
	// NaturalOrder sets the tour to 0,1,...,N-1 at the start of every trial,
	// the default.
	NaturalOrder InitialTourStrategy = iota
	// NearestNeighbor builds the starting tour greedily via
	// NearestNeighborTour, widening over candidate-of-candidate lists when a
	// node's own candidates are exhausted.
	NearestNeighbor
)

// Options configures a Solve run. Zero value is not meaningful; use
// DefaultOptions() and override fields.
type Options struct {
	// Trials is the number of independent restarts. Default: 1.
	Trials int

	// CandidateListSize is k in the k-nearest-neighbor candidate generator.
	// Default: 5.
	CandidateListSize int

	// InitialTour selects the starting-tour construction strategy.
	InitialTour InitialTourStrategy

	// Seed is carried in Options but not read by Solve: the candidate
	// generator and search dispatch are fully deterministic, so every run on
	// the same input is the same regardless of Seed. Default: 0.
	Seed int64

	// TimeLimit optionally bounds wall-clock time across all trials. It is
	// checked between trials: the first trial always runs, a running trial is
	// not interrupted, and no further trial starts once the limit has elapsed.
	// Zero means no limit.
	TimeLimit time.Duration
}

// DefaultOptions returns safe, deterministic defaults.
func DefaultOptions() Options {
	return Options{
		Trials:            1,
		CandidateListSize: 5,
		InitialTour:       NaturalOrder,
		Seed:              0,
		TimeLimit:         0,
	}
}
