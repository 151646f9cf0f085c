// Package tour defines the Tour interface and its two implementations:
// Array, a reference O(N)-flip permutation tour, and TwoLevelList, the
// O(√N)-flip segmented structure that is the centerpiece of this module.
package tour

import "errors"

// Error kinds shared by every Tour implementation.
var (
	// ErrNodeNotFound is returned when an index or handle does not resolve to
	// a node owned by this tour.
	ErrNodeNotFound = errors.New("tour: node not found")

	// ErrBrokenTour is returned by Flip's invariant checks (for example, an
	// (f, t) pair that is not tour-adjacent) when the tour state is
	// inconsistent with a valid tour. Between and Relation do not return it.
	// These are bugs, not expected runtime conditions.
	ErrBrokenTour = errors.New("tour: invariant violated, tour is corrupted")

	// ErrTourLenMismatch indicates a TourOrder's length does not equal the
	// tour's node count.
	ErrTourLenMismatch = errors.New("tour: order length does not match tour size")

	// ErrInvalidTourOrder indicates a TourOrder is not a permutation of [0,N).
	ErrInvalidTourOrder = errors.New("tour: order is not a valid permutation")

	// ErrSearchFailed is a normal, non-fatal signal that a local-search
	// routine exhausted its candidates without finding an admissible move.
	ErrSearchFailed = errors.New("tour: search exhausted without improvement")
)
