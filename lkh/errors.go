// Package lkh implements the outer Lin-Kernighan-Helsgaun driver: the trial
// loop, the active-node queue, and the 2-opt local search dispatched over
// each node's candidate list, with a constructive nearest-neighbor heuristic
// supplementing the natural-order start.
package lkh

import "errors"

// ErrSearchFailed is returned when the local search around a popped active
// node finds no gainful and no excludable non-gainful move — a normal,
// non-fatal signal the driver consumes to advance the active queue.
var ErrSearchFailed = errors.New("lkh: local search failed to find an improving move")
