// Package onetree builds the minimum spanning 1-tree over a repository's
// distance function and evaluates the Held–Karp lower bound, including the
// subgradient ascent loop that tightens it: an O(n²) Prim MST (no
// heap) over reduced costs, plus a subgradient schedule over the resulting
// degree sequence.
package onetree

import "errors"

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a
// sentinel suffices.
var (
	// ErrTooFewNodes indicates the repository has fewer than 2 nodes.
	ErrTooFewNodes = errors.New("onetree: repository has fewer than two nodes")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("onetree: negative distance encountered")

	// ErrIncompleteGraph is returned when no spanning 1-tree can be formed:
	// the MST over nodes {1..N-1} is disconnected, or node 0 has fewer than
	// two eligible incident edges.
	ErrIncompleteGraph = errors.New("onetree: incomplete graph, no spanning 1-tree possible")

	// ErrForbiddenEdge is returned when an edge with zero distance is the
	// only candidate available to extend the tree. Zero-distance edges are
	// treated as forbidden; this is a deliberate departure from the
	// source's silent-skip behavior (open question iii), surfaced as an
	// explicit sentinel so genuine zero-weight explicit matrices fail loudly
	// instead of producing a silently wrong bound.
	ErrForbiddenEdge = errors.New("onetree: zero-distance edge encountered, treated as forbidden")
)

// Planner/engine governance sentinels.
var (
	// ErrTimeLimit indicates the ascent loop's wall-clock budget was exhausted.
	ErrTimeLimit = errors.New("onetree: time limit exceeded")
)
