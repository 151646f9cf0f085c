// Package repository implements the immutable node store the tour engine reads
// distances from: a dense integer address space [0,N), a metric-kind tag, and a
// memoized symmetric distance cache.
package repository

import "errors"

// Validation / construction errors. Do not wrap with fmt.Errorf where a
// sentinel alone identifies the failure.
var (
	// ErrNonSquare indicates a supplied cost matrix is not square.
	ErrNonSquare = errors.New("repository: cost matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("repository: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] for a symmetric repository.
	ErrAsymmetry = errors.New("repository: asymmetric distance matrix")

	// ErrDimensionMismatch indicates a coordinate slice has an unexpected arity.
	ErrDimensionMismatch = errors.New("repository: coordinate dimension mismatch")

	// ErrEmptyRepository indicates an operation required at least one point.
	ErrEmptyRepository = errors.New("repository: no points")

	// ErrIndexOutOfRange indicates a point index outside [0,N).
	ErrIndexOutOfRange = errors.New("repository: index out of range")

	// ErrUnknownDistanceKind indicates a DistanceKind value this package cannot compute.
	ErrUnknownDistanceKind = errors.New("repository: unknown or unimplemented distance kind")

	// ErrIncompleteGraph is returned when a graph-sourced repository is not
	// connected, so no Hamiltonian cycle can possibly exist.
	ErrIncompleteGraph = errors.New("repository: incomplete graph (no Hamiltonian cycle possible)")

	// ErrForbiddenEdge marks a zero-cost entry in an explicit weight matrix as a
	// distinct, explicit state rather than silently treating it as "no edge"
	// (open question (iii) in the design notes: a stricter implementation must
	// not conflate genuine zero weights with forbidden edges).
	ErrForbiddenEdge = errors.New("repository: forbidden edge (explicit zero weight)")
)
