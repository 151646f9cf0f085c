// Package kopt decomposes 3-opt (seven cases) and sequential 4-opt (twenty
// cases) moves into flip/relation calls against a tour.Tour, without knowing
// anything about the tour's internal representation.
package kopt

import "errors"

// ErrBrokenTour is surfaced when a relation query returns tour.None where the
// move composer expected a definite Predecessor/Successor answer — the tour
// is corrupted and the move cannot be completed.
var ErrBrokenTour = errors.New("kopt: relation query returned no relation, tour is corrupted")
