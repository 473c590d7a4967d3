// Package game implements the Chinese Checkers core: the star board
// topology, game state, legal-move enumeration and position evaluation.
package game

import "errors"

// Errors reported for invalid external input. Internal invariant
// violations panic instead of returning one of these.
var (
	ErrInvalidMove          = errors.New("invalid move")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
